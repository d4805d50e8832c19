package config

import "time"

type GeminiConfig struct {
	APIURL      string
	ScriptModel string
	TTSModel    string
	VoicePerson1 string
	VoicePerson2 string
	Timeout      time.Duration
}

// GetGeminiConfig carries endpoint and model selection only; the API key
// arrives with each request, never from the environment.
func GetGeminiConfig() (*GeminiConfig, error) {
	return &GeminiConfig{
		APIURL:       getEnvOrDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		ScriptModel:  getEnvOrDefault("GEMINI_SCRIPT_MODEL", "gemini-1.5-flash"),
		TTSModel:     getEnvOrDefault("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		VoicePerson1: getEnvOrDefault("GEMINI_VOICE_PERSON1", "Kore"),
		VoicePerson2: getEnvOrDefault("GEMINI_VOICE_PERSON2", "Puck"),
		Timeout:      getEnvDurationOrDefault("GEMINI_TIMEOUT", 3*time.Minute),
	}, nil
}
