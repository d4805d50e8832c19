package config

import "time"

type OpenAIConfig struct {
	BaseURL     string
	ScriptModel string
	SpeechModel string
	Voice       string
	Timeout     time.Duration
}

// GetOpenAIConfig carries endpoint and model selection only; the API key
// arrives with each request, never from the environment.
func GetOpenAIConfig() (*OpenAIConfig, error) {
	return &OpenAIConfig{
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ScriptModel: getEnvOrDefault("OPENAI_SCRIPT_MODEL", "gpt-4o-mini"),
		SpeechModel: getEnvOrDefault("OPENAI_SPEECH_MODEL", "tts-1"),
		Voice:       getEnvOrDefault("OPENAI_VOICE", "alloy"),
		Timeout:     getEnvDurationOrDefault("OPENAI_TIMEOUT", 3*time.Minute),
	}, nil
}
