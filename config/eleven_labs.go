package config

import (
	"strconv"
	"time"
)

type ElevenLabsConfig struct {
	APIURL          string
	ModelID         string
	VoicePerson1    string
	VoicePerson2    string
	Stability       float64
	SimilarityBoost float64
	Timeout         time.Duration
}

// GetElevenLabsConfig carries endpoint, model and voice tuning; the API key
// arrives with each request, never from the environment.
func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	stability, err := strconv.ParseFloat(getEnvOrDefault("ELEVEN_LABS_STABILITY", "0.5"), 64)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := strconv.ParseFloat(getEnvOrDefault("ELEVEN_LABS_SIMILARITY_BOOST", "0.75"), 64)
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		APIURL:          getEnvOrDefault("ELEVEN_LABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ModelID:         getEnvOrDefault("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2"),
		VoicePerson1:    getEnvOrDefault("ELEVEN_LABS_VOICE_PERSON1", "21m00Tcm4TlvDq8ikWAM"),
		VoicePerson2:    getEnvOrDefault("ELEVEN_LABS_VOICE_PERSON2", "2EiwWnXFnvU5JabPnv8n"),
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		Timeout:         getEnvDurationOrDefault("ELEVEN_LABS_TIMEOUT", 3*time.Minute),
	}, nil
}
