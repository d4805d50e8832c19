package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

type ServerConfig struct {
	Port          string
	APIToken      string
	SessionSecret string
}

// GetServerConfig requires API_TOKEN; the session secret falls back to a
// random value, which invalidates sessions across restarts.
func GetServerConfig() (*ServerConfig, error) {
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		return nil, fmt.Errorf("API_TOKEN must be set")
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		buf := make([]byte, 24)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
	}

	return &ServerConfig{
		Port:          getEnvOrDefault("PORT", "8080"),
		APIToken:      apiToken,
		SessionSecret: secret,
	}, nil
}
