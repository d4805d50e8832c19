package config

import "time"

type FetcherConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

func GetFetcherConfig() (*FetcherConfig, error) {
	return &FetcherConfig{
		Timeout:      getEnvDurationOrDefault("FETCH_TIMEOUT", 30*time.Second),
		MaxBodyBytes: int64(getEnvIntOrDefault("FETCH_MAX_BODY_BYTES", 2<<20)),
		UserAgent:    getEnvOrDefault("FETCH_USER_AGENT", "podcast-gateway/1.0"),
	}, nil
}
