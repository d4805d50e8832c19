package config

import (
	"strings"
	"time"
)

const (
	StorageBackendFS    = "fs"
	StorageBackendMinio = "minio"
)

type StorageConfig struct {
	Backend string

	// PrimaryDir receives new artifacts; CandidateDirs is the ordered
	// probe list for the download endpoint and includes PrimaryDir.
	PrimaryDir    string
	CandidateDirs []string

	RetentionTTL  time.Duration
	SweepInterval time.Duration

	Minio MinioConfig
}

type MinioConfig struct {
	Endpoint      string
	BucketName    string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PresignExpiry time.Duration
}

func GetStorageConfig() (*StorageConfig, error) {
	primary := getEnvOrDefault("AUDIO_DIR", "/tmp/audio")

	candidates := []string{primary}
	for _, dir := range strings.Split(getEnvOrDefault("AUDIO_EXTRA_DIRS", "data/audio,static/audio"), ",") {
		dir = strings.TrimSpace(dir)
		if dir != "" && dir != primary {
			candidates = append(candidates, dir)
		}
	}

	return &StorageConfig{
		Backend:       getEnvOrDefault("STORAGE_BACKEND", StorageBackendFS),
		PrimaryDir:    primary,
		CandidateDirs: candidates,
		RetentionTTL:  getEnvDurationOrDefault("AUDIO_RETENTION_TTL", 24*time.Hour),
		SweepInterval: getEnvDurationOrDefault("AUDIO_SWEEP_INTERVAL", 15*time.Minute),
		Minio: MinioConfig{
			Endpoint:      getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
			BucketName:    getEnvOrDefault("MINIO_BUCKET", "podcasts"),
			AccessKey:     getEnvOrDefault("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnvOrDefault("MINIO_SECRET_KEY", ""),
			UseSSL:        getEnvOrDefault("MINIO_USE_SSL", "false") == "true",
			PresignExpiry: getEnvDurationOrDefault("MINIO_PRESIGN_EXPIRY", 24*time.Hour),
		},
	}, nil
}
