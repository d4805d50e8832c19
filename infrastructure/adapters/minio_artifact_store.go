package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type minioArtifactStore struct {
	logger outbound.LoggerPort
	client *minio.Client
	cfg    *config.MinioConfig
}

// NewMinioArtifactStore uploads artifacts to a bucket and hands back a
// presigned download URL. The /audio endpoint is not used with this
// backend, so Open always misses.
func NewMinioArtifactStore(cfg *config.MinioConfig, logger outbound.LoggerPort) (outbound.ArtifactStorePort, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return &minioArtifactStore{
		logger: logger,
		client: client,
		cfg:    cfg,
	}, nil
}

func (m *minioArtifactStore) Save(ctx context.Context, name string, audio []byte) (outbound.StoredArtifact, error) {
	if err := validateArtifactName(name); err != nil {
		return outbound.StoredArtifact{}, err
	}

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, name, bytes.NewReader(audio), int64(len(audio)), minio.PutObjectOptions{
		ContentType: "audio/mpeg",
	})
	if err != nil {
		return outbound.StoredArtifact{}, fmt.Errorf("upload artifact %s: %w", name, err)
	}

	presigned, err := m.client.PresignedGetObject(ctx, m.cfg.BucketName, name, m.cfg.PresignExpiry, url.Values{})
	if err != nil {
		return outbound.StoredArtifact{}, fmt.Errorf("presign artifact %s: %w", name, err)
	}

	m.logger.InfoWithFields("Uploaded audio artifact", map[string]interface{}{
		"name":   name,
		"bucket": m.cfg.BucketName,
		"bytes":  len(audio),
	})

	return outbound.StoredArtifact{
		Name:     name,
		AudioURL: presigned.String(),
	}, nil
}

func (m *minioArtifactStore) Open(context.Context, string) (string, error) {
	return "", domain.ErrArtifactNotFound
}
