package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type fsArtifactStore struct {
	logger     outbound.LoggerPort
	primaryDir string
	candidates []string
}

// NewFSArtifactStore writes artifacts into the primary servable directory
// and resolves reads by probing the ordered candidate list.
func NewFSArtifactStore(cfg *config.StorageConfig, logger outbound.LoggerPort) (outbound.ArtifactStorePort, error) {
	if err := os.MkdirAll(cfg.PrimaryDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir %s: %w", cfg.PrimaryDir, err)
	}

	return &fsArtifactStore{
		logger:     logger,
		primaryDir: cfg.PrimaryDir,
		candidates: cfg.CandidateDirs,
	}, nil
}

func (f *fsArtifactStore) Save(_ context.Context, name string, audio []byte) (outbound.StoredArtifact, error) {
	if err := validateArtifactName(name); err != nil {
		return outbound.StoredArtifact{}, err
	}

	path := filepath.Join(f.primaryDir, name)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return outbound.StoredArtifact{}, fmt.Errorf("write artifact %s: %w", name, err)
	}

	f.logger.InfoWithFields("Stored audio artifact", map[string]interface{}{
		"name":  name,
		"bytes": len(audio),
	})

	return outbound.StoredArtifact{
		Name:     name,
		AudioURL: "/audio/" + name,
	}, nil
}

func (f *fsArtifactStore) Open(_ context.Context, name string) (string, error) {
	if err := validateArtifactName(name); err != nil {
		return "", domain.ErrArtifactNotFound
	}

	for _, dir := range f.candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", domain.ErrArtifactNotFound
}

func validateArtifactName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return nil
}
