package services

import (
	"os"
	"path/filepath"
	"time"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
)

type ArtifactJanitor struct {
	logger outbound.LoggerPort
	dirs   []string
	ttl    time.Duration
	now    func() time.Time
}

// NewArtifactJanitor sweeps the servable audio directories and removes
// artifacts older than the retention TTL. Without it the directories grow
// forever, one file per completed request.
func NewArtifactJanitor(cfg *config.StorageConfig, logger outbound.LoggerPort) *ArtifactJanitor {
	return &ArtifactJanitor{
		logger: logger,
		dirs:   cfg.CandidateDirs,
		ttl:    cfg.RetentionTTL,
		now:    time.Now,
	}
}

// Sweep removes expired artifacts and returns how many were deleted.
func (j *ArtifactJanitor) Sweep() int {
	cutoff := j.now().Add(-j.ttl)
	removed := 0

	for _, dir := range j.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				j.logger.ErrorWithFields(err, "Failed to remove expired artifact", map[string]interface{}{
					"path": path,
				})
				continue
			}

			j.logger.InfoWithFields("Removed expired artifact", map[string]interface{}{
				"path": path,
				"age":  j.now().Sub(info.ModTime()).String(),
			})
			removed++
		}
	}

	return removed
}
