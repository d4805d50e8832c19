package services

import (
	"sync"

	"podcast-gateway/application/ports/inbound"
	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/domain"
)

type sessionRegistry struct {
	logger outbound.LoggerPort

	mu         sync.Mutex
	generating map[string]struct{}
}

// NewSessionRegistry enforces at most one in-flight generation per session.
// A second request while one is running is rejected, never queued.
func NewSessionRegistry(logger outbound.LoggerPort) inbound.SessionRegistryPort {
	return &sessionRegistry{
		logger:     logger,
		generating: make(map[string]struct{}),
	}
}

func (r *sessionRegistry) Begin(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.generating[sessionID]; busy {
		r.logger.WarnWithFields("Rejected concurrent generation", map[string]interface{}{
			"session_id": sessionID,
		})
		return domain.ErrSessionBusy
	}

	r.generating[sessionID] = struct{}{}
	return nil
}

func (r *sessionRegistry) End(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.generating, sessionID)
}
