package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"podcast-gateway/domain"
	"podcast-gateway/infrastructure/adapters"
)

func TestSessionRegistryRejectsConcurrentGeneration(t *testing.T) {
	registry := NewSessionRegistry(adapters.NewZerologWrapper())

	require.NoError(t, registry.Begin("session-a"))
	require.ErrorIs(t, registry.Begin("session-a"), domain.ErrSessionBusy)

	// A different session is unaffected.
	require.NoError(t, registry.Begin("session-b"))

	registry.End("session-a")
	require.NoError(t, registry.Begin("session-a"))
}

func TestSessionRegistryEndIsIdempotent(t *testing.T) {
	registry := NewSessionRegistry(adapters.NewZerologWrapper())

	registry.End("never-started")
	require.NoError(t, registry.Begin("never-started"))
}

func TestSessionRegistryAdmitsExactlyOneUnderContention(t *testing.T) {
	registry := NewSessionRegistry(adapters.NewZerologWrapper())

	const attempts = 32
	var wg sync.WaitGroup
	admitted := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if registry.Begin("contended") == nil {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	require.Len(t, admitted, 1)
}
