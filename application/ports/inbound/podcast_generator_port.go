package inbound

import (
	"context"

	"podcast-gateway/domain"
)

// PodcastGeneratorPort runs one generation request end to end. The returned
// channel carries the status/progress events and closes right after the
// single terminal event. Cancelling ctx aborts the in-flight provider calls.
type PodcastGeneratorPort interface {
	Generate(ctx context.Context, req domain.PodcastRequest) <-chan domain.Event
}
