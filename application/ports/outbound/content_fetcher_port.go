package outbound

import "context"

// ContentFetcherPort retrieves a source page and returns its readable text
// with markup stripped. Failures are per-URL and left to the caller to
// classify.
type ContentFetcherPort interface {
	Fetch(ctx context.Context, url string) (string, error)
}
