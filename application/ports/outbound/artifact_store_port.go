package outbound

import "context"

type StoredArtifact struct {
	Name     string
	AudioURL string
}

// ArtifactStorePort places a produced audio artifact into servable storage
// under the given name and resolves previously stored artifacts for the
// download endpoint. Open returns domain.ErrArtifactNotFound when the name
// matches nothing.
type ArtifactStorePort interface {
	Save(ctx context.Context, name string, audio []byte) (StoredArtifact, error)
	Open(ctx context.Context, name string) (string, error)
}
