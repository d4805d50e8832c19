package outbound

import (
	"context"

	"podcast-gateway/domain"
)

type SynthesizeAudioRequest struct {
	Transcript  string
	TTSModel    domain.TTSModel
	Credentials domain.Credentials
}

// AudioSynthesizerPort renders a transcript into an audio byte stream.
type AudioSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeAudioRequest) ([]byte, error)
}
