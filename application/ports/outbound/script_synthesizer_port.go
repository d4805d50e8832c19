package outbound

import (
	"context"

	"podcast-gateway/domain"
)

type SynthesizeScriptRequest struct {
	// Corpus is the combined source text. Empty for topic-only requests
	// and when every source failed.
	Corpus       string
	Topic        string
	Conversation domain.ConversationConfig
	LongForm     bool
	Credentials  domain.Credentials
}

// ScriptSynthesizerPort produces a two-person dialogue transcript from the
// combined corpus and the conversation configuration.
type ScriptSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeScriptRequest) (string, error)
}
