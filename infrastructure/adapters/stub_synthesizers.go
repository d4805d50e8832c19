package adapters

import (
	"context"
	"fmt"
	"strings"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/domain"
)

// Stub synthesizers back the selector when GATEWAY_MODE=stub, so the whole
// flow can be exercised locally without provider keys.

type stubScriptSynthesizer struct{}

func NewStubScriptSynthesizer() outbound.ScriptSynthesizerPort {
	return stubScriptSynthesizer{}
}

func (stubScriptSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeScriptRequest) (string, error) {
	person1 := orDefault(req.Conversation.RolesPerson1, "Host")
	person2 := orDefault(req.Conversation.RolesPerson2, "Guest")

	subject := req.Topic
	if subject == "" {
		subject = fmt.Sprintf("%d characters of source material", len(req.Corpus))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: Welcome to the show. Today we talk about %s.\n", person1, subject)
	fmt.Fprintf(&b, "%s: Glad to be here, let's get into it.\n", person2)
	if req.Conversation.EndingMessage != "" {
		fmt.Fprintf(&b, "%s: %s\n", person1, req.Conversation.EndingMessage)
	}
	return b.String(), nil
}

type stubAudioSynthesizer struct{}

func NewStubAudioSynthesizer() outbound.AudioSynthesizerPort {
	return stubAudioSynthesizer{}
}

func (stubAudioSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeAudioRequest) ([]byte, error) {
	if len(domain.ParseTranscript(req.Transcript)) == 0 {
		return nil, fmt.Errorf("audio synthesis: empty transcript")
	}
	// Not a playable file, just a deterministic placeholder payload.
	return []byte("stub-audio:" + req.Transcript), nil
}

type stubSynthesizerSelector struct {
	script outbound.ScriptSynthesizerPort
	audio  outbound.AudioSynthesizerPort
}

func NewStubSynthesizerSelector() outbound.SynthesizerSelectorPort {
	return &stubSynthesizerSelector{
		script: NewStubScriptSynthesizer(),
		audio:  NewStubAudioSynthesizer(),
	}
}

func (s *stubSynthesizerSelector) ScriptFor(domain.TTSModel) (outbound.ScriptSynthesizerPort, error) {
	return s.script, nil
}

func (s *stubSynthesizerSelector) AudioFor(domain.TTSModel) (outbound.AudioSynthesizerPort, error) {
	return s.audio, nil
}
