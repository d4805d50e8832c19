package outbound

import "podcast-gateway/domain"

// SynthesizerSelectorPort resolves the provider adapters for a tts model.
// Selection errors are credential-free configuration problems; credential
// presence is validated on the request itself.
type SynthesizerSelectorPort interface {
	ScriptFor(model domain.TTSModel) (ScriptSynthesizerPort, error)
	AudioFor(model domain.TTSModel) (AudioSynthesizerPort, error)
}
