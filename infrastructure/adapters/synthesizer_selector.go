package adapters

import (
	"fmt"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type synthesizerSelector struct {
	geminiScript outbound.ScriptSynthesizerPort
	openAIScript outbound.ScriptSynthesizerPort

	geminiAudio     outbound.AudioSynthesizerPort
	openAIAudio     outbound.AudioSynthesizerPort
	elevenLabsAudio outbound.AudioSynthesizerPort
}

// NewSynthesizerSelector wires every provider adapter once and maps tts
// models onto them. The elevenlabs path keeps Gemini for the script side.
func NewSynthesizerSelector(
	geminiCfg *config.GeminiConfig,
	openAICfg *config.OpenAIConfig,
	elevenLabsCfg *config.ElevenLabsConfig,
	logger outbound.LoggerPort,
) outbound.SynthesizerSelectorPort {
	return &synthesizerSelector{
		geminiScript:    NewGeminiScriptSynthesizer(geminiCfg, logger),
		openAIScript:    NewOpenAIScriptSynthesizer(openAICfg, logger),
		geminiAudio:     NewGeminiAudioSynthesizer(geminiCfg, logger),
		openAIAudio:     NewOpenAIAudioSynthesizer(openAICfg, logger),
		elevenLabsAudio: NewElevenLabsAudioSynthesizer(elevenLabsCfg, logger),
	}
}

func (s *synthesizerSelector) ScriptFor(model domain.TTSModel) (outbound.ScriptSynthesizerPort, error) {
	switch model {
	case domain.TTSModelGemini, domain.TTSModelGeminiMulti, domain.TTSModelElevenLabs:
		return s.geminiScript, nil
	case domain.TTSModelOpenAI:
		return s.openAIScript, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTTSModel, model)
	}
}

func (s *synthesizerSelector) AudioFor(model domain.TTSModel) (outbound.AudioSynthesizerPort, error) {
	switch model {
	case domain.TTSModelGemini, domain.TTSModelGeminiMulti:
		return s.geminiAudio, nil
	case domain.TTSModelOpenAI:
		return s.openAIAudio, nil
	case domain.TTSModelElevenLabs:
		return s.elevenLabsAudio, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTTSModel, model)
	}
}
