package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type openAIAudioSynthesizer struct {
	logger outbound.LoggerPort
	cfg    *config.OpenAIConfig
}

// NewOpenAIAudioSynthesizer renders the transcript turn by turn through the
// speech endpoint and concatenates the mp3 streams.
func NewOpenAIAudioSynthesizer(cfg *config.OpenAIConfig, logger outbound.LoggerPort) outbound.AudioSynthesizerPort {
	return &openAIAudioSynthesizer{
		logger: logger,
		cfg:    cfg,
	}
}

func (o *openAIAudioSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeAudioRequest) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	turns := domain.ParseTranscript(req.Transcript)
	if len(turns) == 0 {
		return nil, fmt.Errorf("audio synthesis: empty transcript")
	}

	clientConfig := openai.DefaultConfig(req.Credentials.OpenAIKey)
	clientConfig.BaseURL = o.cfg.BaseURL
	client := openai.NewClientWithConfig(clientConfig)

	var audio bytes.Buffer
	for _, turn := range turns {
		voice := openai.SpeechVoice(o.cfg.Voice)
		if turn.Person == 2 {
			voice = openai.VoiceOnyx
		}

		res, err := client.CreateSpeech(ctx, openai.CreateSpeechRequest{
			Model:          openai.SpeechModel(o.cfg.SpeechModel),
			Input:          turn.Text,
			Voice:          voice,
			ResponseFormat: openai.SpeechResponseFormatMp3,
		})
		if err != nil {
			o.logger.Error(err, "OpenAI speech synthesis failed")
			return nil, fmt.Errorf("audio synthesis: %w", err)
		}

		chunk, err := io.ReadAll(res)
		closeErr := res.Close()
		if err != nil {
			return nil, fmt.Errorf("audio synthesis: read speech stream: %w", err)
		}
		if closeErr != nil {
			o.logger.Error(closeErr, "Failed to close speech stream")
		}
		audio.Write(chunk)
	}

	return audio.Bytes(), nil
}
