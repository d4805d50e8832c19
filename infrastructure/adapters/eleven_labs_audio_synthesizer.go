package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsAudioSynthesizer struct {
	logger     outbound.LoggerPort
	cfg        *config.ElevenLabsConfig
	httpClient *http.Client
}

// NewElevenLabsAudioSynthesizer renders each transcript turn with the voice
// mapped to its speaker and concatenates the mp3 streams in turn order.
func NewElevenLabsAudioSynthesizer(cfg *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.AudioSynthesizerPort {
	return &elevenLabsAudioSynthesizer{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *elevenLabsAudioSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeAudioRequest) ([]byte, error) {
	turns := domain.ParseTranscript(req.Transcript)
	if len(turns) == 0 {
		return nil, fmt.Errorf("audio synthesis: empty transcript")
	}

	var audio bytes.Buffer
	for _, turn := range turns {
		voiceID := a.cfg.VoicePerson1
		if turn.Person == 2 {
			voiceID = a.cfg.VoicePerson2
		}

		chunk, err := a.synthesizeTurn(ctx, turn.Text, voiceID, req.Credentials.ElevenLabsKey)
		if err != nil {
			return nil, err
		}
		audio.Write(chunk)
	}

	return audio.Bytes(), nil
}

func (a *elevenLabsAudioSynthesizer) synthesizeTurn(ctx context.Context, text, voiceID, apiKey string) ([]byte, error) {
	body, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: a.cfg.ModelID,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       a.cfg.Stability,
			SimilarityBoost: a.cfg.SimilarityBoost,
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.APIURL+"/"+voiceID, bytes.NewBuffer(body))
	if err != nil {
		a.logger.Error(err, "Failed to create ElevenLabs request")
		return nil, err
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", apiKey)

	res, err := a.httpClient.Do(httpReq)
	if err != nil {
		a.logger.Error(err, "ElevenLabs request failed")
		return nil, fmt.Errorf("audio synthesis: %w", err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			a.logger.Error(cerr, "Failed to close ElevenLabs response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		a.logger.ErrorWithFields(nil, "ElevenLabs returned non-OK status", map[string]interface{}{
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("audio synthesis: status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
