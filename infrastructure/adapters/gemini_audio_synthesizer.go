package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
	"podcast-gateway/domain"
)

type geminiSpeechRequest struct {
	Contents         []geminiContent              `json:"contents"`
	GenerationConfig geminiSpeechGenerationConfig `json:"generationConfig"`
}

type geminiSpeechGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities"`
	SpeechConfig       geminiSpeechConfig `json:"speechConfig"`
}

type geminiSpeechConfig struct {
	MultiSpeakerVoiceConfig *geminiMultiSpeakerVoiceConfig `json:"multiSpeakerVoiceConfig,omitempty"`
	VoiceConfig             *geminiVoiceConfig             `json:"voiceConfig,omitempty"`
}

type geminiMultiSpeakerVoiceConfig struct {
	SpeakerVoiceConfigs []geminiSpeakerVoiceConfig `json:"speakerVoiceConfigs"`
}

type geminiSpeakerVoiceConfig struct {
	Speaker     string            `json:"speaker"`
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiSpeechResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiAudioSynthesizer struct {
	logger     outbound.LoggerPort
	cfg        *config.GeminiConfig
	httpClient *http.Client
}

// NewGeminiAudioSynthesizer serves both the gemini and geminimulti tts
// models; geminimulti uses the two-speaker voice configuration.
func NewGeminiAudioSynthesizer(cfg *config.GeminiConfig, logger outbound.LoggerPort) outbound.AudioSynthesizerPort {
	return &geminiAudioSynthesizer{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *geminiAudioSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeAudioRequest) ([]byte, error) {
	turns := domain.ParseTranscript(req.Transcript)
	if len(turns) == 0 {
		return nil, fmt.Errorf("audio synthesis: empty transcript")
	}

	speechConfig := g.speechConfig(req.TTSModel, turns)

	payload := geminiSpeechRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Transcript}},
		}},
		GenerationConfig: geminiSpeechGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       speechConfig,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.cfg.APIURL, g.cfg.TTSModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		g.logger.Error(err, "Failed to create Gemini speech request")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", req.Credentials.GoogleKey)

	res, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logger.Error(err, "Gemini speech request failed")
		return nil, fmt.Errorf("audio synthesis: %w", err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			g.logger.Error(cerr, "Failed to close Gemini speech response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		g.logger.ErrorWithFields(nil, "Gemini speech returned non-OK status", map[string]interface{}{
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("audio synthesis: status %d", res.StatusCode)
	}

	var speech geminiSpeechResponse
	if err := json.NewDecoder(res.Body).Decode(&speech); err != nil {
		return nil, fmt.Errorf("audio synthesis: decode response: %w", err)
	}

	for _, candidate := range speech.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData.Data == "" {
				continue
			}
			audio, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("audio synthesis: decode audio payload: %w", err)
			}
			return audio, nil
		}
	}

	return nil, fmt.Errorf("audio synthesis: response carried no audio")
}

func (g *geminiAudioSynthesizer) speechConfig(model domain.TTSModel, turns []domain.TranscriptTurn) geminiSpeechConfig {
	if model != domain.TTSModelGeminiMulti {
		return geminiSpeechConfig{
			VoiceConfig: &geminiVoiceConfig{
				PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: g.cfg.VoicePerson1},
			},
		}
	}

	speaker1, speaker2 := "Speaker 1", "Speaker 2"
	for _, turn := range turns {
		if turn.Speaker == "" {
			continue
		}
		if turn.Person == 1 {
			speaker1 = turn.Speaker
		} else {
			speaker2 = turn.Speaker
		}
	}

	return geminiSpeechConfig{
		MultiSpeakerVoiceConfig: &geminiMultiSpeakerVoiceConfig{
			SpeakerVoiceConfigs: []geminiSpeakerVoiceConfig{
				{
					Speaker:     speaker1,
					VoiceConfig: geminiVoiceConfig{PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: g.cfg.VoicePerson1}},
				},
				{
					Speaker:     speaker2,
					VoiceConfig: geminiVoiceConfig{PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: g.cfg.VoicePerson2}},
				},
			},
		},
	}
}
