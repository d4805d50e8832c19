package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
)

const scriptStreamMaxRetries = 3

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiStreamChunk struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiScriptSynthesizer struct {
	logger outbound.LoggerPort
	cfg    *config.GeminiConfig
}

// NewGeminiScriptSynthesizer streams the transcript from the Gemini SSE
// endpoint and accumulates it into one string. The API key is read from the
// request credentials on every call.
func NewGeminiScriptSynthesizer(cfg *config.GeminiConfig, logger outbound.LoggerPort) outbound.ScriptSynthesizerPort {
	return &geminiScriptSynthesizer{
		logger: logger,
		cfg:    cfg,
	}
}

func (g *geminiScriptSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeScriptRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	httpReq, err := g.createRequest(ctx, req)
	if err != nil {
		g.logger.Error(err, "Failed to create script stream request")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", httpReq)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to script stream")
		return "", fmt.Errorf("script synthesis: %w", err)
	}
	defer stream.Close()

	var builder strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			text, err := g.extractText(ev)
			if err != nil {
				return "", err
			}
			builder.WriteString(text)
			retryCount = 0
		case err := <-stream.Errors:
			if err == io.EOF {
				return strings.TrimSpace(builder.String()), nil
			}
			if retryCount < scriptStreamMaxRetries {
				g.logger.ErrorWithFields(err, "Script stream error, retrying", map[string]interface{}{
					"retry_count": retryCount,
				})
				retryCount++
				continue
			}
			g.logger.Error(err, "Script stream error, max retries reached")
			return "", fmt.Errorf("script synthesis: %w", err)
		}
	}
}

func (g *geminiScriptSynthesizer) extractText(event eventsource.Event) (string, error) {
	var chunk geminiStreamChunk
	if err := json.Unmarshal([]byte(event.Data()), &chunk); err != nil {
		g.logger.Error(err, "Failed to unmarshal script stream chunk")
		return "", fmt.Errorf("script synthesis: decode chunk: %w", err)
	}

	var b strings.Builder
	for _, candidate := range chunk.Candidates {
		for _, part := range candidate.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func (g *geminiScriptSynthesizer) createRequest(ctx context.Context, req outbound.SynthesizeScriptRequest) (*http.Request, error) {
	payload := geminiGenerateRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: buildScriptPrompt(req)}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature: req.Conversation.Creativity,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", g.cfg.APIURL, g.cfg.ScriptModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", req.Credentials.GoogleKey)

	return httpReq, nil
}
