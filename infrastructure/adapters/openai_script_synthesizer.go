package adapters

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
)

type openAIScriptSynthesizer struct {
	logger outbound.LoggerPort
	cfg    *config.OpenAIConfig
}

// NewOpenAIScriptSynthesizer serves the openai tts path; the client is
// rebuilt per call because the key travels with the request.
func NewOpenAIScriptSynthesizer(cfg *config.OpenAIConfig, logger outbound.LoggerPort) outbound.ScriptSynthesizerPort {
	return &openAIScriptSynthesizer{
		logger: logger,
		cfg:    cfg,
	}
}

func (o *openAIScriptSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeScriptRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	client := o.newClient(req.Credentials.OpenAIKey)

	res, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.cfg.ScriptModel,
		Temperature: float32(req.Conversation.Creativity),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write podcast dialogue transcripts.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildScriptPrompt(req),
			},
		},
	})
	if err != nil {
		o.logger.Error(err, "OpenAI script synthesis failed")
		return "", fmt.Errorf("script synthesis: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("script synthesis: empty completion")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

func (o *openAIScriptSynthesizer) newClient(apiKey string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = o.cfg.BaseURL
	return openai.NewClientWithConfig(clientConfig)
}
