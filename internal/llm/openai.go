package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/youngmea/airo/internal/config"
)

type openaiGenerator struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAI creates a Generator for any OpenAI-compatible chat completions endpoint.
func NewOpenAI(cfg config.LLMConfig, logger *slog.Logger) Generator {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	// one call per message, never retried
	opts = append(opts, option.WithMaxRetries(0))

	log := logger.With("component", "openai_client")
	log.Info("OpenAI client initialized successfully", "model", cfg.Model, "base_url", cfg.BaseURL)
	return &openaiGenerator{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		log:    log,
	}
}

func (g *openaiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxCompletionTokens: openai.Int(int64(req.MaxOutputTokens)),
		Temperature:         openai.Float(float64(req.Temperature)),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		g.log.ErrorContext(ctx, "OpenAI API call failed", "error", err)
		return "", fmt.Errorf("openai API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return checkText(resp.Choices[0].Message.Content)
}
