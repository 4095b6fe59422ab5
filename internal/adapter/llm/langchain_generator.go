package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.TextGenerator on top of a langchaingo model.
type LangchainGenerator struct {
	model   llms.Model
	timeout time.Duration
}

// NewLangchainGenerator connects langchaingo's OpenAI client to the OpenAI-compatible
// endpoint configured in cfg (OpenRouter by default).
func NewLangchainGenerator(cfg config.LLMConfig) (*LangchainGenerator, error) {
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.DefaultModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain openai client: %w", err)
	}
	return &LangchainGenerator{model: model, timeout: cfg.RequestTimeout}, nil
}

// NewLangchainGeneratorWithModel wraps an existing model (tests, alternative providers).
func NewLangchainGeneratorWithModel(model llms.Model) *LangchainGenerator {
	return &LangchainGenerator{model: model}
}

func (g *LangchainGenerator) Generate(ctx context.Context, req domain.CompletionRequest) (string, error) {
	l := logger.Get()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	messages := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", req.Model), zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.String("model", req.Model), zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}

	l.Debug("LLM response received", zap.String("model", req.Model), zap.Int("length", len(resp.Choices[0].Content)))
	return resp.Choices[0].Content, nil
}
