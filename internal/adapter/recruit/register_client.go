package recruit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterClient posts job postings to the external recruiting API with fiber's HTTP agent.
type RegisterClient struct {
	url     string
	timeout time.Duration
}

func NewRegisterClient(cfg config.RecruitConfig) *RegisterClient {
	return &RegisterClient{url: cfg.RegisterURL, timeout: cfg.RegisterTimeout}
}

func (c *RegisterClient) Register(ctx context.Context, payload []byte) (*domain.RegisterOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Post(c.url).
		ContentType(fiber.MIMEApplicationJSON).
		Body(payload)
	if c.timeout > 0 {
		agent = agent.Timeout(c.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		logger.Get().Error("Recruit register request failed", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("recruit register request failed: %w", err)
	}

	return &domain.RegisterOutcome{StatusCode: code, Body: body}, nil
}
