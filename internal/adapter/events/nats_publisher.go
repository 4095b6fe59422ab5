package events

import (
	"context"
	"encoding/json"
	"fmt"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// natsConn is the subset of *nats.Conn the publisher needs.
type natsConn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATSPublisher publishes interview events as JSON on a single subject.
type NATSPublisher struct {
	conn    natsConn
	subject string
}

// NewNATSPublisher connects to cfg.URL. An empty URL yields a publisher that drops events.
func NewNATSPublisher(cfg config.NATSConfig) (domain.EventPublisher, error) {
	if cfg.URL == "" {
		logger.Get().Info("NATS URL not configured, interview events will not be published")
		return NoopPublisher{}, nil
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name("interview-prep"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Get().Warn("NATS disconnected", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}
	return &NATSPublisher{conn: conn, subject: cfg.Subject}, nil
}

func (p *NATSPublisher) PublishInterviewCompleted(_ context.Context, evt domain.InterviewCompleted) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode interview event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logger.Get().Warn("Failed to drain NATS connection", zap.Error(err))
	}
}

// NoopPublisher discards events.
type NoopPublisher struct{}

func (NoopPublisher) PublishInterviewCompleted(context.Context, domain.InterviewCompleted) error {
	return nil
}

func (NoopPublisher) Close() {}
