package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	subject string
	data    []byte
	err     error
	drained bool
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	f.subject = subj
	f.data = data
	return f.err
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestNATSPublisher_PublishInterviewCompleted(t *testing.T) {
	conn := &fakeConn{}
	p := &NATSPublisher{conn: conn, subject: "interview.completed"}

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	err := p.PublishInterviewCompleted(context.Background(), domain.InterviewCompleted{
		SetID: 7, EvaluationID: 3, JobType: domain.JobTypeMarketing, Level: domain.LevelIntern,
		AverageScore: 72.5, CompletedAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, "interview.completed", conn.subject)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(conn.data, &decoded))
	assert.EqualValues(t, 7, decoded["setId"])
	assert.EqualValues(t, 3, decoded["evaluationId"])
	assert.Equal(t, "marketing", decoded["jobType"])
	assert.EqualValues(t, 72.5, decoded["averageScore"])

	p.Close()
	assert.True(t, conn.drained)
}

func TestNATSPublisher_PublishError(t *testing.T) {
	p := &NATSPublisher{conn: &fakeConn{err: errors.New("nats: connection closed")}, subject: "s"}
	err := p.PublishInterviewCompleted(context.Background(), domain.InterviewCompleted{SetID: 1})
	assert.ErrorContains(t, err, "connection closed")
}

func TestNewNATSPublisher_NoURL(t *testing.T) {
	p, err := NewNATSPublisher(config.NATSConfig{})
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishInterviewCompleted(context.Background(), domain.InterviewCompleted{}))
	p.Close()
}
