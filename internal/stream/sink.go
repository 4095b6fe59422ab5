package stream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sync"

	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

// Emitter receives the events of one streaming response.
type Emitter interface {
	Emit(evt dto.StreamEvent)
}

// SSEWriter writes events in text/event-stream framing and flushes after each one.
// Once a write fails (client gone) every later event is dropped silently so the
// producer can finish its work.
type SSEWriter struct {
	mu     sync.Mutex
	w      *bufio.Writer
	named  bool
	closed bool
}

// NewSSEWriter wraps w. With named set, each event also carries an `event:` line
// equal to its type.
func NewSSEWriter(w *bufio.Writer, named bool) *SSEWriter {
	return &SSEWriter{w: w, named: named}
}

func (s *SSEWriter) Emit(evt dto.StreamEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		logger.Get().Error("Failed to encode stream event", zap.String("type", evt.Type), zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if _, err := fmt.Fprintf(s.w, "id: %s\n", util.NewULID()); err != nil {
		s.fail(err)
		return
	}
	if s.named {
		if _, err := fmt.Fprintf(s.w, "event: %s\n", evt.Type); err != nil {
			s.fail(err)
			return
		}
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		s.fail(err)
		return
	}
	if err := s.w.Flush(); err != nil {
		s.fail(err)
	}
}

// Closed reports whether the client side has gone away.
func (s *SSEWriter) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *SSEWriter) fail(err error) {
	s.closed = true
	logger.Get().Debug("SSE client disconnected, dropping further events", zap.Error(err))
}

// Recorder collects events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []dto.StreamEvent
}

func (r *Recorder) Emit(evt dto.StreamEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *Recorder) Events() []dto.StreamEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dto.StreamEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Types lists the recorded event types in order.
func (r *Recorder) Types() []string {
	events := r.Events()
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func (r *Recorder) Last() dto.StreamEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return dto.StreamEvent{}
	}
	return r.events[len(r.events)-1]
}
