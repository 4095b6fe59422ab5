package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/recruit"
	"interview-prep/internal/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubRegistrar struct {
	outcome *domain.RegisterOutcome
	err     error
	payload []byte
}

func (s *stubRegistrar) Register(_ context.Context, payload []byte) (*domain.RegisterOutcome, error) {
	s.payload = payload
	return s.outcome, s.err
}

func newTestRecruitService(t *testing.T, opener domain.StreamOpener, registrar domain.RecruitRegistrar, keepalive time.Duration) RecruitService {
	t.Helper()
	catalogue, err := recruit.DefaultCatalogue()
	require.NoError(t, err)
	return NewRecruitService(catalogue, opener, registrar,
		config.LLMConfig{RecruitModel: "recruit/model"},
		config.RecruitConfig{KeepaliveInterval: keepalive})
}

var previewRequest = &dto.AnalyzeRecruitRequest{
	PDFBase64:                    "JVBERi0xLjQ=",
	CompanyImageURL:              "https://cdn.example.com/logo.png",
	DirectInputApplicationMethod: "https://example.com/apply",
}

func TestRecruitService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("heartbeat stops before the first chunk", func(t *testing.T) {
		opener := new(MockStreamOpener)
		opener.On("OpenStream", ctx, mock.MatchedBy(func(req domain.StreamRequest) bool {
			return req.Model == "recruit/model" && req.PDFEngine == "mistral-ocr" &&
				req.File != nil && req.File.Filename == "recruit.pdf" && req.File.Base64 == previewRequest.PDFBase64 &&
				req.Temperature == 0.3 && req.MaxTokens == 300000
		})).After(80*time.Millisecond).Return(newFakeStream(`[{"title":"백엔드"},`, `{"title":"프론트엔드"}]`), nil)

		rec := &stream.Recorder{}
		newTestRecruitService(t, opener, &stubRegistrar{}, 10*time.Millisecond).Preview(ctx, previewRequest, rec)

		events := rec.Events()
		firstChunk := -1
		keepalives := 0
		for i, evt := range events {
			switch evt.Type {
			case dto.EventChunk:
				if firstChunk == -1 {
					firstChunk = i
				}
			case dto.EventKeepalive:
				keepalives++
				assert.Equal(t, -1, firstChunk, "keepalive after the first chunk")
				assert.Positive(t, evt.Elapsed)
			}
		}
		assert.Positive(t, keepalives)
		require.NotEqual(t, -1, firstChunk)

		assert.Equal(t, dto.EventStart, events[0].Type)
		assert.NotEmpty(t, events[0].Timestamp)
		assert.Equal(t, "ai_analysis", events[1].Step)

		last := rec.Last()
		require.Equal(t, dto.EventComplete, last.Type)
		require.NotNil(t, last.Count)
		assert.Equal(t, 2, *last.Count)
		assert.Contains(t, last.Message, "2개의 채용 공고")

		parsing := events[len(events)-2]
		assert.Equal(t, "parsing", parsing.Step)
		assert.Equal(t, 2, *parsing.TotalChunks)
	})

	t.Run("single object becomes a list", func(t *testing.T) {
		opener := new(MockStreamOpener)
		opener.On("OpenStream", ctx, mock.Anything).Return(newFakeStream("```json\n{\"title\":\"마케터\"}\n```"), nil)

		rec := &stream.Recorder{}
		newTestRecruitService(t, opener, &stubRegistrar{}, 0).Preview(ctx, previewRequest, rec)

		last := rec.Last()
		require.Equal(t, dto.EventComplete, last.Type)
		assert.Equal(t, 1, *last.Count)
		data, err := json.Marshal(last.Data)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"title":"마케터"}]`, string(data))
	})

	t.Run("parse failure", func(t *testing.T) {
		opener := new(MockStreamOpener)
		opener.On("OpenStream", ctx, mock.Anything).Return(newFakeStream("공고를 찾을 수 없습니다"), nil)

		rec := &stream.Recorder{}
		newTestRecruitService(t, opener, &stubRegistrar{}, 0).Preview(ctx, previewRequest, rec)

		last := rec.Last()
		assert.Equal(t, dto.EventError, last.Type)
		assert.Equal(t, "❌ JSON 파싱 실패", last.Message)
		assert.Equal(t, "공고를 찾을 수 없습니다", last.RawResponse)
	})

	t.Run("upstream rejects the request", func(t *testing.T) {
		opener := new(MockStreamOpener)
		opener.On("OpenStream", ctx, mock.Anything).Return(nil, errors.New("402 payment required"))

		rec := &stream.Recorder{}
		newTestRecruitService(t, opener, &stubRegistrar{}, time.Hour).Preview(ctx, previewRequest, rec)

		last := rec.Last()
		assert.Equal(t, dto.EventError, last.Type)
		assert.Equal(t, "❌ 오류가 발생했습니다.", last.Message)
		assert.Contains(t, last.Error, "402")
	})
}

func TestRecruitService_Register(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"title":"백엔드 개발자"}`)

	t.Run("success", func(t *testing.T) {
		reg := &stubRegistrar{outcome: &domain.RegisterOutcome{StatusCode: 201, Body: []byte(`{"id":10}`)}}
		status, resp := newTestRecruitService(t, nil, reg, 0).Register(ctx, payload)
		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)
		assert.JSONEq(t, `{"id":10}`, string(resp.Data))
		assert.Equal(t, payload, reg.payload)
	})

	t.Run("upstream rejects", func(t *testing.T) {
		reg := &stubRegistrar{outcome: &domain.RegisterOutcome{StatusCode: 422, Body: []byte("bad enum")}}
		status, resp := newTestRecruitService(t, nil, reg, 0).Register(ctx, payload)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, resp.Success)
		assert.Equal(t, "API 오류 (422): bad enum", resp.Error)
	})

	t.Run("transport failure", func(t *testing.T) {
		reg := &stubRegistrar{err: errors.New("connection refused")}
		status, resp := newTestRecruitService(t, nil, reg, 0).Register(ctx, payload)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, resp.Error, "connection refused")
	})

	invalidBodies := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"null", "null"},
		{"padded null", "  null\n"},
		{"array", `[{"title":"x"}]`},
		{"string", `"채용공고"`},
		{"number", "42"},
		{"empty", ""},
		{"truncated object", `{"title":`},
	}
	for _, tt := range invalidBodies {
		t.Run("invalid body is not forwarded/"+tt.name, func(t *testing.T) {
			reg := &stubRegistrar{}
			status, resp := newTestRecruitService(t, nil, reg, 0).Register(ctx, []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Invalid request body", resp.Error)
			assert.Nil(t, reg.payload)
		})
	}
}
