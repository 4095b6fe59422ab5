package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/recruit"
	"interview-prep/internal/stream"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

const (
	recruitPDFFilename = "recruit.pdf"
	recruitPDFEngine   = "mistral-ocr"
)

// RecruitService turns PDF job postings into recruiting-API payloads.
type RecruitService interface {
	JobCategories() recruit.JobCategories
	// Preview streams the analysis of one PDF; it ends with one complete or error event.
	Preview(ctx context.Context, req *dto.AnalyzeRecruitRequest, emit stream.Emitter)
	// Register forwards one posting and returns the HTTP status to answer with.
	Register(ctx context.Context, payload []byte) (int, *dto.RegisterRecruitResponse)
}

type recruitService struct {
	catalogue         *recruit.Catalogue
	opener            domain.StreamOpener
	registrar         domain.RecruitRegistrar
	model             string
	keepaliveInterval time.Duration
}

func NewRecruitService(
	catalogue *recruit.Catalogue,
	opener domain.StreamOpener,
	registrar domain.RecruitRegistrar,
	llmCfg config.LLMConfig,
	recruitCfg config.RecruitConfig,
) RecruitService {
	return &recruitService{
		catalogue:         catalogue,
		opener:            opener,
		registrar:         registrar,
		model:             llmCfg.RecruitModel,
		keepaliveInterval: recruitCfg.KeepaliveInterval,
	}
}

func (s *recruitService) JobCategories() recruit.JobCategories {
	return s.catalogue.JobCategories
}

func (s *recruitService) Preview(ctx context.Context, req *dto.AnalyzeRecruitRequest, emit stream.Emitter) {
	l := logger.Get().With(zap.String("operation", "recruit_preview"))
	l.Info("PDF analysis started",
		zap.Int("pdf_base64_length", len(req.PDFBase64)),
		zap.String("company_image_url", req.CompanyImageURL))

	emit.Emit(dto.StreamEvent{
		Type:      dto.EventStart,
		Message:   "📄 PDF 분석을 시작합니다...",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})

	prompt, err := s.catalogue.BuildAnalysisPrompt(req.CompanyImageURL, req.DirectInputApplicationMethod)
	if err != nil {
		l.Error("Failed to build analysis prompt", zap.Error(err))
		emit.Emit(errorEvent("❌ 오류가 발생했습니다.", err))
		return
	}

	emit.Emit(dto.StreamEvent{
		Type:    dto.EventProgress,
		Message: "🤖 AI 분석 중... (스트리밍 시작)",
		Step:    "ai_analysis",
	})

	// 업스트림이 첫 바이트를 줄 때까지만 keepalive 를 보낸다
	heartbeat := stream.StartHeartbeat(s.keepaliveInterval, func(count int, elapsed time.Duration) {
		seconds := int(elapsed / time.Second)
		l.Debug("Keepalive", zap.Int("count", count))
		emit.Emit(dto.StreamEvent{
			Type:    dto.EventKeepalive,
			Message: fmt.Sprintf("⏳ AI가 PDF를 분석하고 있습니다... (%d초 경과)", seconds),
			Elapsed: seconds,
		})
	})
	src, err := s.opener.OpenStream(ctx, domain.StreamRequest{
		Model:       s.model,
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   300000,
		File: &domain.FileAttachment{
			Filename: recruitPDFFilename,
			MimeType: "application/pdf",
			Base64:   req.PDFBase64,
		},
		PDFEngine: recruitPDFEngine,
	})
	heartbeat.Stop()
	if err != nil {
		l.Error("Failed to open analysis stream", zap.String("model", s.model), zap.Error(err))
		emit.Emit(errorEvent("❌ 오류가 발생했습니다.", err))
		return
	}

	raw, chunks, err := stream.Forward(src, func(content string, index, length int) {
		emit.Emit(dto.StreamEvent{Type: dto.EventChunk, Content: content, ChunkIndex: index, CurrentLength: length})
	})
	if err != nil {
		l.Error("Analysis stream failed", zap.Int("chunks", chunks), zap.Error(err))
		emit.Emit(errorEvent("❌ 오류가 발생했습니다.", err))
		return
	}

	emit.Emit(dto.StreamEvent{
		Type:        dto.EventProgress,
		Message:     "✅ AI 분석 완료! JSON 파싱 중...",
		Step:        "parsing",
		TotalChunks: dto.IntPtr(chunks),
		TotalLength: dto.IntPtr(len([]rune(raw))),
	})

	postings, failure := parsePostings(raw)
	if failure != nil {
		l.Error("Analysis response is not valid JSON", zap.String("excerpt", failure.Excerpt()), zap.Error(failure))
		evt := errorEvent("❌ JSON 파싱 실패", failure)
		evt.RawResponse = failure.Excerpt()
		emit.Emit(evt)
		return
	}

	l.Info("PDF analysis finished", zap.Int("chunks", chunks), zap.Int("postings", len(postings)))
	emit.Emit(dto.StreamEvent{
		Type:    dto.EventComplete,
		Message: fmt.Sprintf("🎉 분석 완료! %d개의 채용 공고를 발견했습니다.", len(postings)),
		Count:   dto.IntPtr(len(postings)),
		Data:    postings,
	})
}

// parsePostings accepts either one posting object or an array of them.
func parsePostings(raw string) ([]json.RawMessage, *util.ParseFailure) {
	parsed, failure := util.ParseLLMJSON[json.RawMessage](raw)
	if failure != nil {
		return nil, failure
	}
	trimmed := bytes.TrimSpace(parsed)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []json.RawMessage{trimmed}, nil
	}
	postings := []json.RawMessage{}
	if err := json.Unmarshal(trimmed, &postings); err != nil {
		return nil, &util.ParseFailure{Raw: raw, Cleaned: string(trimmed), Err: err}
	}
	return postings, nil
}

func (s *recruitService) Register(ctx context.Context, payload []byte) (int, *dto.RegisterRecruitResponse) {
	l := logger.Get().With(zap.String("operation", "recruit_register"))

	var posting struct {
		Title string `json:"title"`
	}
	body := bytes.TrimSpace(payload)
	if len(body) == 0 || body[0] != '{' {
		l.Warn("Register request body is not a JSON object", zap.Int("size", len(payload)))
		return http.StatusBadRequest, &dto.RegisterRecruitResponse{Success: false, Error: "Invalid request body"}
	}
	if err := json.Unmarshal(body, &posting); err != nil {
		l.Warn("Register request body is not a JSON object", zap.Error(err))
		return http.StatusBadRequest, &dto.RegisterRecruitResponse{Success: false, Error: "Invalid request body"}
	}
	title := posting.Title
	if title == "" {
		title = "제목 없음"
	}
	l.Info("Registering posting", zap.String("title", title))

	outcome, err := s.registrar.Register(ctx, payload)
	if err != nil {
		return http.StatusInternalServerError, &dto.RegisterRecruitResponse{Success: false, Error: err.Error()}
	}
	if !outcome.OK() {
		msg := fmt.Sprintf("API 오류 (%d): %s", outcome.StatusCode, string(outcome.Body))
		l.Warn("Recruiting API rejected posting", zap.String("title", title), zap.Int("status", outcome.StatusCode))
		return http.StatusBadRequest, &dto.RegisterRecruitResponse{Success: false, Error: msg}
	}
	if !json.Valid(outcome.Body) {
		l.Warn("Recruiting API returned a non-JSON body", zap.String("title", title))
		return http.StatusBadRequest, &dto.RegisterRecruitResponse{Success: false, Error: "Recruiting API returned an invalid response"}
	}

	l.Info("Posting registered", zap.String("title", title))
	return http.StatusOK, &dto.RegisterRecruitResponse{Success: true, Data: json.RawMessage(outcome.Body)}
}
