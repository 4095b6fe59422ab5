package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/handler"
	"interview-prep/internal/middleware"
	"interview-prep/internal/recruit"
	"interview-prep/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	questions   *MockQuestionService
	evaluator   *MockAnswerEvaluationService
	interviews  *MockInterviewService
	completions *MockCompletionService
	notes       *MockAnswerNoteService
	recruits    *MockRecruitService
}

func setupApp(s testServices) *fiber.App {
	binder := middleware.NewRequestBinder()
	app := newTestApp()
	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Questions:   handler.NewQuestionHandler(s.questions, s.evaluator, binder),
		Interview:   handler.NewInterviewHandler(s.interviews, s.completions, binder),
		AnswerNotes: handler.NewAnswerNoteHandler(s.notes, binder),
		Recruit:     handler.NewRecruitHandler(s.recruits, binder),
	})
	return app
}

func newServices() testServices {
	return testServices{
		questions:   &MockQuestionService{},
		evaluator:   &MockAnswerEvaluationService{},
		interviews:  &MockInterviewService{},
		completions: &MockCompletionService{},
		notes:       &MockAnswerNoteService{},
		recruits:    &MockRecruitService{},
	}
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQuestionHandler_GetQuestion(t *testing.T) {
	s := newServices()
	s.questions.GetQuestionFunc = func(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
		if id == 7 {
			return &dto.QuestionResponse{ID: 7, Question: "자기소개를 해주세요", Category: "common"}, nil
		}
		return nil, domain.NewQuestionNotFoundError()
	}
	app := setupApp(s)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{"found", "/api/questions/7", http.StatusOK, ""},
		{"not found", "/api/questions/8", http.StatusNotFound, "Question not found"},
		{"non numeric id", "/api/questions/abc", http.StatusBadRequest, "Request validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeMap(t, resp)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.Equal(t, float64(7), body["id"])
			}
		})
	}
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	s := newServices()
	var got *dto.CreateQuestionRequest
	s.questions.CreateQuestionFunc = func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
		got = req
		return &dto.QuestionResponse{ID: 1, Question: req.Question, Category: "common"}, nil
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/questions", map[string]string{
		"question":    "입사 후 포부는?",
		"modelAnswer": "모범 답안",
		"reasoning":   "의도",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "입사 후 포부는?", got.Question)
}

func TestQuestionHandler_CreateQuestion_Validation(t *testing.T) {
	app := setupApp(newServices())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/questions", map[string]string{
		"question": "모범 답안 없음",
		"category": "unknown",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestQuestionHandler_DeleteQuestion(t *testing.T) {
	s := newServices()
	s.questions.DeleteQuestionFunc = func(ctx context.Context, id int64) error { return nil }
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/questions/3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeMap(t, resp)["success"])
}

func TestQuestionHandler_EvaluateAnswer(t *testing.T) {
	s := newServices()
	s.evaluator.EvaluateFunc = func(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error) {
		return &dto.EvaluateAnswerResponse{Score: 80, Hints: "구체적 사례 보강", HistoryID: 11}, nil
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/questions/evaluate", map[string]interface{}{
		"questionId": 1,
		"userAnswer": "답변",
		"aiModel":    "openai/gpt-4o",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, float64(80), body["score"])
	assert.Equal(t, float64(11), body["historyId"])
}

func TestQuestionHandler_EvaluateAnswer_RequiresAnswerOrAudio(t *testing.T) {
	app := setupApp(newServices())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/questions/evaluate", map[string]interface{}{
		"questionId": 1,
		"aiModel":    "openai/gpt-4o",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuestionHandler_ListHistoryRouteNotShadowed(t *testing.T) {
	s := newServices()
	var gotID int64
	s.questions.ListHistoryFunc = func(ctx context.Context, questionID int64) ([]*dto.QAHistoryResponse, error) {
		gotID = questionID
		return []*dto.QAHistoryResponse{}, nil
	}
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/questions/history/5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(5), gotID)
}

func TestInterviewHandler_CreateSet(t *testing.T) {
	s := newServices()
	s.interviews.CreateSetFunc = func(ctx context.Context, req *dto.CreateSetRequest) (*dto.CreateSetResponse, error) {
		assert.Equal(t, dto.DefaultQuestionCount, req.Count())
		return &dto.CreateSetResponse{SetID: 9, Questions: []domain.SampledQuestion{}}, nil
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/interview/sets", map[string]string{
		"jobType": "it",
		"level":   "entry",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(9), decodeMap(t, resp)["setId"])
}

func TestInterviewHandler_CreateSet_QuestionCountOutOfRange(t *testing.T) {
	app := setupApp(newServices())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/interview/sets", map[string]interface{}{
		"jobType":       "it",
		"level":         "entry",
		"questionCount": 11,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInterviewHandler_SubmitAnswer_Conflict(t *testing.T) {
	s := newServices()
	s.interviews.SubmitAnswerFunc = func(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
		return nil, domain.NewConflictError("Interview set is already completed")
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/interview/answers", map[string]interface{}{
		"setId":         1,
		"questionId":    0,
		"questionOrder": 1,
		"userAnswer":    "답변",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestInterviewHandler_SubmitFollowUp_NotFound(t *testing.T) {
	s := newServices()
	s.interviews.SubmitFollowUpFunc = func(ctx context.Context, req *dto.SubmitFollowUpRequest) (*dto.SuccessResponse, error) {
		return nil, domain.NewAnswerNotFoundError()
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/interview/follow-up-answers", map[string]interface{}{
		"answerId":       404,
		"followUpAnswer": "꼬리 답변",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInterviewHandler_ExportRouteNotShadowed(t *testing.T) {
	s := newServices()
	s.interviews.ExportSetsFunc = func(ctx context.Context) ([]byte, error) {
		return []byte("PK"), nil
	}
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/interview/sets/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "PK", string(readBody(t, resp)))
}

func TestInterviewHandler_CompleteSet_Streams(t *testing.T) {
	s := newServices()
	s.completions.CompleteFunc = func(ctx context.Context, setID int64, emit stream.Emitter) {
		assert.Equal(t, int64(4), setID)
		emit.Emit(dto.StreamEvent{Type: "start", Message: "면접 평가 시작..."})
		emit.Emit(dto.StreamEvent{Type: "chunk", Content: "{", ChunkIndex: 1, CurrentLength: 1})
		emit.Emit(dto.StreamEvent{Type: "complete", EvaluationID: 12})
	}
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/interview/sets/4/complete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	body := string(readBody(t, resp))
	frames := strings.Split(strings.TrimSpace(body), "\n\n")
	require.Len(t, frames, 3)
	for _, frame := range frames {
		assert.True(t, strings.HasPrefix(frame, "id: "), frame)
		assert.NotContains(t, frame, "event: ")
	}
	assert.Contains(t, frames[0], `"type":"start"`)
	assert.Contains(t, frames[2], `"evaluationId":12`)
}

func TestInterviewHandler_GetSet(t *testing.T) {
	s := newServices()
	s.interviews.GetSetDetailFunc = func(ctx context.Context, id int64) (*dto.InterviewSetDetailResponse, error) {
		return nil, domain.NewInterviewSetNotFoundError()
	}
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/interview/sets/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnswerNoteHandler(t *testing.T) {
	s := newServices()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.notes.CreateNoteFunc = func(ctx context.Context, req *dto.CreateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
		return &dto.AnswerNoteResponse{ID: 1, QuestionID: req.QuestionID, InitialAnswer: req.InitialAnswer, CreatedAt: now, UpdatedAt: now}, nil
	}
	s.notes.UpdateNoteFunc = func(ctx context.Context, id int64, req *dto.UpdateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
		if id != 1 {
			return nil, domain.NewAnswerNoteNotFoundError()
		}
		return &dto.AnswerNoteResponse{ID: 1, FinalAnswer: req.FinalAnswer}, nil
	}
	s.notes.DeleteNoteFunc = func(ctx context.Context, id int64) error {
		if id != 1 {
			return domain.NewAnswerNoteNotFoundError()
		}
		return nil
	}
	app := setupApp(s)

	t.Run("create", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/answer-notes", map[string]interface{}{
			"questionId":    3,
			"initialAnswer": "초안",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Equal(t, float64(3), body["questionId"])
		assert.Nil(t, body["finalAnswer"])
	})

	t.Run("update", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/answer-notes/1", map[string]string{"finalAnswer": "완성본"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "완성본", decodeMap(t, resp)["finalAnswer"])
	})

	t.Run("update unknown", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/answer-notes/2", map[string]string{"finalAnswer": "x"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Answer note not found", decodeMap(t, resp)["error"])
	})

	t.Run("delete", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/answer-notes/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeMap(t, resp)["success"])
	})
}

func TestRecruitHandler_JobCategories(t *testing.T) {
	s := newServices()
	s.recruits.JobCategoriesFunc = func() recruit.JobCategories {
		return recruit.JobCategories{
			{Name: "IT_DEVELOPMENT", Roles: []string{"BACKEND_DEVELOPER"}},
			{Name: "MARKETING", Roles: []string{"BRAND_MARKETER"}},
		}
	}
	app := setupApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auto-recruit/job-categories", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"IT_DEVELOPMENT":["BACKEND_DEVELOPER"],"MARKETING":["BRAND_MARKETER"]}`, string(readBody(t, resp)))
}

func TestRecruitHandler_RegisterPassesStatusThrough(t *testing.T) {
	s := newServices()
	var got []byte
	s.recruits.RegisterFunc = func(ctx context.Context, payload []byte) (int, *dto.RegisterRecruitResponse) {
		got = payload
		return http.StatusBadRequest, &dto.RegisterRecruitResponse{Success: false, Error: "API 오류 (422): invalid"}
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auto-recruit/register", map[string]string{"title": "백엔드 인턴"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(got), "백엔드 인턴")
	body := decodeMap(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "API 오류 (422): invalid", body["error"])
}

func TestRecruitHandler_PreviewStream(t *testing.T) {
	s := newServices()
	s.recruits.PreviewFunc = func(ctx context.Context, req *dto.AnalyzeRecruitRequest, emit stream.Emitter) {
		emit.Emit(dto.StreamEvent{Type: "start", Message: "분석 시작"})
		emit.Emit(dto.StreamEvent{Type: "complete", Count: dto.IntPtr(0), Data: []interface{}{}})
	}
	app := setupApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auto-recruit/preview-stream", map[string]string{
		"pdfBase64":                    "JVBERi0x",
		"companyImageUrl":              "https://example.com/logo.png",
		"directInputApplicationMethod": "https://example.com/apply",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := string(readBody(t, resp))
	assert.Contains(t, body, "event: start\n")
	assert.Contains(t, body, "event: complete\n")
}

func TestRecruitHandler_PreviewStream_InvalidBody(t *testing.T) {
	app := setupApp(newServices())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auto-recruit/preview-stream", map[string]string{
		"pdfBase64": "JVBERi0x",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", strings.Split(resp.Header.Get("Content-Type"), ";")[0])
}
