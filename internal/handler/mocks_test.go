package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/recruit"
	"interview-prep/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuestionService struct {
	ListQuestionsFunc  func(ctx context.Context) ([]*dto.QuestionResponse, error)
	GetQuestionFunc    func(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	CreateQuestionFunc func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestionFunc func(ctx context.Context, id int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestionFunc func(ctx context.Context, id int64) error
	ListHistoryFunc    func(ctx context.Context, questionID int64) ([]*dto.QAHistoryResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context) ([]*dto.QuestionResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	if m.GetQuestionFunc != nil {
		return m.GetQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.GetQuestionFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) UpdateQuestion(ctx context.Context, id int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, id, req)
	}
	panic("MockQuestionService.UpdateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}
func (m *MockQuestionService) ListHistory(ctx context.Context, questionID int64) ([]*dto.QAHistoryResponse, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx, questionID)
	}
	panic("MockQuestionService.ListHistoryFunc not implemented")
}

type MockAnswerEvaluationService struct {
	EvaluateFunc func(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error)
}

func (m *MockAnswerEvaluationService) Evaluate(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, req)
	}
	panic("MockAnswerEvaluationService.EvaluateFunc not implemented")
}

type MockInterviewService struct {
	CreateSetFunc      func(ctx context.Context, req *dto.CreateSetRequest) (*dto.CreateSetResponse, error)
	ListSetsFunc       func(ctx context.Context) ([]*dto.InterviewSetResponse, error)
	GetSetDetailFunc   func(ctx context.Context, id int64) (*dto.InterviewSetDetailResponse, error)
	SubmitAnswerFunc   func(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	SubmitFollowUpFunc func(ctx context.Context, req *dto.SubmitFollowUpRequest) (*dto.SuccessResponse, error)
	ExportSetsFunc     func(ctx context.Context) ([]byte, error)
}

func (m *MockInterviewService) CreateSet(ctx context.Context, req *dto.CreateSetRequest) (*dto.CreateSetResponse, error) {
	if m.CreateSetFunc != nil {
		return m.CreateSetFunc(ctx, req)
	}
	panic("MockInterviewService.CreateSetFunc not implemented")
}
func (m *MockInterviewService) ListSets(ctx context.Context) ([]*dto.InterviewSetResponse, error) {
	if m.ListSetsFunc != nil {
		return m.ListSetsFunc(ctx)
	}
	panic("MockInterviewService.ListSetsFunc not implemented")
}
func (m *MockInterviewService) GetSetDetail(ctx context.Context, id int64) (*dto.InterviewSetDetailResponse, error) {
	if m.GetSetDetailFunc != nil {
		return m.GetSetDetailFunc(ctx, id)
	}
	panic("MockInterviewService.GetSetDetailFunc not implemented")
}
func (m *MockInterviewService) SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, req)
	}
	panic("MockInterviewService.SubmitAnswerFunc not implemented")
}
func (m *MockInterviewService) SubmitFollowUp(ctx context.Context, req *dto.SubmitFollowUpRequest) (*dto.SuccessResponse, error) {
	if m.SubmitFollowUpFunc != nil {
		return m.SubmitFollowUpFunc(ctx, req)
	}
	panic("MockInterviewService.SubmitFollowUpFunc not implemented")
}
func (m *MockInterviewService) ExportSets(ctx context.Context) ([]byte, error) {
	if m.ExportSetsFunc != nil {
		return m.ExportSetsFunc(ctx)
	}
	panic("MockInterviewService.ExportSetsFunc not implemented")
}

type MockCompletionService struct {
	CompleteFunc func(ctx context.Context, setID int64, emit stream.Emitter)
}

func (m *MockCompletionService) Complete(ctx context.Context, setID int64, emit stream.Emitter) {
	if m.CompleteFunc != nil {
		m.CompleteFunc(ctx, setID, emit)
		return
	}
	panic("MockCompletionService.CompleteFunc not implemented")
}

type MockAnswerNoteService struct {
	ListNotesFunc  func(ctx context.Context) ([]*dto.AnswerNoteResponse, error)
	CreateNoteFunc func(ctx context.Context, req *dto.CreateAnswerNoteRequest) (*dto.AnswerNoteResponse, error)
	UpdateNoteFunc func(ctx context.Context, id int64, req *dto.UpdateAnswerNoteRequest) (*dto.AnswerNoteResponse, error)
	DeleteNoteFunc func(ctx context.Context, id int64) error
}

func (m *MockAnswerNoteService) ListNotes(ctx context.Context) ([]*dto.AnswerNoteResponse, error) {
	if m.ListNotesFunc != nil {
		return m.ListNotesFunc(ctx)
	}
	panic("MockAnswerNoteService.ListNotesFunc not implemented")
}
func (m *MockAnswerNoteService) CreateNote(ctx context.Context, req *dto.CreateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
	if m.CreateNoteFunc != nil {
		return m.CreateNoteFunc(ctx, req)
	}
	panic("MockAnswerNoteService.CreateNoteFunc not implemented")
}
func (m *MockAnswerNoteService) UpdateNote(ctx context.Context, id int64, req *dto.UpdateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
	if m.UpdateNoteFunc != nil {
		return m.UpdateNoteFunc(ctx, id, req)
	}
	panic("MockAnswerNoteService.UpdateNoteFunc not implemented")
}
func (m *MockAnswerNoteService) DeleteNote(ctx context.Context, id int64) error {
	if m.DeleteNoteFunc != nil {
		return m.DeleteNoteFunc(ctx, id)
	}
	panic("MockAnswerNoteService.DeleteNoteFunc not implemented")
}

type MockRecruitService struct {
	JobCategoriesFunc func() recruit.JobCategories
	PreviewFunc       func(ctx context.Context, req *dto.AnalyzeRecruitRequest, emit stream.Emitter)
	RegisterFunc      func(ctx context.Context, payload []byte) (int, *dto.RegisterRecruitResponse)
}

func (m *MockRecruitService) JobCategories() recruit.JobCategories {
	if m.JobCategoriesFunc != nil {
		return m.JobCategoriesFunc()
	}
	panic("MockRecruitService.JobCategoriesFunc not implemented")
}
func (m *MockRecruitService) Preview(ctx context.Context, req *dto.AnalyzeRecruitRequest, emit stream.Emitter) {
	if m.PreviewFunc != nil {
		m.PreviewFunc(ctx, req, emit)
		return
	}
	panic("MockRecruitService.PreviewFunc not implemented")
}
func (m *MockRecruitService) Register(ctx context.Context, payload []byte) (int, *dto.RegisterRecruitResponse) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, payload)
	}
	panic("MockRecruitService.RegisterFunc not implemented")
}

// --- Helpers ---

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &out))
	return out
}
