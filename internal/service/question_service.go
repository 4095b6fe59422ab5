package service

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// QuestionService manages the question bank and its practice history.
type QuestionService interface {
	ListQuestions(ctx context.Context) ([]*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) error
	ListHistory(ctx context.Context, questionID int64) ([]*dto.QAHistoryResponse, error)
}

type questionService struct {
	questions domain.QuestionRepository
	history   domain.QAHistoryRepository
}

func NewQuestionService(questions domain.QuestionRepository, history domain.QAHistoryRepository) QuestionService {
	return &questionService{questions: questions, history: history}
}

func (s *questionService) ListQuestions(ctx context.Context) ([]*dto.QuestionResponse, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch questions", err)
	}
	return dto.NewQuestionResponses(questions), nil
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionResponse, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError()
	}
	return dto.NewQuestionResponse(q), nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	q := domain.NewQuestion(req.Question, req.ModelAnswer, req.Reasoning,
		domain.QuestionCategory(req.Category), domain.JobType(req.JobType), domain.Level(req.Level))
	if err := q.Validate(); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, domain.NewInternalError("Failed to create question", err)
	}
	logger.Get().Info("Question created", zap.Int64("question_id", q.ID), zap.String("category", string(q.Category)))
	return dto.NewQuestionResponse(q), nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	existing, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch question", err)
	}
	if existing == nil {
		return nil, domain.NewQuestionNotFoundError()
	}

	existing.Question = req.Question
	existing.ModelAnswer = req.ModelAnswer
	existing.Reasoning = req.Reasoning
	// 분류 필드는 요청에 있을 때만 바꾼다
	if req.Category != "" {
		existing.Category = domain.QuestionCategory(req.Category)
	}
	if req.JobType != "" {
		existing.JobType = domain.JobType(req.JobType)
	}
	if req.Level != "" {
		existing.Level = domain.Level(req.Level)
	}
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}

	ok, err := s.questions.Update(ctx, existing)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	if !ok {
		return nil, domain.NewQuestionNotFoundError()
	}
	return dto.NewQuestionResponse(existing), nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	ok, err := s.questions.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	if !ok {
		return domain.NewQuestionNotFoundError()
	}
	return nil
}

func (s *questionService) ListHistory(ctx context.Context, questionID int64) ([]*dto.QAHistoryResponse, error) {
	items, err := s.history.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch QA history", err)
	}
	return dto.NewQAHistoryResponses(items), nil
}
