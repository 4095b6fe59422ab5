package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// QuestionCategory 질문 분류 (공통/직무/외국인특화)
type QuestionCategory string

const (
	CategoryCommon    QuestionCategory = "common"
	CategoryJob       QuestionCategory = "job"
	CategoryForeigner QuestionCategory = "foreigner"
)

func (c QuestionCategory) IsValid() bool {
	switch c {
	case CategoryCommon, CategoryJob, CategoryForeigner:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeMarketing JobType = "marketing"
	JobTypeSales     JobType = "sales"
	JobTypeIT        JobType = "it"
)

func (j JobType) IsValid() bool {
	switch j {
	case JobTypeMarketing, JobTypeSales, JobTypeIT:
		return true
	}
	return false
}

type Level string

const (
	LevelIntern Level = "intern"
	LevelEntry  Level = "entry"
)

func (l Level) IsValid() bool {
	return l == LevelIntern || l == LevelEntry
}

// Question is a question-bank entry with its reference answer.
type Question struct {
	ID          int64
	Question    string
	Category    QuestionCategory
	JobType     JobType // empty for non-job questions
	Level       Level   // empty when not level specific
	ModelAnswer string
	Reasoning   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(question, modelAnswer, reasoning string, category QuestionCategory, jobType JobType, level Level) *Question {
	now := time.Now()
	if category == "" {
		category = CategoryCommon
	}
	return &Question{
		Question:    question,
		Category:    category,
		JobType:     jobType,
		Level:       level,
		ModelAnswer: modelAnswer,
		Reasoning:   reasoning,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question is required")
	}
	if strings.TrimSpace(q.ModelAnswer) == "" {
		return errors.New("model answer is required")
	}
	if strings.TrimSpace(q.Reasoning) == "" {
		return errors.New("reasoning is required")
	}
	if !q.Category.IsValid() {
		return errors.New("invalid category: " + string(q.Category))
	}
	if q.JobType != "" && !q.JobType.IsValid() {
		return errors.New("invalid job type: " + string(q.JobType))
	}
	if q.Level != "" && !q.Level.IsValid() {
		return errors.New("invalid level: " + string(q.Level))
	}
	return nil
}

// QuestionRepository defines the interface for question persistence.
// Lookups return (nil, nil) when the row does not exist.
type QuestionRepository interface {
	List(ctx context.Context) ([]*Question, error)
	GetByID(ctx context.Context, id int64) (*Question, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*Question, error)
	// ListForSampling returns at most limit questions of the category.
	// jobType is only applied when non-empty.
	ListForSampling(ctx context.Context, category QuestionCategory, jobType JobType, limit int) ([]*Question, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, q *Question) error
	Update(ctx context.Context, q *Question) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// QAHistory 단일 질문 연습의 AI 평가 기록 (append-only)
type QAHistory struct {
	ID         int64
	QuestionID int64
	UserAnswer string
	AIModel    string
	AIResponse string
	Score      int
	Hints      string
	CreatedAt  time.Time
}

type QAHistoryRepository interface {
	Create(ctx context.Context, h *QAHistory) error
	ListByQuestion(ctx context.Context, questionID int64) ([]*QAHistory, error)
}
