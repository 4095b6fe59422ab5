package domain

import (
	"context"
	"time"
)

type SetStatus string

const (
	SetStatusInProgress SetStatus = "in_progress"
	SetStatusCompleted  SetStatus = "completed"
)

// InterviewSet 면접 세트. 평가가 저장될 때 한 번만 completed 로 바뀐다.
type InterviewSet struct {
	ID          int64
	JobType     JobType
	Level       Level
	Status      SetStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewInterviewSet(jobType JobType, level Level) *InterviewSet {
	return &InterviewSet{
		JobType:   jobType,
		Level:     level,
		Status:    SetStatusInProgress,
		CreatedAt: time.Now(),
	}
}

func (s *InterviewSet) IsCompleted() bool {
	return s.Status == SetStatusCompleted
}

// InterviewAnswer is one answer inside a set.
// QuestionID is 0 for fallback questions that have no question-bank row.
type InterviewAnswer struct {
	ID               int64
	SetID            int64
	QuestionID       int64
	QuestionOrder    int
	UserAnswer       string
	FollowUpQuestion *string
	FollowUpAnswer   *string
	CreatedAt        time.Time
}

// FeedbackItem 질문별 상세 피드백
type FeedbackItem struct {
	QuestionOrder int    `json:"questionOrder"`
	Feedback      string `json:"feedback"`
	Improvements  string `json:"improvements"`
}

// InterviewEvaluation 면접 세트 종합 평가 (점수 0-100)
type InterviewEvaluation struct {
	ID               int64
	SetID            int64
	Logic            int
	Evidence         int
	JobUnderstanding int
	Formality        int
	Completeness     int
	OverallFeedback  string
	DetailedFeedback []FeedbackItem
	CreatedAt        time.Time
}

// SampledQuestion is a question handed to the candidate at set creation.
type SampledQuestion struct {
	ID       int64            `json:"id"`
	Question string           `json:"question"`
	Order    int              `json:"order"`
	Category QuestionCategory `json:"category"`
}

// FallbackQuestions 질문 은행이 비어 있을 때 사용하는 기본 질문
var FallbackQuestions = []SampledQuestion{
	{ID: 0, Question: "자기소개를 해주세요.", Category: CategoryCommon, Order: 1},
	{ID: 0, Question: "우리 회사에 지원한 동기는 무엇인가요?", Category: CategoryCommon, Order: 2},
	{ID: 0, Question: "본인의 강점과 약점을 말씀해주세요.", Category: CategoryCommon, Order: 3},
	{ID: 0, Question: "한국에서 일하고 싶은 이유는 무엇인가요?", Category: CategoryForeigner, Order: 4},
	{ID: 0, Question: "5년 후 자신의 모습은 어떨 것 같나요?", Category: CategoryCommon, Order: 5},
}

// FallbackQuestionText resolves the fallback question shown at the given order.
func FallbackQuestionText(order int) (string, bool) {
	for _, q := range FallbackQuestions {
		if q.Order == order {
			return q.Question, true
		}
	}
	return "", false
}

type InterviewSetRepository interface {
	Create(ctx context.Context, set *InterviewSet) error
	GetByID(ctx context.Context, id int64) (*InterviewSet, error)
	List(ctx context.Context) ([]*InterviewSet, error)
	MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error
}

type InterviewAnswerRepository interface {
	Create(ctx context.Context, answer *InterviewAnswer) error
	ListBySet(ctx context.Context, setID int64) ([]*InterviewAnswer, error)
	UpdateFollowUpAnswer(ctx context.Context, answerID int64, followUpAnswer string) (bool, error)
}

type EvaluationRepository interface {
	Create(ctx context.Context, eval *InterviewEvaluation) error
	GetBySetID(ctx context.Context, setID int64) (*InterviewEvaluation, error)
	List(ctx context.Context) ([]*InterviewEvaluation, error)
}

// InterviewCompleted is published once a set has been evaluated.
type InterviewCompleted struct {
	SetID        int64     `json:"setId"`
	EvaluationID int64     `json:"evaluationId"`
	JobType      JobType   `json:"jobType"`
	Level        Level     `json:"level"`
	AverageScore float64   `json:"averageScore"`
	CompletedAt  time.Time `json:"completedAt"`
}

// EventPublisher delivers domain events to other services.
type EventPublisher interface {
	PublishInterviewCompleted(ctx context.Context, evt InterviewCompleted) error
	Close()
}
