package dto

import (
	"time"

	"interview-prep/internal/domain"
)

// CreateSetRequest starts an interview session.
// @Description questionCount defaults to 3
type CreateSetRequest struct {
	JobType       string `json:"jobType" validate:"required,oneof=marketing sales it"`
	Level         string `json:"level" validate:"required,oneof=intern entry"`
	QuestionCount *int   `json:"questionCount,omitempty" validate:"omitempty,min=1,max=10"`
}

const DefaultQuestionCount = 3

func (r *CreateSetRequest) Count() int {
	if r.QuestionCount == nil {
		return DefaultQuestionCount
	}
	return *r.QuestionCount
}

type CreateSetResponse struct {
	SetID     int64                    `json:"setId"`
	Questions []domain.SampledQuestion `json:"questions"`
}

// SubmitAnswerRequest questionId 0 은 기본 질문(fallback)
type SubmitAnswerRequest struct {
	SetID          int64              `json:"setId" validate:"required"`
	QuestionID     int64              `json:"questionId" validate:"min=0"`
	QuestionOrder  int                `json:"questionOrder" validate:"required,min=1"`
	UserAnswer     string             `json:"userAnswer" validate:"required_without=Audio"`
	Audio          *domain.AudioInput `json:"audio,omitempty"`
	EnableFollowUp bool               `json:"enableFollowUp"`
	AIModel        string             `json:"aiModel,omitempty"`
}

type SubmitAnswerResponse struct {
	AnswerID         int64   `json:"answerId"`
	FollowUpQuestion *string `json:"followUpQuestion"`
	Transcript       string  `json:"transcript,omitempty"`
}

type SubmitFollowUpRequest struct {
	AnswerID       int64              `json:"answerId" validate:"required"`
	FollowUpAnswer string             `json:"followUpAnswer" validate:"required_without=Audio"`
	Audio          *domain.AudioInput `json:"audio,omitempty"`
}

type InterviewSetResponse struct {
	ID          int64      `json:"id"`
	JobType     string     `json:"jobType"`
	Level       string     `json:"level"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

type InterviewAnswerResponse struct {
	ID               int64             `json:"id"`
	SetID            int64             `json:"setId"`
	QuestionID       int64             `json:"questionId"`
	QuestionOrder    int               `json:"questionOrder"`
	UserAnswer       string            `json:"userAnswer"`
	FollowUpQuestion *string           `json:"followUpQuestion"`
	FollowUpAnswer   *string           `json:"followUpAnswer"`
	CreatedAt        time.Time         `json:"createdAt"`
	Question         *QuestionResponse `json:"question"`
}

type EvaluationResponse struct {
	ID               int64                 `json:"id"`
	SetID            int64                 `json:"setId"`
	Logic            int                   `json:"logic"`
	Evidence         int                   `json:"evidence"`
	JobUnderstanding int                   `json:"jobUnderstanding"`
	Formality        int                   `json:"formality"`
	Completeness     int                   `json:"completeness"`
	OverallFeedback  string                `json:"overallFeedback"`
	DetailedFeedback []domain.FeedbackItem `json:"detailedFeedback"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// InterviewSetDetailResponse 세트 + 답변(질문 포함) + 평가
type InterviewSetDetailResponse struct {
	Set        *InterviewSetResponse      `json:"set"`
	Answers    []*InterviewAnswerResponse `json:"answers"`
	Evaluation *EvaluationResponse        `json:"evaluation"`
}

func NewInterviewSetResponse(s *domain.InterviewSet) *InterviewSetResponse {
	if s == nil {
		return nil
	}
	return &InterviewSetResponse{
		ID:          s.ID,
		JobType:     string(s.JobType),
		Level:       string(s.Level),
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}

func NewInterviewSetResponses(sets []*domain.InterviewSet) []*InterviewSetResponse {
	out := make([]*InterviewSetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, NewInterviewSetResponse(s))
	}
	return out
}

func NewInterviewAnswerResponse(a *domain.InterviewAnswer, q *domain.Question) *InterviewAnswerResponse {
	return &InterviewAnswerResponse{
		ID:               a.ID,
		SetID:            a.SetID,
		QuestionID:       a.QuestionID,
		QuestionOrder:    a.QuestionOrder,
		UserAnswer:       a.UserAnswer,
		FollowUpQuestion: a.FollowUpQuestion,
		FollowUpAnswer:   a.FollowUpAnswer,
		CreatedAt:        a.CreatedAt,
		Question:         NewQuestionResponse(q),
	}
}

func NewEvaluationResponse(e *domain.InterviewEvaluation) *EvaluationResponse {
	if e == nil {
		return nil
	}
	feedback := e.DetailedFeedback
	if feedback == nil {
		feedback = []domain.FeedbackItem{}
	}
	return &EvaluationResponse{
		ID:               e.ID,
		SetID:            e.SetID,
		Logic:            e.Logic,
		Evidence:         e.Evidence,
		JobUnderstanding: e.JobUnderstanding,
		Formality:        e.Formality,
		Completeness:     e.Completeness,
		OverallFeedback:  e.OverallFeedback,
		DetailedFeedback: feedback,
		CreatedAt:        e.CreatedAt,
	}
}
