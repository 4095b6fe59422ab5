package dto

import (
	"time"

	"interview-prep/internal/domain"
)

// CreateQuestionRequest is the body of POST/PUT /questions.
// @Description Question registration form
type CreateQuestionRequest struct {
	Question    string `json:"question" validate:"required"`
	ModelAnswer string `json:"modelAnswer" validate:"required"`
	Reasoning   string `json:"reasoning" validate:"required"`
	Category    string `json:"category,omitempty" validate:"omitempty,oneof=common job foreigner"`
	JobType     string `json:"jobType,omitempty" validate:"omitempty,oneof=marketing sales it"`
	Level       string `json:"level,omitempty" validate:"omitempty,oneof=intern entry"`
}

// QuestionResponse represents a question bank entry
// @Description Question information
type QuestionResponse struct {
	ID          int64     `json:"id"`
	Question    string    `json:"question"`
	Category    string    `json:"category"`
	JobType     *string   `json:"jobType"`
	Level       *string   `json:"level"`
	ModelAnswer string    `json:"modelAnswer"`
	Reasoning   string    `json:"reasoning"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EvaluateAnswerRequest asks for a single-shot evaluation of one answer.
// Either userAnswer or audio must be present.
type EvaluateAnswerRequest struct {
	QuestionID int64              `json:"questionId" validate:"required"`
	UserAnswer string             `json:"userAnswer" validate:"required_without=Audio"`
	Audio      *domain.AudioInput `json:"audio,omitempty"`
	AIModel    string             `json:"aiModel" validate:"required"`
}

// EvaluateAnswerResponse AI 평가 결과
type EvaluateAnswerResponse struct {
	Score        int    `json:"score"`
	Hints        string `json:"hints"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	HistoryID    int64  `json:"historyId"`
	Transcript   string `json:"transcript,omitempty"`
}

type QAHistoryResponse struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"questionId"`
	UserAnswer string    `json:"userAnswer"`
	AIModel    string    `json:"aiModel"`
	AIResponse string    `json:"aiResponse"`
	Score      int       `json:"score"`
	Hints      string    `json:"hints"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SuccessResponse is returned by mutations that have nothing else to report.
type SuccessResponse struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript,omitempty"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func NewQuestionResponse(q *domain.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:          q.ID,
		Question:    q.Question,
		Category:    string(q.Category),
		JobType:     optionalString(string(q.JobType)),
		Level:       optionalString(string(q.Level)),
		ModelAnswer: q.ModelAnswer,
		Reasoning:   q.Reasoning,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func NewQuestionResponses(qs []*domain.Question) []*QuestionResponse {
	out := make([]*QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

func NewQAHistoryResponses(items []*domain.QAHistory) []*QAHistoryResponse {
	out := make([]*QAHistoryResponse, 0, len(items))
	for _, h := range items {
		out = append(out, &QAHistoryResponse{
			ID:         h.ID,
			QuestionID: h.QuestionID,
			UserAnswer: h.UserAnswer,
			AIModel:    h.AIModel,
			AIResponse: h.AIResponse,
			Score:      h.Score,
			Hints:      h.Hints,
			CreatedAt:  h.CreatedAt,
		})
	}
	return out
}
