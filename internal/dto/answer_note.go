package dto

import (
	"time"

	"interview-prep/internal/domain"
)

type CreateAnswerNoteRequest struct {
	QuestionID     int64   `json:"questionId" validate:"required"`
	InitialAnswer  string  `json:"initialAnswer" validate:"required"`
	FirstFeedback  *string `json:"firstFeedback,omitempty"`
	SecondFeedback *string `json:"secondFeedback,omitempty"`
	FinalAnswer    *string `json:"finalAnswer,omitempty"`
}

// UpdateAnswerNoteRequest 생략된 필드는 그대로 유지
type UpdateAnswerNoteRequest struct {
	FirstFeedback  *string `json:"firstFeedback,omitempty"`
	SecondFeedback *string `json:"secondFeedback,omitempty"`
	FinalAnswer    *string `json:"finalAnswer,omitempty"`
}

type AnswerNoteResponse struct {
	ID             int64     `json:"id"`
	QuestionID     int64     `json:"questionId"`
	InitialAnswer  string    `json:"initialAnswer"`
	FirstFeedback  *string   `json:"firstFeedback"`
	SecondFeedback *string   `json:"secondFeedback"`
	FinalAnswer    *string   `json:"finalAnswer"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewAnswerNoteResponse(n *domain.AnswerNote) *AnswerNoteResponse {
	return &AnswerNoteResponse{
		ID:             n.ID,
		QuestionID:     n.QuestionID,
		InitialAnswer:  n.InitialAnswer,
		FirstFeedback:  n.FirstFeedback,
		SecondFeedback: n.SecondFeedback,
		FinalAnswer:    n.FinalAnswer,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func NewAnswerNoteResponses(notes []*domain.AnswerNote) []*AnswerNoteResponse {
	out := make([]*AnswerNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewAnswerNoteResponse(n))
	}
	return out
}
