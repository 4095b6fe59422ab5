package domain

import (
	"context"
	"time"
)

// AnswerNote 유저가 다듬어 저장한 답변
type AnswerNote struct {
	ID             int64
	QuestionID     int64
	InitialAnswer  string
	FirstFeedback  *string
	SecondFeedback *string
	FinalAnswer    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AnswerNotePatch holds the fields of a partial update; nil fields stay unchanged.
type AnswerNotePatch struct {
	FirstFeedback  *string
	SecondFeedback *string
	FinalAnswer    *string
}

type AnswerNoteRepository interface {
	List(ctx context.Context) ([]*AnswerNote, error)
	Create(ctx context.Context, note *AnswerNote) error
	// Update returns (nil, nil) when no note has the id.
	Update(ctx context.Context, id int64, patch AnswerNotePatch, updatedAt time.Time) (*AnswerNote, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
