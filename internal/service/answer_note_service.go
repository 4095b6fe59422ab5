package service

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
)

type AnswerNoteService interface {
	ListNotes(ctx context.Context) ([]*dto.AnswerNoteResponse, error)
	CreateNote(ctx context.Context, req *dto.CreateAnswerNoteRequest) (*dto.AnswerNoteResponse, error)
	UpdateNote(ctx context.Context, id int64, req *dto.UpdateAnswerNoteRequest) (*dto.AnswerNoteResponse, error)
	DeleteNote(ctx context.Context, id int64) error
}

type answerNoteService struct {
	notes domain.AnswerNoteRepository
}

func NewAnswerNoteService(notes domain.AnswerNoteRepository) AnswerNoteService {
	return &answerNoteService{notes: notes}
}

// emptyToNil stores blank optional text as NULL.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// ListNotes returns notes most recently updated first.
func (s *answerNoteService) ListNotes(ctx context.Context) ([]*dto.AnswerNoteResponse, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch answer notes", err)
	}
	return dto.NewAnswerNoteResponses(notes), nil
}

func (s *answerNoteService) CreateNote(ctx context.Context, req *dto.CreateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
	now := time.Now()
	note := &domain.AnswerNote{
		QuestionID:     req.QuestionID,
		InitialAnswer:  req.InitialAnswer,
		FirstFeedback:  emptyToNil(req.FirstFeedback),
		SecondFeedback: emptyToNil(req.SecondFeedback),
		FinalAnswer:    emptyToNil(req.FinalAnswer),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, domain.NewInternalError("Failed to create answer note", err)
	}
	return dto.NewAnswerNoteResponse(note), nil
}

func (s *answerNoteService) UpdateNote(ctx context.Context, id int64, req *dto.UpdateAnswerNoteRequest) (*dto.AnswerNoteResponse, error) {
	patch := domain.AnswerNotePatch{
		FirstFeedback:  req.FirstFeedback,
		SecondFeedback: req.SecondFeedback,
		FinalAnswer:    req.FinalAnswer,
	}
	note, err := s.notes.Update(ctx, id, patch, time.Now())
	if err != nil {
		return nil, domain.NewInternalError("Failed to update answer note", err)
	}
	if note == nil {
		return nil, domain.NewAnswerNoteNotFoundError()
	}
	return dto.NewAnswerNoteResponse(note), nil
}

func (s *answerNoteService) DeleteNote(ctx context.Context, id int64) error {
	deleted, err := s.notes.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete answer note", err)
	}
	if !deleted {
		return domain.NewAnswerNoteNotFoundError()
	}
	return nil
}
