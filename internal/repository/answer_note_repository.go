package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

const answerNoteColumns = `id, question_id, initial_answer, first_feedback, second_feedback, final_answer, created_at, updated_at`

// SQLXAnswerNoteRepository implements domain.AnswerNoteRepository
type SQLXAnswerNoteRepository struct {
	db *sqlx.DB
}

func NewSQLXAnswerNoteRepository(db *sqlx.DB) domain.AnswerNoteRepository {
	return &SQLXAnswerNoteRepository{db: db}
}

func toDomainAnswerNote(m *models.AnswerNote) *domain.AnswerNote {
	if m == nil {
		return nil
	}
	return &domain.AnswerNote{
		ID:             m.ID,
		QuestionID:     m.QuestionID,
		InitialAnswer:  m.InitialAnswer,
		FirstFeedback:  util.NullStringToPtr(m.FirstFeedback),
		SecondFeedback: util.NullStringToPtr(m.SecondFeedback),
		FinalAnswer:    util.NullStringToPtr(m.FinalAnswer),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *SQLXAnswerNoteRepository) List(ctx context.Context) ([]*domain.AnswerNote, error) {
	var rows []models.AnswerNote
	query := `SELECT ` + answerNoteColumns + ` FROM answer_notes ORDER BY updated_at DESC, id DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list answer notes: %w", err)
	}
	out := make([]*domain.AnswerNote, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainAnswerNote(&rows[i]))
	}
	return out, nil
}

func (r *SQLXAnswerNoteRepository) Create(ctx context.Context, note *domain.AnswerNote) error {
	query := `INSERT INTO answer_notes (question_id, initial_answer, first_feedback, second_feedback, final_answer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		note.QuestionID,
		note.InitialAnswer,
		util.PtrToNullString(note.FirstFeedback),
		util.PtrToNullString(note.SecondFeedback),
		util.PtrToNullString(note.FinalAnswer),
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create answer note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read answer note id: %w", err)
	}
	note.ID = id
	return nil
}

// Update applies the non-nil fields of patch. COALESCE keeps the stored
// value for fields the client left out.
func (r *SQLXAnswerNoteRepository) Update(ctx context.Context, id int64, patch domain.AnswerNotePatch, updatedAt time.Time) (*domain.AnswerNote, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE answer_notes SET
		first_feedback = COALESCE(?, first_feedback),
		second_feedback = COALESCE(?, second_feedback),
		final_answer = COALESCE(?, final_answer),
		updated_at = ?
		WHERE id = ?`
	res, err := exec.ExecContext(ctx, query,
		util.PtrToNullString(patch.FirstFeedback),
		util.PtrToNullString(patch.SecondFeedback),
		util.PtrToNullString(patch.FinalAnswer),
		updatedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update answer note %d: %w", id, err)
	}
	ok, err := affectedOne(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var row models.AnswerNote
	if err := exec.GetContext(ctx, &row, `SELECT `+answerNoteColumns+` FROM answer_notes WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload answer note %d: %w", id, err)
	}
	return toDomainAnswerNote(&row), nil
}

func (r *SQLXAnswerNoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM answer_notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete answer note %d: %w", id, err)
	}
	return affectedOne(res)
}
