package repository

import (
	"context"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SQLXQAHistoryRepository implements domain.QAHistoryRepository
type SQLXQAHistoryRepository struct {
	db *sqlx.DB
}

func NewSQLXQAHistoryRepository(db *sqlx.DB) domain.QAHistoryRepository {
	return &SQLXQAHistoryRepository{db: db}
}

func (r *SQLXQAHistoryRepository) Create(ctx context.Context, h *domain.QAHistory) error {
	query := `INSERT INTO qa_history (question_id, user_answer, ai_model, ai_response, score, hints, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		h.QuestionID, h.UserAnswer, h.AIModel, h.AIResponse, h.Score, h.Hints, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create qa history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read qa history id: %w", err)
	}
	h.ID = id
	return nil
}

func (r *SQLXQAHistoryRepository) ListByQuestion(ctx context.Context, questionID int64) ([]*domain.QAHistory, error) {
	var rows []models.QAHistory
	query := `SELECT id, question_id, user_answer, ai_model, ai_response, score, hints, created_at
		FROM qa_history WHERE question_id = ? ORDER BY created_at DESC, id DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, questionID); err != nil {
		return nil, fmt.Errorf("failed to list qa history of question %d: %w", questionID, err)
	}
	out := make([]*domain.QAHistory, 0, len(rows))
	for _, m := range rows {
		out = append(out, &domain.QAHistory{
			ID:         m.ID,
			QuestionID: m.QuestionID,
			UserAnswer: m.UserAnswer,
			AIModel:    m.AIModel,
			AIResponse: m.AIResponse,
			Score:      m.Score,
			Hints:      m.Hints,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}
