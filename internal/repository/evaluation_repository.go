package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const evaluationColumns = `id, set_id, logic, evidence, job_understanding, formality, completeness, overall_feedback, detailed_feedback, created_at`

// SQLXEvaluationRepository implements domain.EvaluationRepository
type SQLXEvaluationRepository struct {
	db *sqlx.DB
}

func NewSQLXEvaluationRepository(db *sqlx.DB) domain.EvaluationRepository {
	return &SQLXEvaluationRepository{db: db}
}

func toDomainEvaluation(m *models.InterviewEvaluation) *domain.InterviewEvaluation {
	if m == nil {
		return nil
	}
	feedback := []domain.FeedbackItem(m.DetailedFeedback)
	if feedback == nil {
		feedback = []domain.FeedbackItem{}
	}
	return &domain.InterviewEvaluation{
		ID:               m.ID,
		SetID:            m.SetID,
		Logic:            m.Logic,
		Evidence:         m.Evidence,
		JobUnderstanding: m.JobUnderstanding,
		Formality:        m.Formality,
		Completeness:     m.Completeness,
		OverallFeedback:  m.OverallFeedback,
		DetailedFeedback: feedback,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *SQLXEvaluationRepository) Create(ctx context.Context, eval *domain.InterviewEvaluation) error {
	query := `INSERT INTO interview_evaluations
		(set_id, logic, evidence, job_understanding, formality, completeness, overall_feedback, detailed_feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		eval.SetID,
		eval.Logic,
		eval.Evidence,
		eval.JobUnderstanding,
		eval.Formality,
		eval.Completeness,
		eval.OverallFeedback,
		models.FeedbackList(eval.DetailedFeedback),
		eval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create evaluation for set %d: %w", eval.SetID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read evaluation id: %w", err)
	}
	eval.ID = id
	return nil
}

func (r *SQLXEvaluationRepository) GetBySetID(ctx context.Context, setID int64) (*domain.InterviewEvaluation, error) {
	var row models.InterviewEvaluation
	query := `SELECT ` + evaluationColumns + ` FROM interview_evaluations WHERE set_id = ?`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, setID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation of set %d: %w", setID, err)
	}
	return toDomainEvaluation(&row), nil
}

func (r *SQLXEvaluationRepository) List(ctx context.Context) ([]*domain.InterviewEvaluation, error) {
	var rows []models.InterviewEvaluation
	query := `SELECT ` + evaluationColumns + ` FROM interview_evaluations ORDER BY set_id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	out := make([]*domain.InterviewEvaluation, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainEvaluation(&rows[i]))
	}
	return out, nil
}
