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

// SQLXInterviewSetRepository implements domain.InterviewSetRepository
type SQLXInterviewSetRepository struct {
	db *sqlx.DB
}

func NewSQLXInterviewSetRepository(db *sqlx.DB) domain.InterviewSetRepository {
	return &SQLXInterviewSetRepository{db: db}
}

func toDomainInterviewSet(m *models.InterviewSet) *domain.InterviewSet {
	if m == nil {
		return nil
	}
	return &domain.InterviewSet{
		ID:          m.ID,
		JobType:     domain.JobType(m.JobType),
		Level:       domain.Level(m.Level),
		Status:      domain.SetStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		CompletedAt: util.NullTimeToPtr(m.CompletedAt),
	}
}

func (r *SQLXInterviewSetRepository) Create(ctx context.Context, set *domain.InterviewSet) error {
	query := `INSERT INTO interview_sets (job_type, level, status, created_at) VALUES (?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		string(set.JobType), string(set.Level), string(set.Status), set.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create interview set: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read interview set id: %w", err)
	}
	set.ID = id
	return nil
}

func (r *SQLXInterviewSetRepository) GetByID(ctx context.Context, id int64) (*domain.InterviewSet, error) {
	var row models.InterviewSet
	query := `SELECT id, job_type, level, status, created_at, completed_at FROM interview_sets WHERE id = ?`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview set %d: %w", id, err)
	}
	return toDomainInterviewSet(&row), nil
}

func (r *SQLXInterviewSetRepository) List(ctx context.Context) ([]*domain.InterviewSet, error) {
	var rows []models.InterviewSet
	query := `SELECT id, job_type, level, status, created_at, completed_at FROM interview_sets ORDER BY created_at DESC, id DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list interview sets: %w", err)
	}
	out := make([]*domain.InterviewSet, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainInterviewSet(&rows[i]))
	}
	return out, nil
}

// MarkCompleted moves an in-progress set to completed. Calling it for an
// unknown or already completed set is an error so that a transaction
// pairing it with the evaluation insert rolls back.
func (r *SQLXInterviewSetRepository) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) error {
	query := `UPDATE interview_sets SET status = ?, completed_at = ? WHERE id = ? AND status = ?`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		string(domain.SetStatusCompleted), completedAt, id, string(domain.SetStatusInProgress))
	if err != nil {
		return fmt.Errorf("failed to complete interview set %d: %w", id, err)
	}
	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("interview set %d is not in progress", id)
	}
	return nil
}
