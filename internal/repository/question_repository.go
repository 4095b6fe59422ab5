package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, category, job_type, level, model_answer, reasoning, created_at, updated_at`

// SQLXQuestionRepository implements domain.QuestionRepository using sqlx
type SQLXQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new question repository
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &SQLXQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:          m.ID,
		Question:    m.Question,
		Category:    domain.QuestionCategory(m.Category),
		JobType:     domain.JobType(m.JobType.String),
		Level:       domain.Level(m.Level.String),
		ModelAnswer: m.ModelAnswer,
		Reasoning:   m.Reasoning,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:          q.ID,
		Question:    q.Question,
		Category:    string(q.Category),
		JobType:     util.StringToNullString(string(q.JobType)),
		Level:       util.StringToNullString(string(q.Level)),
		ModelAnswer: q.ModelAnswer,
		Reasoning:   q.Reasoning,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	out := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuestion(&rows[i]))
	}
	return out
}

func (r *SQLXQuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY created_at DESC, id DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func (r *SQLXQuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

func (r *SQLXQuestionRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Question, error) {
	result := make(map[int64]*domain.Question, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT `+questionColumns+` FROM questions WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build question lookup: %w", err)
	}

	var rows []models.Question
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by ids: %w", err)
	}
	for i := range rows {
		result[rows[i].ID] = toDomainQuestion(&rows[i])
	}
	return result, nil
}

func (r *SQLXQuestionRepository) ListForSampling(ctx context.Context, category domain.QuestionCategory, jobType domain.JobType, limit int) ([]*domain.Question, error) {
	var (
		rows  []models.Question
		query string
		args  []interface{}
	)
	if jobType != "" {
		query = `SELECT ` + questionColumns + ` FROM questions WHERE category = ? AND job_type = ? ORDER BY id LIMIT ?`
		args = []interface{}{string(category), string(jobType), limit}
	} else {
		query = `SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id LIMIT ?`
		args = []interface{}{string(category), limit}
	}

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list %s questions: %w", category, err)
	}
	return toDomainQuestions(rows), nil
}

func (r *SQLXQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (r *SQLXQuestionRepository) Create(ctx context.Context, q *domain.Question) error {
	m := fromDomainQuestion(q)
	query := `INSERT INTO questions (question, category, job_type, level, model_answer, reasoning, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.Question, m.Category, m.JobType, m.Level, m.ModelAnswer, m.Reasoning, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}
	q.ID = id
	return nil
}

func (r *SQLXQuestionRepository) Update(ctx context.Context, q *domain.Question) (bool, error) {
	m := fromDomainQuestion(q)
	query := `UPDATE questions SET question = ?, category = ?, job_type = ?, level = ?, model_answer = ?, reasoning = ?, updated_at = ?
		WHERE id = ?`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.Question, m.Category, m.JobType, m.Level, m.ModelAnswer, m.Reasoning, m.UpdatedAt, m.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update question %d: %w", q.ID, err)
	}
	return affectedOne(res)
}

func (r *SQLXQuestionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return affectedOne(res)
}

// affectedOne reports whether the statement touched at least one row.
func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
