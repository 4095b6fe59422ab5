package repository

import (
	"context"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

// SQLXInterviewAnswerRepository implements domain.InterviewAnswerRepository
type SQLXInterviewAnswerRepository struct {
	db *sqlx.DB
}

func NewSQLXInterviewAnswerRepository(db *sqlx.DB) domain.InterviewAnswerRepository {
	return &SQLXInterviewAnswerRepository{db: db}
}

func toDomainInterviewAnswer(m *models.InterviewAnswer) *domain.InterviewAnswer {
	if m == nil {
		return nil
	}
	return &domain.InterviewAnswer{
		ID:               m.ID,
		SetID:            m.SetID,
		QuestionID:       m.QuestionID.Int64,
		QuestionOrder:    m.QuestionOrder,
		UserAnswer:       m.UserAnswer,
		FollowUpQuestion: util.NullStringToPtr(m.FollowUpQuestion),
		FollowUpAnswer:   util.NullStringToPtr(m.FollowUpAnswer),
		CreatedAt:        m.CreatedAt,
	}
}

func (r *SQLXInterviewAnswerRepository) Create(ctx context.Context, answer *domain.InterviewAnswer) error {
	query := `INSERT INTO interview_answers (set_id, question_id, question_order, user_answer, follow_up_question, follow_up_answer, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		answer.SetID,
		util.Int64ToNullInt64(answer.QuestionID),
		answer.QuestionOrder,
		answer.UserAnswer,
		util.PtrToNullString(answer.FollowUpQuestion),
		util.PtrToNullString(answer.FollowUpAnswer),
		answer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create interview answer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read interview answer id: %w", err)
	}
	answer.ID = id
	return nil
}

func (r *SQLXInterviewAnswerRepository) ListBySet(ctx context.Context, setID int64) ([]*domain.InterviewAnswer, error) {
	var rows []models.InterviewAnswer
	query := `SELECT id, set_id, question_id, question_order, user_answer, follow_up_question, follow_up_answer, created_at
		FROM interview_answers WHERE set_id = ? ORDER BY question_order, id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, setID); err != nil {
		return nil, fmt.Errorf("failed to list answers of set %d: %w", setID, err)
	}
	out := make([]*domain.InterviewAnswer, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainInterviewAnswer(&rows[i]))
	}
	return out, nil
}

func (r *SQLXInterviewAnswerRepository) UpdateFollowUpAnswer(ctx context.Context, answerID int64, followUpAnswer string) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE interview_answers SET follow_up_answer = ? WHERE id = ?`, followUpAnswer, answerID)
	if err != nil {
		return false, fmt.Errorf("failed to update follow-up answer %d: %w", answerID, err)
	}
	return affectedOne(res)
}
