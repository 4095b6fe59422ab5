package models

import (
	"database/sql"
	"time"
)

// Question maps to the questions table
type Question struct {
	ID          int64          `db:"id"`
	Question    string         `db:"question"`
	Category    string         `db:"category"`
	JobType     sql.NullString `db:"job_type"`
	Level       sql.NullString `db:"level"`
	ModelAnswer string         `db:"model_answer"`
	Reasoning   string         `db:"reasoning"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// InterviewSet maps to the interview_sets table
type InterviewSet struct {
	ID          int64        `db:"id"`
	JobType     string       `db:"job_type"`
	Level       string       `db:"level"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

// InterviewAnswer maps to the interview_answers table
type InterviewAnswer struct {
	ID               int64          `db:"id"`
	SetID            int64          `db:"set_id"`
	QuestionID       sql.NullInt64  `db:"question_id"`
	QuestionOrder    int            `db:"question_order"`
	UserAnswer       string         `db:"user_answer"`
	FollowUpQuestion sql.NullString `db:"follow_up_question"`
	FollowUpAnswer   sql.NullString `db:"follow_up_answer"`
	CreatedAt        time.Time      `db:"created_at"`
}

// InterviewEvaluation maps to the interview_evaluations table
type InterviewEvaluation struct {
	ID               int64        `db:"id"`
	SetID            int64        `db:"set_id"`
	Logic            int          `db:"logic"`
	Evidence         int          `db:"evidence"`
	JobUnderstanding int          `db:"job_understanding"`
	Formality        int          `db:"formality"`
	Completeness     int          `db:"completeness"`
	OverallFeedback  string       `db:"overall_feedback"`
	DetailedFeedback FeedbackList `db:"detailed_feedback"`
	CreatedAt        time.Time    `db:"created_at"`
}

// AnswerNote maps to the answer_notes table
type AnswerNote struct {
	ID             int64          `db:"id"`
	QuestionID     int64          `db:"question_id"`
	InitialAnswer  string         `db:"initial_answer"`
	FirstFeedback  sql.NullString `db:"first_feedback"`
	SecondFeedback sql.NullString `db:"second_feedback"`
	FinalAnswer    sql.NullString `db:"final_answer"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// QAHistory maps to the qa_history table
type QAHistory struct {
	ID         int64     `db:"id"`
	QuestionID int64     `db:"question_id"`
	UserAnswer string    `db:"user_answer"`
	AIModel    string    `db:"ai_model"`
	AIResponse string    `db:"ai_response"`
	Score      int       `db:"score"`
	Hints      string    `db:"hints"`
	CreatedAt  time.Time `db:"created_at"`
}
