package seedmodels

import (
	"encoding/json"
	"fmt"

	"interview-prep/internal/domain"
)

// SeedQuestion defines one question bank entry in the JSON seed file.
type SeedQuestion struct {
	Question    string `json:"question"`
	ModelAnswer string `json:"model_answer"`
	Reasoning   string `json:"reasoning"`
}

// SeedGroup groups questions that share category, job type and level.
type SeedGroup struct {
	Category  string         `json:"category"`
	JobType   string         `json:"job_type,omitempty"`
	Level     string         `json:"level,omitempty"`
	Questions []SeedQuestion `json:"questions"`
}

// Parse decodes the seed file and converts every entry into a domain question.
func Parse(data []byte) ([]*domain.Question, error) {
	var groups []SeedGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	var out []*domain.Question
	for gi, g := range groups {
		category := domain.QuestionCategory(g.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("group %d: unknown category %q", gi, g.Category)
		}
		if g.JobType != "" && !domain.JobType(g.JobType).IsValid() {
			return nil, fmt.Errorf("group %d: unknown job type %q", gi, g.JobType)
		}
		if g.Level != "" && !domain.Level(g.Level).IsValid() {
			return nil, fmt.Errorf("group %d: unknown level %q", gi, g.Level)
		}
		if category == domain.CategoryJob && g.JobType == "" {
			return nil, fmt.Errorf("group %d: job questions need a job type", gi)
		}

		for qi, sq := range g.Questions {
			q := domain.NewQuestion(sq.Question, sq.ModelAnswer, sq.Reasoning, category, domain.JobType(g.JobType), domain.Level(g.Level))
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("group %d question %d: %w", gi, qi, err)
			}
			out = append(out, q)
		}
	}
	return out, nil
}
