package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/util"
)

// flexScore accepts 87, 87.5 or "87" since models are not consistent about number types.
type flexScore float64

func (s *flexScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(str), "점"))
		if str == "" {
			*s = 0
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("score %q is not a number", str)
		}
		*s = flexScore(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = flexScore(v)
	return nil
}

func (s flexScore) Int() int {
	return util.ClampScore(float64(s))
}

// flexText accepts a string, a list of strings or any other JSON value for a
// free text field. Lists are joined line by line; other values keep their JSON text.
type flexText string

func (t *flexText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*t = flexText(str)
	case '[':
		var items []flexText
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		lines := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				lines = append(lines, string(item))
			}
		}
		*t = flexText(strings.Join(lines, "\n"))
	default:
		if !json.Valid(data) {
			return fmt.Errorf("invalid text value %q", data)
		}
		*t = flexText(data)
	}
	return nil
}

// answerEvaluation 단일 답변 평가 응답
type answerEvaluation struct {
	Score        flexScore `json:"score"`
	Hints        flexText  `json:"hints"`
	Strengths    flexText  `json:"strengths"`
	Improvements flexText  `json:"improvements"`
}

type followUpOutput struct {
	FollowUpQuestion flexText `json:"followUpQuestion"`
}

type feedbackOutput struct {
	QuestionOrder flexScore `json:"questionOrder"`
	Feedback      flexText  `json:"feedback"`
	Improvements  flexText  `json:"improvements"`
}

// interviewEvaluationOutput is the JSON the evaluation prompt asks for.
type interviewEvaluationOutput struct {
	Logic            flexScore        `json:"logic"`
	Evidence         flexScore        `json:"evidence"`
	JobUnderstanding flexScore        `json:"jobUnderstanding"`
	Formality        flexScore        `json:"formality"`
	Completeness     flexScore        `json:"completeness"`
	OverallFeedback  flexText         `json:"overallFeedback"`
	DetailedFeedback []feedbackOutput `json:"detailedFeedback"`
}

func (o *interviewEvaluationOutput) toDomain(setID int64) *domain.InterviewEvaluation {
	feedback := make([]domain.FeedbackItem, 0, len(o.DetailedFeedback))
	for _, f := range o.DetailedFeedback {
		feedback = append(feedback, domain.FeedbackItem{
			QuestionOrder: int(f.QuestionOrder),
			Feedback:      string(f.Feedback),
			Improvements:  string(f.Improvements),
		})
	}
	return &domain.InterviewEvaluation{
		SetID:            setID,
		Logic:            o.Logic.Int(),
		Evidence:         o.Evidence.Int(),
		JobUnderstanding: o.JobUnderstanding.Int(),
		Formality:        o.Formality.Int(),
		Completeness:     o.Completeness.Int(),
		OverallFeedback:  string(o.OverallFeedback),
		DetailedFeedback: feedback,
	}
}

// EvaluationPayload is the evaluation carried by the `complete` stream event.
type EvaluationPayload struct {
	Logic            int                   `json:"logic"`
	Evidence         int                   `json:"evidence"`
	JobUnderstanding int                   `json:"jobUnderstanding"`
	Formality        int                   `json:"formality"`
	Completeness     int                   `json:"completeness"`
	OverallFeedback  string                `json:"overallFeedback"`
	DetailedFeedback []domain.FeedbackItem `json:"detailedFeedback"`

	// Extra holds fields the model returned beyond the ones above. They are
	// sent as is; the normalized fields always win on a name clash.
	Extra map[string]any `json:"-"`
}

func (p EvaluationPayload) MarshalJSON() ([]byte, error) {
	type plain EvaluationPayload
	base, err := json.Marshal(plain(p))
	if err != nil || len(p.Extra) == 0 {
		return base, err
	}

	merged := make(map[string]any, len(p.Extra)+7)
	for k, v := range p.Extra {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func newEvaluationPayload(e *domain.InterviewEvaluation) *EvaluationPayload {
	feedback := e.DetailedFeedback
	if feedback == nil {
		feedback = []domain.FeedbackItem{}
	}
	return &EvaluationPayload{
		Logic:            e.Logic,
		Evidence:         e.Evidence,
		JobUnderstanding: e.JobUnderstanding,
		Formality:        e.Formality,
		Completeness:     e.Completeness,
		OverallFeedback:  e.OverallFeedback,
		DetailedFeedback: feedback,
	}
}

func averageScore(e *domain.InterviewEvaluation) float64 {
	return float64(e.Logic+e.Evidence+e.JobUnderstanding+e.Formality+e.Completeness) / 5
}
