package service

import (
	"encoding/json"
	"testing"

	"interview-prep/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`87`, 87},
		{`87.5`, 88},
		{`"65"`, 65},
		{`"90점"`, 90},
		{`null`, 0},
		{`-3`, 0},
		{`150`, 100},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s flexScore
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.want, s.Int())
		})
	}

	var s flexScore
	assert.Error(t, json.Unmarshal([]byte(`"high"`), &s))
}

func TestFlexText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"사례 보강"`, "사례 보강"},
		{`null`, ""},
		{`["a", "b"]`, "a\nb"},
		{`["a", null, "b"]`, "a\nb"},
		{`[]`, ""},
		{`42`, "42"},
		{`true`, "true"},
		{`{"tip": "x"}`, `{"tip": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v flexText
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, string(v))
		})
	}
}

func TestInterviewEvaluationOutput_OffTypeTextFields(t *testing.T) {
	raw := "```json\n" + `{"logic": 80, "evidence": 70, "jobUnderstanding": 60, "formality": 90, "completeness": 85,
"overallFeedback": ["논리적입니다", "근거가 부족합니다"],
"detailedFeedback": [{"questionOrder": 1, "feedback": "명확함", "improvements": ["a", "b"]}]}` + "\n```"

	out, failure := util.ParseLLMJSON[interviewEvaluationOutput](raw)
	require.Nil(t, failure)

	evaluation := out.toDomain(2)
	assert.Equal(t, 80, evaluation.Logic)
	assert.Equal(t, "논리적입니다\n근거가 부족합니다", evaluation.OverallFeedback)
	require.Len(t, evaluation.DetailedFeedback, 1)
	assert.Equal(t, "명확함", evaluation.DetailedFeedback[0].Feedback)
	assert.Equal(t, "a\nb", evaluation.DetailedFeedback[0].Improvements)
}

func TestAnswerEvaluation_ListFields(t *testing.T) {
	out, failure := util.ParseLLMJSON[answerEvaluation](`{"score": "72", "hints": ["구체적 수치"], "strengths": "명확함", "improvements": null}`)
	require.Nil(t, failure)
	assert.Equal(t, 72, out.Score.Int())
	assert.Equal(t, flexText("구체적 수치"), out.Hints)
	assert.Equal(t, flexText("명확함"), out.Strengths)
	assert.Empty(t, out.Improvements)
}

func TestInterviewEvaluationOutput_FencedAndBareParity(t *testing.T) {
	bare := `{"logic": 80, "evidence": 70, "jobUnderstanding": 60, "formality": 90, "completeness": 85, "overallFeedback": "ok", "detailedFeedback": []}`

	fromBare, failure := util.ParseLLMJSON[interviewEvaluationOutput](bare)
	require.Nil(t, failure)
	fromFenced, failure := util.ParseLLMJSON[interviewEvaluationOutput]("```json\n" + bare + "\n```")
	require.Nil(t, failure)

	assert.Equal(t, fromBare.toDomain(1), fromFenced.toDomain(1))
	assert.Equal(t, 77.0, averageScore(fromBare.toDomain(1)))
}

func TestNewEvaluationPayload_NeverNullFeedback(t *testing.T) {
	out, failure := util.ParseLLMJSON[interviewEvaluationOutput](`{"logic": 10}`)
	require.Nil(t, failure)

	data, err := json.Marshal(newEvaluationPayload(out.toDomain(3)))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"detailedFeedback":[]`)
}
