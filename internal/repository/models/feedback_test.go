package models

import (
	"testing"

	"interview-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackList_Value(t *testing.T) {
	v, err := FeedbackList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = FeedbackList{{QuestionOrder: 1, Feedback: "좋아요", Improvements: "근거 추가"}}.Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"questionOrder":1,"feedback":"좋아요","improvements":"근거 추가"}]`, v)
}

func TestFeedbackList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    FeedbackList
		wantErr bool
	}{
		{"nil", nil, FeedbackList{}, false},
		{"empty string", "", FeedbackList{}, false},
		{"null literal", []byte("null"), FeedbackList{}, false},
		{"string json", `[{"questionOrder":2,"feedback":"f","improvements":"i"}]`, FeedbackList{{QuestionOrder: 2, Feedback: "f", Improvements: "i"}}, false},
		{"bytes json", []byte(`[]`), FeedbackList{}, false},
		{"unsupported", 42, nil, true},
		{"broken json", "[{", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FeedbackList
			err := f.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.IsType(t, []domain.FeedbackItem{}, []domain.FeedbackItem(f))
		})
	}
}
