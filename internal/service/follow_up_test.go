package service

import (
	"context"
	"testing"

	"interview-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollowUpGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced JSON", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", ctx, mock.MatchedBy(func(req domain.CompletionRequest) bool {
			return req.Model == "default/model" && req.Temperature == 0.8 && req.MaxTokens == 500
		})).Return("```json\n{\"followUpQuestion\": \"구체적인 사례가 있나요?\"}\n```", nil).Once()

		got := NewFollowUpGenerator(gen, "default/model").Generate(ctx, "지원 동기는?", "성장하고 싶습니다", "")
		require.NotNil(t, got)
		assert.Equal(t, "구체적인 사례가 있나요?", *got)
		gen.AssertExpectations(t)
	})

	t.Run("requested model wins", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", ctx, mock.MatchedBy(func(req domain.CompletionRequest) bool {
			return req.Model == "other/model"
		})).Return(`{"followUpQuestion":"왜요?"}`, nil).Once()

		got := NewFollowUpGenerator(gen, "default/model").Generate(ctx, "", "답변", "other/model")
		require.NotNil(t, got)
		gen.AssertExpectations(t)
	})

	t.Run("model failure degrades to nil", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", ctx, mock.Anything).Return("", errUpstream).Once()
		assert.Nil(t, NewFollowUpGenerator(gen, "m").Generate(ctx, "q", "a", ""))
	})

	t.Run("malformed output degrades to nil", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", ctx, mock.Anything).Return("꼬리질문: 왜요?", nil).Once()
		assert.Nil(t, NewFollowUpGenerator(gen, "m").Generate(ctx, "q", "a", ""))
	})

	t.Run("blank question degrades to nil", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", ctx, mock.Anything).Return(`{"followUpQuestion": "  "}`, nil).Once()
		assert.Nil(t, NewFollowUpGenerator(gen, "m").Generate(ctx, "q", "a", ""))
	})
}

func TestBuildFollowUpPrompt(t *testing.T) {
	withQuestion := buildFollowUpPrompt("자기소개를 해주세요.", "저는 마케터입니다")
	assert.Contains(t, withQuestion, "원래 질문: 자기소개를 해주세요.")
	assert.Contains(t, withQuestion, "지원자 답변: 저는 마케터입니다")

	withoutQuestion := buildFollowUpPrompt("", "저는 마케터입니다")
	assert.NotContains(t, withoutQuestion, "원래 질문")
}
