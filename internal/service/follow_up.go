package service

import (
	"context"
	"fmt"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

// FollowUpGenerator asks the model for one pressing follow-up question.
type FollowUpGenerator struct {
	generator    domain.TextGenerator
	defaultModel string
}

func NewFollowUpGenerator(generator domain.TextGenerator, defaultModel string) *FollowUpGenerator {
	return &FollowUpGenerator{generator: generator, defaultModel: defaultModel}
}

func buildFollowUpPrompt(question, userAnswer string) string {
	var sb strings.Builder
	sb.WriteString("당신은 한국 기업의 면접관입니다. 지원자의 답변을 듣고 압박 꼬리질문을 생성하세요.\n\n")
	if question != "" {
		fmt.Fprintf(&sb, "원래 질문: %s\n", question)
	}
	fmt.Fprintf(&sb, "지원자 답변: %s\n\n", userAnswer)
	sb.WriteString(`지원자의 답변에서 핵심 키워드를 파악하고, 그 내용을 더 깊이 파고들거나 구체적인 근거를 요구하는 압박 꼬리질문 1개를 생성하세요.
질문은 자연스럽고 실전 면접처럼 만들어주세요.

JSON 형식으로 응답:
{
  "followUpQuestion": "<꼬리질문>"
}`)
	return sb.String()
}

// Generate returns nil when the model fails or its answer has no usable question;
// the answer is saved either way.
func (f *FollowUpGenerator) Generate(ctx context.Context, question, userAnswer, model string) *string {
	l := logger.Get()
	if model == "" {
		model = f.defaultModel
	}

	raw, err := f.generator.Generate(ctx, domain.CompletionRequest{
		Model:       model,
		Prompt:      buildFollowUpPrompt(question, userAnswer),
		Temperature: 0.8,
		MaxTokens:   500,
	})
	if err != nil {
		l.Warn("Follow-up generation failed, continuing without follow-up", zap.String("model", model), zap.Error(err))
		return nil
	}

	out, failure := util.ParseLLMJSON[followUpOutput](raw)
	if failure != nil {
		l.Warn("Follow-up response is not valid JSON, continuing without follow-up",
			zap.String("model", model),
			zap.String("excerpt", failure.Excerpt()),
			zap.Error(failure))
		return nil
	}

	followUp := strings.TrimSpace(string(out.FollowUpQuestion))
	if followUp == "" {
		l.Warn("Follow-up response has no followUpQuestion", zap.String("model", model))
		return nil
	}
	return &followUp
}
