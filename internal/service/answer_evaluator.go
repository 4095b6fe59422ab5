package service

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

// AnswerEvaluationService scores one practice answer against the stored model answer.
type AnswerEvaluationService interface {
	Evaluate(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error)
}

type answerEvaluationService struct {
	questions     domain.QuestionRepository
	history       domain.QAHistoryRepository
	generator     domain.TextGenerator
	transcription TranscriptionService
}

func NewAnswerEvaluationService(
	questions domain.QuestionRepository,
	history domain.QAHistoryRepository,
	generator domain.TextGenerator,
	transcription TranscriptionService,
) AnswerEvaluationService {
	return &answerEvaluationService{
		questions:     questions,
		history:       history,
		generator:     generator,
		transcription: transcription,
	}
}

func buildAnswerEvaluationPrompt(q *domain.Question) string {
	return fmt.Sprintf(`당신은 면접관입니다. 지원자의 답변을 평가하고 개선점을 제시합니다.

면접 질문: %s
모범답안: %s
모범답안의 논리와 이유: %s

지원자의 답변을 평가하여:
1. 모범답안과의 유사도를 0-100점으로 점수화하세요
2. 지원자가 더 나은 답변을 할 수 있도록 구체적인 힌트를 제공하세요
3. 답변에서 잘한 점과 개선이 필요한 점을 명확히 지적하세요

응답은 반드시 다음 JSON 형식으로 제공하세요:
{
  "score": <0-100 사이의 숫자>,
  "hints": "<구체적인 힌트와 피드백>",
  "strengths": "<잘한 점>",
  "improvements": "<개선이 필요한 점>"
}`, q.Question, q.ModelAnswer, q.Reasoning)
}

// Evaluate writes the QA history row as soon as the model has answered, before the
// response is parsed, so malformed output is kept for inspection.
func (s *answerEvaluationService) Evaluate(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error) {
	l := logger.Get()

	q, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError()
	}

	userAnswer, transcript, err := resolveAnswerText(ctx, s.transcription, req.UserAnswer, req.Audio, req.AIModel)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, domain.CompletionRequest{
		Model:       req.AIModel,
		System:      buildAnswerEvaluationPrompt(q),
		Prompt:      "지원자의 답변: " + userAnswer,
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		l.Error("AI evaluation request failed", zap.Int64("question_id", q.ID), zap.String("model", req.AIModel), zap.Error(err))
		return nil, domain.NewLLMServiceError("Failed to evaluate answer", err)
	}

	result, failure := util.ParseLLMJSON[answerEvaluation](raw)

	entry := &domain.QAHistory{
		QuestionID: q.ID,
		UserAnswer: userAnswer,
		AIModel:    req.AIModel,
		AIResponse: raw,
		CreatedAt:  time.Now(),
	}
	if failure == nil {
		entry.Score = result.Score.Int()
		entry.Hints = string(result.Hints)
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return nil, domain.NewInternalError("Failed to save QA history", err)
	}

	if failure != nil {
		l.Error("AI evaluation response is not valid JSON",
			zap.Int64("question_id", q.ID),
			zap.Int64("history_id", entry.ID),
			zap.String("excerpt", failure.Excerpt()),
			zap.Error(failure))
		return nil, domain.NewLLMServiceError("Failed to evaluate answer", failure).
			WithContext("historyId", entry.ID)
	}

	return &dto.EvaluateAnswerResponse{
		Score:        entry.Score,
		Hints:        string(result.Hints),
		Strengths:    string(result.Strengths),
		Improvements: string(result.Improvements),
		HistoryID:    entry.ID,
		Transcript:   transcript,
	}, nil
}
