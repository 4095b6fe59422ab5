package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/stream"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

const (
	msgEvaluationStart     = "면접 평가 시작..."
	msgEvaluationProgress  = "AI 평가 진행 중..."
	msgEvaluationBusy      = "이미 평가가 진행 중입니다."
	msgEvaluationNoSet     = "면접 세트를 찾을 수 없습니다."
	msgEvaluationNoAnswers = "답변이 없습니다."
	msgEvaluationFailed    = "평가 생성에 실패했습니다."
	msgEvaluationParse     = "평가 결과를 해석하지 못했습니다."
	msgEvaluationSave      = "평가 결과 저장에 실패했습니다."
	msgEvaluationUnknown   = "평가 중 오류가 발생했습니다."
	noAnswerPlaceholder    = "(답변 없음)"
)

// CompletionService evaluates a whole interview set and streams the progress.
type CompletionService interface {
	// Complete always ends the stream with exactly one complete or error event.
	Complete(ctx context.Context, setID int64, emit stream.Emitter)
}

type completionService struct {
	sets        domain.InterviewSetRepository
	answers     domain.InterviewAnswerRepository
	evaluations domain.EvaluationRepository
	questions   domain.QuestionRepository
	opener      domain.StreamOpener
	locker      domain.Locker
	tx          domain.TransactionManager
	detailCache SetDetailCache
	publisher   domain.EventPublisher
	model       string
	lockTTL     time.Duration
}

type CompletionDeps struct {
	Sets        domain.InterviewSetRepository
	Answers     domain.InterviewAnswerRepository
	Evaluations domain.EvaluationRepository
	Questions   domain.QuestionRepository
	Opener      domain.StreamOpener
	Locker      domain.Locker
	Tx          domain.TransactionManager
	DetailCache SetDetailCache
	Publisher   domain.EventPublisher
}

func NewCompletionService(deps CompletionDeps, llmCfg config.LLMConfig, interviewCfg config.InterviewConfig) CompletionService {
	lockTTL := interviewCfg.LockTTL
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &completionService{
		sets:        deps.Sets,
		answers:     deps.Answers,
		evaluations: deps.Evaluations,
		questions:   deps.Questions,
		opener:      deps.Opener,
		locker:      deps.Locker,
		tx:          deps.Tx,
		detailCache: deps.DetailCache,
		publisher:   deps.Publisher,
		model:       llmCfg.EvaluationModel,
		lockTTL:     lockTTL,
	}
}

func errorEvent(message string, err error) dto.StreamEvent {
	evt := dto.StreamEvent{Type: dto.EventError, Message: message}
	if err != nil {
		evt.Error = err.Error()
	}
	return evt
}

func (s *completionService) Complete(ctx context.Context, setID int64, emit stream.Emitter) {
	l := logger.Get().With(zap.Int64("set_id", setID))
	emit.Emit(dto.StreamEvent{Type: dto.EventStart, Message: msgEvaluationStart})

	unlock, err := s.locker.TryLock(ctx, cache.InterviewCompletionLockKey(setID), s.lockTTL)
	if err != nil {
		if errors.Is(err, domain.ErrLockHeld) {
			l.Info("Completion already running for set")
			emit.Emit(errorEvent(msgEvaluationBusy, nil))
			return
		}
		l.Error("Failed to acquire completion lock", zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationUnknown, err))
		return
	}
	defer func() {
		if errUnlock := unlock(context.Background()); errUnlock != nil {
			l.Warn("Failed to release completion lock", zap.Error(errUnlock))
		}
	}()

	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		l.Error("Failed to load interview set", zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationUnknown, err))
		return
	}
	if set == nil {
		emit.Emit(errorEvent(msgEvaluationNoSet, nil))
		return
	}

	// 이미 평가된 세트는 저장된 평가를 그대로 돌려준다
	if set.IsCompleted() {
		s.replay(ctx, set, emit)
		return
	}

	answers, err := s.answers.ListBySet(ctx, setID)
	if err != nil {
		l.Error("Failed to load answers", zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationUnknown, err))
		return
	}
	if len(answers) == 0 {
		emit.Emit(errorEvent(msgEvaluationNoAnswers, nil))
		return
	}

	questions, err := s.questions.GetByIDs(ctx, questionIDs(answers))
	if err != nil {
		l.Error("Failed to load questions", zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationUnknown, err))
		return
	}

	emit.Emit(dto.StreamEvent{Type: dto.EventProgress, Message: msgEvaluationProgress})

	src, err := s.opener.OpenStream(ctx, domain.StreamRequest{
		Model:       s.model,
		Prompt:      buildInterviewEvaluationPrompt(answers, questions),
		Temperature: 0.7,
		MaxTokens:   3000,
	})
	if err != nil {
		l.Error("Failed to open evaluation stream", zap.String("model", s.model), zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationFailed, err))
		return
	}

	raw, chunks, err := stream.Forward(src, func(content string, index, length int) {
		emit.Emit(dto.StreamEvent{Type: dto.EventChunk, Content: content, ChunkIndex: index, CurrentLength: length})
	})
	if err != nil {
		l.Error("Evaluation stream failed", zap.Int("chunks", chunks), zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationFailed, err))
		return
	}

	out, failure := util.ParseLLMJSON[interviewEvaluationOutput](raw)
	if failure != nil {
		l.Error("Evaluation response is not valid JSON", zap.String("excerpt", failure.Excerpt()), zap.Error(failure))
		evt := errorEvent(msgEvaluationParse, failure)
		evt.RawResponse = failure.Excerpt()
		emit.Emit(evt)
		return
	}

	evaluation := out.toDomain(setID)
	completedAt := time.Now()
	evaluation.CreatedAt = completedAt

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if errCreate := s.evaluations.Create(txCtx, evaluation); errCreate != nil {
			return errCreate
		}
		return s.sets.MarkCompleted(txCtx, setID, completedAt)
	})
	if err != nil {
		l.Error("Failed to save evaluation", zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationSave, err))
		return
	}

	if errDel := s.detailCache.Invalidate(ctx, setID); errDel != nil {
		l.Warn("Failed to invalidate interview set cache", zap.Error(errDel))
	}
	evt := domain.InterviewCompleted{
		SetID:        setID,
		EvaluationID: evaluation.ID,
		JobType:      set.JobType,
		Level:        set.Level,
		AverageScore: averageScore(evaluation),
		CompletedAt:  completedAt,
	}
	if errPub := s.publisher.PublishInterviewCompleted(ctx, evt); errPub != nil {
		l.Warn("Failed to publish interview completed event", zap.Error(errPub))
	}

	l.Info("Interview set evaluated",
		zap.Int64("evaluation_id", evaluation.ID),
		zap.Int("chunks", chunks),
		zap.Float64("average", evt.AverageScore))

	payload := newEvaluationPayload(evaluation)
	if parsed, failure := util.ParseLLMJSON[map[string]any](raw); failure == nil {
		payload.Extra = parsed
	}
	emit.Emit(dto.StreamEvent{
		Type:         dto.EventComplete,
		EvaluationID: evaluation.ID,
		Evaluation:   payload,
	})
}

func (s *completionService) replay(ctx context.Context, set *domain.InterviewSet, emit stream.Emitter) {
	evaluation, err := s.evaluations.GetBySetID(ctx, set.ID)
	if err != nil {
		logger.Get().Error("Failed to load stored evaluation", zap.Int64("set_id", set.ID), zap.Error(err))
		emit.Emit(errorEvent(msgEvaluationUnknown, err))
		return
	}
	if evaluation == nil {
		emit.Emit(errorEvent(msgEvaluationUnknown, fmt.Errorf("completed set %d has no evaluation", set.ID)))
		return
	}
	emit.Emit(dto.StreamEvent{
		Type:         dto.EventComplete,
		EvaluationID: evaluation.ID,
		Evaluation:   newEvaluationPayload(evaluation),
	})
}

func buildInterviewEvaluationPrompt(answers []*domain.InterviewAnswer, questions map[int64]*domain.Question) string {
	var sb strings.Builder
	sb.WriteString("당신은 한국 기업의 인사담당자입니다. 외국인 지원자의 면접 답변을 종합 평가하세요.\n\n면접 답변:\n")

	for i, a := range answers {
		questionText := ""
		if q := resolveQuestion(a, questions); q != nil {
			questionText = q.Question
		}
		fmt.Fprintf(&sb, "\n질문 %d: %s\n답변: %s\n", i+1, questionText, a.UserAnswer)
		if a.FollowUpQuestion != nil {
			followUpAnswer := noAnswerPlaceholder
			if a.FollowUpAnswer != nil && *a.FollowUpAnswer != "" {
				followUpAnswer = *a.FollowUpAnswer
			}
			fmt.Fprintf(&sb, "꼬리질문: %s\n꼬리답변: %s\n", *a.FollowUpQuestion, followUpAnswer)
		}
	}

	sb.WriteString(`
다음 5가지 항목을 0-100점으로 평가하고, 종합 피드백을 제공하세요:
1. logic (논리성): 답변의 논리적 구조와 일관성
2. evidence (근거): 구체적인 사례와 근거 제시
3. jobUnderstanding (직무이해도): 지원 직무에 대한 이해도
4. formality (한국어 격식): 비즈니스 한국어 사용 적절성
5. completeness (완성도): 답변의 완성도와 충실성

각 답변에 대한 상세 피드백도 제공하세요.

JSON 형식으로 응답:
{
  "logic": <점수>,
  "evidence": <점수>,
  "jobUnderstanding": <점수>,
  "formality": <점수>,
  "completeness": <점수>,
  "overallFeedback": "<전체 종합 피드백>",
  "detailedFeedback": [
    {
      "questionOrder": 1,
      "feedback": "<질문 1에 대한 상세 피드백>",
      "improvements": "<개선 제안>"
    }
  ]
}`)
	return sb.String()
}
