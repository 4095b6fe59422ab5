package service

import (
	"context"
	"errors"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/export"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// InterviewService drives interview sets up to (but not including) evaluation.
type InterviewService interface {
	CreateSet(ctx context.Context, req *dto.CreateSetRequest) (*dto.CreateSetResponse, error)
	ListSets(ctx context.Context) ([]*dto.InterviewSetResponse, error)
	GetSetDetail(ctx context.Context, id int64) (*dto.InterviewSetDetailResponse, error)
	SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	SubmitFollowUp(ctx context.Context, req *dto.SubmitFollowUpRequest) (*dto.SuccessResponse, error)
	ExportSets(ctx context.Context) ([]byte, error)
}

type interviewService struct {
	sets          domain.InterviewSetRepository
	answers       domain.InterviewAnswerRepository
	evaluations   domain.EvaluationRepository
	questions     domain.QuestionRepository
	sampler       *QuestionSampler
	followUps     *FollowUpGenerator
	transcription TranscriptionService
	detailCache   SetDetailCache
}

func NewInterviewService(
	sets domain.InterviewSetRepository,
	answers domain.InterviewAnswerRepository,
	evaluations domain.EvaluationRepository,
	questions domain.QuestionRepository,
	sampler *QuestionSampler,
	followUps *FollowUpGenerator,
	transcription TranscriptionService,
	detailCache SetDetailCache,
) InterviewService {
	return &interviewService{
		sets:          sets,
		answers:       answers,
		evaluations:   evaluations,
		questions:     questions,
		sampler:       sampler,
		followUps:     followUps,
		transcription: transcription,
		detailCache:   detailCache,
	}
}

// CreateSet inserts the set first and samples afterwards, so a set whose
// questions all come from the fallback list still has a row.
func (s *interviewService) CreateSet(ctx context.Context, req *dto.CreateSetRequest) (*dto.CreateSetResponse, error) {
	set := domain.NewInterviewSet(domain.JobType(req.JobType), domain.Level(req.Level))
	if err := s.sets.Create(ctx, set); err != nil {
		return nil, domain.NewInternalError("Failed to create interview set", err)
	}

	questions, err := s.sampler.Sample(ctx, req.Count(), set.JobType)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create interview set", err)
	}

	logger.Get().Info("Interview set created",
		zap.Int64("set_id", set.ID),
		zap.String("job_type", req.JobType),
		zap.Int("requested", req.Count()),
		zap.Int("sampled", len(questions)))

	return &dto.CreateSetResponse{SetID: set.ID, Questions: questions}, nil
}

func (s *interviewService) ListSets(ctx context.Context) ([]*dto.InterviewSetResponse, error) {
	sets, err := s.sets.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch interview sets", err)
	}
	return dto.NewInterviewSetResponses(sets), nil
}

// GetSetDetail serves completed sets from the cache; they never change again.
func (s *interviewService) GetSetDetail(ctx context.Context, id int64) (*dto.InterviewSetDetailResponse, error) {
	l := logger.Get()
	if detail, err := s.detailCache.Get(ctx, id); err == nil {
		l.Debug("Interview set detail served from cache", zap.Int64("set_id", id))
		return detail, nil
	} else if !errors.Is(err, ErrSetDetailNotCached) {
		l.Warn("Interview set cache lookup failed", zap.Int64("set_id", id), zap.Error(err))
	}

	var (
		set        *domain.InterviewSet
		answers    []*domain.InterviewAnswer
		evaluation *domain.InterviewEvaluation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		set, err = s.sets.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		answers, err = s.answers.ListBySet(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		evaluation, err = s.evaluations.GetBySetID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to fetch interview set", err)
	}
	if set == nil {
		return nil, domain.NewInterviewSetNotFoundError()
	}

	questions, err := s.questions.GetByIDs(ctx, questionIDs(answers))
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch interview set", err)
	}

	detail := &dto.InterviewSetDetailResponse{
		Set:        dto.NewInterviewSetResponse(set),
		Answers:    make([]*dto.InterviewAnswerResponse, 0, len(answers)),
		Evaluation: dto.NewEvaluationResponse(evaluation),
	}
	for _, a := range answers {
		detail.Answers = append(detail.Answers, dto.NewInterviewAnswerResponse(a, resolveQuestion(a, questions)))
	}

	if set.IsCompleted() && evaluation != nil {
		if errPut := s.detailCache.Put(ctx, id, detail); errPut != nil {
			l.Warn("Failed to cache interview set detail", zap.Int64("set_id", id), zap.Error(errPut))
		}
	}
	return detail, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	set, err := s.sets.GetByID(ctx, req.SetID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to submit answer", err)
	}
	if set == nil {
		return nil, domain.NewInterviewSetNotFoundError()
	}
	if set.IsCompleted() {
		return nil, domain.NewConflictError("Interview set is already completed")
	}

	questionText := ""
	if req.QuestionID > 0 {
		q, err := s.questions.GetByID(ctx, req.QuestionID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to submit answer", err)
		}
		if q == nil {
			return nil, domain.NewQuestionNotFoundError()
		}
		questionText = q.Question
	} else if text, ok := domain.FallbackQuestionText(req.QuestionOrder); ok {
		questionText = text
	}

	userAnswer, transcript, err := resolveAnswerText(ctx, s.transcription, req.UserAnswer, req.Audio, "")
	if err != nil {
		return nil, err
	}

	var followUp *string
	if req.EnableFollowUp {
		followUp = s.followUps.Generate(ctx, questionText, userAnswer, req.AIModel)
	}

	answer := &domain.InterviewAnswer{
		SetID:            req.SetID,
		QuestionID:       req.QuestionID,
		QuestionOrder:    req.QuestionOrder,
		UserAnswer:       userAnswer,
		FollowUpQuestion: followUp,
		CreatedAt:        time.Now(),
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		return nil, domain.NewInternalError("Failed to submit answer", err)
	}

	return &dto.SubmitAnswerResponse{
		AnswerID:         answer.ID,
		FollowUpQuestion: followUp,
		Transcript:       transcript,
	}, nil
}

func (s *interviewService) SubmitFollowUp(ctx context.Context, req *dto.SubmitFollowUpRequest) (*dto.SuccessResponse, error) {
	followUpAnswer, transcript, err := resolveAnswerText(ctx, s.transcription, req.FollowUpAnswer, req.Audio, "")
	if err != nil {
		return nil, err
	}

	ok, err := s.answers.UpdateFollowUpAnswer(ctx, req.AnswerID, followUpAnswer)
	if err != nil {
		return nil, domain.NewInternalError("Failed to submit follow-up answer", err)
	}
	if !ok {
		return nil, domain.NewAnswerNotFoundError()
	}
	return &dto.SuccessResponse{Success: true, Transcript: transcript}, nil
}

func (s *interviewService) ExportSets(ctx context.Context) ([]byte, error) {
	var (
		sets        []*domain.InterviewSet
		evaluations []*domain.InterviewEvaluation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sets, err = s.sets.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		evaluations, err = s.evaluations.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to export interview sets", err)
	}

	bySet := make(map[int64]*domain.InterviewEvaluation, len(evaluations))
	for _, e := range evaluations {
		bySet[e.SetID] = e
	}
	rows := make([]export.SetRow, 0, len(sets))
	for _, set := range sets {
		rows = append(rows, export.SetRow{Set: set, Evaluation: bySet[set.ID]})
	}

	data, err := export.InterviewSetsWorkbook(rows)
	if err != nil {
		return nil, domain.NewInternalError("Failed to export interview sets", err)
	}
	return data, nil
}

func questionIDs(answers []*domain.InterviewAnswer) []int64 {
	ids := make([]int64, 0, len(answers))
	seen := make(map[int64]struct{}, len(answers))
	for _, a := range answers {
		if a.QuestionID == 0 {
			continue
		}
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}
	return ids
}

// resolveQuestion finds the bank question of an answer, or synthesizes the
// fallback question shown at that order.
func resolveQuestion(a *domain.InterviewAnswer, questions map[int64]*domain.Question) *domain.Question {
	if a.QuestionID != 0 {
		return questions[a.QuestionID]
	}
	for _, fq := range domain.FallbackQuestions {
		if fq.Order == a.QuestionOrder {
			return &domain.Question{Question: fq.Question, Category: fq.Category}
		}
	}
	return nil
}
