package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"interview-prep/internal/domain"
	"interview-prep/internal/util"

	"golang.org/x/sync/errgroup"
)

// CategoryQuotas splits n questions 40/30/30 over common, job and foreigner.
// The first two round up and the foreigner share takes what is left (never negative).
func CategoryQuotas(n int) (common, job, foreigner int) {
	common = util.CeilFraction(n, 4, 10)
	job = util.CeilFraction(n, 3, 10)
	foreigner = n - common - job
	if foreigner < 0 {
		foreigner = 0
	}
	return common, job, foreigner
}

// QuestionSampler picks the questions of a new interview set.
type QuestionSampler struct {
	questions domain.QuestionRepository
	poolLimit int
	shuffle   func(n int, swap func(i, j int))
}

func NewQuestionSampler(questions domain.QuestionRepository, poolLimit int) *QuestionSampler {
	if poolLimit <= 0 {
		poolLimit = 20
	}
	return &QuestionSampler{questions: questions, poolLimit: poolLimit, shuffle: rand.Shuffle}
}

// Sample returns at most n questions ordered from 1. When no category yields a
// question the fixed fallback list is returned instead, whatever n is.
func (s *QuestionSampler) Sample(ctx context.Context, n int, jobType domain.JobType) ([]domain.SampledQuestion, error) {
	commonQuota, jobQuota, foreignerQuota := CategoryQuotas(n)

	var common, job, foreigner []*domain.Question
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		common, err = s.questions.ListForSampling(gctx, domain.CategoryCommon, "", s.poolLimit)
		return err
	})
	g.Go(func() (err error) {
		job, err = s.questions.ListForSampling(gctx, domain.CategoryJob, jobType, s.poolLimit)
		return err
	})
	g.Go(func() (err error) {
		foreigner, err = s.questions.ListForSampling(gctx, domain.CategoryForeigner, "", s.poolLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load question pools: %w", err)
	}

	selected := make([]*domain.Question, 0, n)
	selected = append(selected, s.pick(common, commonQuota)...)
	selected = append(selected, s.pick(job, jobQuota)...)
	selected = append(selected, s.pick(foreigner, foreignerQuota)...)
	if len(selected) > n {
		selected = selected[:n]
	}

	if len(selected) == 0 {
		out := make([]domain.SampledQuestion, len(domain.FallbackQuestions))
		copy(out, domain.FallbackQuestions)
		return out, nil
	}

	out := make([]domain.SampledQuestion, 0, len(selected))
	for i, q := range selected {
		out = append(out, domain.SampledQuestion{
			ID:       q.ID,
			Question: q.Question,
			Order:    i + 1,
			Category: q.Category,
		})
	}
	return out, nil
}

// pick shuffles a copy of pool (Fisher-Yates) and keeps the first min(quota, len) items.
func (s *QuestionSampler) pick(pool []*domain.Question, quota int) []*domain.Question {
	if quota <= 0 || len(pool) == 0 {
		return nil
	}
	shuffled := make([]*domain.Question, len(pool))
	copy(shuffled, pool)
	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if quota > len(shuffled) {
		quota = len(shuffled)
	}
	return shuffled[:quota]
}
