package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// ErrSetDetailNotCached is returned when a set detail is not in the cache.
var ErrSetDetailNotCached = errors.New("interview set detail not found in cache")

// SetDetailCache keeps the detail view of completed interview sets.
type SetDetailCache interface {
	Put(ctx context.Context, setID int64, detail *dto.InterviewSetDetailResponse) error
	Get(ctx context.Context, setID int64) (*dto.InterviewSetDetailResponse, error)
	Invalidate(ctx context.Context, setID int64) error
}

type setDetailCache struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewSetDetailCache(c domain.Cache, ttl time.Duration) SetDetailCache {
	if c == nil {
		logger.Get().Warn("SetDetailCache initialized with nil cache. Service will be no-op.")
		return &noopSetDetailCache{}
	}
	return &setDetailCache{cache: c, ttl: ttl}
}

func (s *setDetailCache) Put(ctx context.Context, setID int64, detail *dto.InterviewSetDetailResponse) error {
	if detail == nil {
		return domain.NewInvalidInputError("cannot cache nil set detail")
	}

	key := cache.InterviewSetDetailKey(setID)
	data, err := json.Marshal(detail)
	if err != nil {
		return domain.NewInternalError("failed to marshal set detail for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache set detail", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set set detail to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached set detail", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *setDetailCache) Get(ctx context.Context, setID int64) (*dto.InterviewSetDetailResponse, error) {
	key := cache.InterviewSetDetailKey(setID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrSetDetailNotCached
		}
		logger.Get().Error("Failed to get set detail from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get set detail from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrSetDetailNotCached
	}

	var detail dto.InterviewSetDetailResponse
	if err := json.Unmarshal([]byte(data), &detail); err != nil {
		logger.Get().Error("Failed to unmarshal set detail from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal set detail from cache for key %s", key), err)
	}
	return &detail, nil
}

func (s *setDetailCache) Invalidate(ctx context.Context, setID int64) error {
	key := cache.InterviewSetDetailKey(setID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete cache key %s", key), err)
	}
	return nil
}

// noopSetDetailCache is used when no cache backend is configured.
type noopSetDetailCache struct{}

func (noopSetDetailCache) Put(context.Context, int64, *dto.InterviewSetDetailResponse) error {
	return nil
}

func (noopSetDetailCache) Get(context.Context, int64) (*dto.InterviewSetDetailResponse, error) {
	return nil, ErrSetDetailNotCached
}

func (noopSetDetailCache) Invalidate(context.Context, int64) error {
	return nil
}
