package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetDetailCache(t *testing.T) {
	ctx := context.Background()
	key := cache.InterviewSetDetailKey(6)
	detail := &dto.InterviewSetDetailResponse{Set: &dto.InterviewSetResponse{ID: 6, Status: "completed"}}

	t.Run("put then get", func(t *testing.T) {
		mc := new(MockCache)
		var stored string
		mc.On("Set", ctx, key, mock.AnythingOfType("string"), 30*time.Minute).Run(func(args mock.Arguments) {
			stored = args.String(2)
		}).Return(nil)

		c := NewSetDetailCache(mc, 30*time.Minute)
		require.NoError(t, c.Put(ctx, 6, detail))

		mc.On("Get", ctx, key).Return(stored, nil)
		got, err := c.Get(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, int64(6), got.Set.ID)
	})

	t.Run("miss", func(t *testing.T) {
		mc := new(MockCache)
		mc.On("Get", ctx, key).Return("", domain.ErrCacheMiss)

		_, err := NewSetDetailCache(mc, time.Minute).Get(ctx, 6)
		assert.ErrorIs(t, err, ErrSetDetailNotCached)
	})

	t.Run("backend error", func(t *testing.T) {
		mc := new(MockCache)
		mc.On("Get", ctx, key).Return("", errors.New("redis down"))

		_, err := NewSetDetailCache(mc, time.Minute).Get(ctx, 6)
		assertDomainCode(t, err, domain.CodeInternal)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		mc := new(MockCache)
		mc.On("Get", ctx, key).Return("{broken", nil)

		_, err := NewSetDetailCache(mc, time.Minute).Get(ctx, 6)
		assertDomainCode(t, err, domain.CodeInternal)
	})

	t.Run("nil backend is a no-op", func(t *testing.T) {
		c := NewSetDetailCache(nil, time.Minute)
		assert.NoError(t, c.Put(ctx, 6, detail))
		assert.NoError(t, c.Invalidate(ctx, 6))
		_, err := c.Get(ctx, 6)
		assert.ErrorIs(t, err, ErrSetDetailNotCached)
	})
}
