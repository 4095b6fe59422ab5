package adapter

import (
	"context"
	"sync"
	"time"

	"interview-prep/internal/domain"
)

type localLock struct {
	token   uint64
	expires time.Time
}

// LocalLocker is an in-process domain.Locker used when Redis is not configured.
// It only protects a single API instance.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localLock
	seq   uint64
	nowFn func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localLock),
		nowFn: time.Now,
	}
}

func (l *LocalLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (domain.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	if cur, ok := l.held[key]; ok && now.Before(cur.expires) {
		return nil, domain.ErrLockHeld
	}

	l.seq++
	token := l.seq
	l.held[key] = localLock{token: token, expires: now.Add(ttl)}

	return func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.held[key]; ok && cur.token == token {
			delete(l.held, key)
		}
		return nil
	}, nil
}
