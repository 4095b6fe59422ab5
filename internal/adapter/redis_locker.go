package adapter

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/util"

	"github.com/redis/go-redis/v9"
)

// releaseLockScript deletes the key only while it still holds our token,
// so an expired lock re-acquired by someone else is left alone.
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisLocker implements domain.Locker with SET NX PX.
type RedisLocker struct {
	client   *redis.Client
	newToken func() string
}

func NewRedisLocker(client *redis.Client) domain.Locker {
	return &RedisLocker{client: client, newToken: util.NewULID}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (domain.UnlockFunc, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrLockHeld
	}

	return func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseLockScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
