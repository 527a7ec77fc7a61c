package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const punchLockKeyPrefix = "attendance:punch:lock:"

// ErrLockLost means the lock expired and was taken over before Release ran.
var ErrLockLost = errors.New("punch lock expired before release")

// Locker serializes punch submissions per employee and day.
type Locker interface {
	// Acquire returns false without error when someone else holds the lock.
	// The token identifies this holder and must be passed to Release.
	Acquire(ctx context.Context, key string) (token string, acquired bool, err error)
	Release(ctx context.Context, key, token string) error
}

func PunchLockKey(employeeID string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s", punchLockKeyPrefix, employeeID, day.Format("2006-01-02"))
}

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	rdb      *redis.Client
	ttl      time.Duration
	newToken func() string
}

// NewRedisLocker uses SETNX with a TTL so a crashed holder cannot block an
// employee for longer than ttl.
func NewRedisLocker(rdb *redis.Client, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &redisLocker{rdb: rdb, ttl: ttl, newToken: uuid.NewString}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := l.newToken()
	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (l *redisLocker) Release(ctx context.Context, key, token string) error {
	deleted, err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Int64()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrLockLost
	}
	return nil
}
