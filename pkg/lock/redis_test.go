package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLock(t *testing.T) (*RedisLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLock(client), mr
}

func TestRedisLock_LockUnlock(t *testing.T) {
	l, mr := newTestRedisLock(t)
	ctx := context.Background()
	key := BookingKey("2026-11-04", "14:00")

	ok, err := l.Lock(ctx, key, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("lock:booking:2026-11-04:14:00"))

	ok, err = l.Lock(ctx, key, 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second lock on the same slot must fail")

	require.NoError(t, l.Unlock(ctx, key))
	assert.False(t, mr.Exists("lock:booking:2026-11-04:14:00"))

	ok, err = l.Lock(ctx, key, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_Expires(t *testing.T) {
	l, mr := newTestRedisLock(t)
	ctx := context.Background()
	key := BookingKey("2026-11-04", "09:30")

	ok, err := l.Lock(ctx, key, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	other := NewRedisLock(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ok, err = other.Lock(ctx, key, time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired lock should be acquirable")

	// The original holder must not release the new holder's lock.
	require.NoError(t, l.Unlock(ctx, key))
	assert.True(t, mr.Exists("lock:"+key))
}

func TestWithLock(t *testing.T) {
	l, _ := newTestRedisLock(t)
	ctx := context.Background()
	key := BookingKey("2026-11-05", "10:00")

	called := false
	err := WithLock(ctx, l, key, 5*time.Second, func(ctx context.Context) error {
		called = true
		inner := WithLock(ctx, l, key, 5*time.Second, func(context.Context) error { return nil })
		assert.True(t, errors.Is(inner, ErrNotAcquired))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	ok, err := l.Lock(ctx, key, time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "WithLock must release on return")
}

func TestWithLock_PropagatesError(t *testing.T) {
	l, _ := newTestRedisLock(t)
	boom := errors.New("insert failed")

	err := WithLock(context.Background(), l, "k", time.Second, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	ok, lockErr := l.Lock(context.Background(), "k", time.Second)
	require.NoError(t, lockErr)
	assert.True(t, ok)
}
