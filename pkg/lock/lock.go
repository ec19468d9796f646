// Package lock provides short-lived advisory locks keyed by string. Booking
// creation holds one per (date, pickup time) around its check-then-insert.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotAcquired = errors.New("lock is held by another request")

type Locker interface {
	// Lock returns false without error when the key is already held.
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// BookingKey is the lock key for one pickup slot.
func BookingKey(date, pickupTime string) string {
	return fmt.Sprintf("booking:%s:%s", date, pickupTime)
}

// WithLock runs fn while holding key. It returns ErrNotAcquired when another
// holder has the key. The lock is released with a fresh context so that a
// cancelled request still frees it.
func WithLock(ctx context.Context, l Locker, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	ok, err := l.Lock(ctx, key, ttl)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAcquired
	}

	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ttl)
		defer cancel()
		_ = l.Unlock(unlockCtx, key)
	}()

	return fn(ctx)
}
