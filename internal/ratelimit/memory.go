package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter is a process-local fixed window limiter used when no Redis
// instance is configured. Rejected attempts count toward the window, but the
// window end never moves.
type MemoryLimiter struct {
	store limiter.Store

	mu       sync.Mutex
	limiters map[string]*limiter.Limiter
}

// NewMemoryLimiter constructs a MemoryLimiter with its own in-memory store.
func NewMemoryLimiter(prefix string) *MemoryLimiter {
	return &MemoryLimiter{
		store: memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: time.Minute,
		}),
		limiters: make(map[string]*limiter.Limiter),
	}
}

// Allow registers an event for key and reports whether it is within the limit.
func (m *MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	if max <= 0 || window <= 0 {
		return true, max, time.Now().Add(window), nil
	}
	lctx, err := m.limiterFor(window, max).Get(ctx, key)
	if err != nil {
		return false, 0, time.Now().Add(window), err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}

func (m *MemoryLimiter) limiterFor(window time.Duration, max int) *limiter.Limiter {
	id := fmt.Sprintf("%d/%s", max, window)
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.limiters[id]; ok {
		return l
	}
	l := limiter.New(m.store, limiter.Rate{Period: window, Limit: int64(max)})
	m.limiters[id] = l
	return l
}
