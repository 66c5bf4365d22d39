package build

import (
	"context"
	"sync"

	"github.com/lifto/ragbuild"
	"golang.org/x/time/rate"
)

var _ ragbuild.HostLimiter = (*HostLimiter)(nil)

// HostLimiter throttles clone traffic per forge host. Each host gets
// its own token bucket, created on first use, so quick-docs on
// pagure.io never waits behind iot-docs on github.com but no single
// forge sees more than rps clones per second.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps operations per
// second per host. Burst is fixed at 1: forges are shared
// infrastructure and a clone is already a heavyweight request.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until host's bucket has a token, or until the context
// is canceled.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
