package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.Cloner = (*Cloner)(nil)

// Cloner is a mock implementation of ragbuild.Cloner.
type Cloner struct {
	CloneFn func(ctx context.Context, plan ragbuild.ClonePlan) error
}

func (c *Cloner) Clone(ctx context.Context, plan ragbuild.ClonePlan) error {
	return c.CloneFn(ctx, plan)
}

var _ ragbuild.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of ragbuild.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
