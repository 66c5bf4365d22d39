package ragbuild

import "context"

// Cloner materializes a clone plan as a working tree on disk.
type Cloner interface {
	// Clone produces a working tree at plan.TargetDir checked out at
	// plan.Ref. Failures report the offending repository URL.
	Clone(ctx context.Context, plan ClonePlan) error
}

// HostLimiter throttles operations against a remote host. Clones of
// independent sources run concurrently, but each forge (pagure.io,
// gitlab.com, github.com) is hit at a bounded rate.
type HostLimiter interface {
	// Wait blocks until the rate limit allows an operation against
	// the host. Returns an error if the context is canceled first.
	Wait(ctx context.Context, host string) error
}
