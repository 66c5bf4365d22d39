package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.Runner = (*Runner)(nil)

// Runner is a mock implementation of ragbuild.Runner.
type Runner struct {
	RunFn func(ctx context.Context, dir string, name string, args ...string) (ragbuild.RunResult, error)
}

func (r *Runner) Run(ctx context.Context, dir string, name string, args ...string) (ragbuild.RunResult, error) {
	return r.RunFn(ctx, dir, name, args...)
}
