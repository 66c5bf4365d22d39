// Package exec provides an os/exec-based implementation of
// ragbuild.Runner. All external processes (git, the container
// runtime, the ingestion CLI) are invoked through it.
package exec

import (
	"context"
	"errors"
	"os/exec"

	"github.com/lifto/ragbuild"
)

// Ensure Runner implements ragbuild.Runner at compile time.
var _ ragbuild.Runner = (*Runner)(nil)

// Runner executes external processes with os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args in dir and waits for completion. A
// non-zero exit status is reported through RunResult.ExitCode with a
// nil error; err is non-nil only when the process could not be
// started or was interrupted.
func (r *Runner) Run(ctx context.Context, dir string, name string, args ...string) (ragbuild.RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	result := ragbuild.RunResult{Output: string(out)}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Context cancellation surfaces as a killed process.
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "starting %s: %v", name, err)
	}

	return result, nil
}

// LookPath reports whether name is installed on PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
