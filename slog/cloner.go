package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lifto/ragbuild"
)

// Ensure LoggingCloner implements ragbuild.Cloner.
var _ ragbuild.Cloner = (*LoggingCloner)(nil)

// LoggingCloner wraps a Cloner with per-clone logging.
type LoggingCloner struct {
	next   ragbuild.Cloner
	logger *slog.Logger
}

// NewLoggingCloner creates a new LoggingCloner.
func NewLoggingCloner(next ragbuild.Cloner, logger *slog.Logger) *LoggingCloner {
	return &LoggingCloner{next: next, logger: logger}
}

// Clone delegates to the wrapped cloner and logs the outcome.
func (c *LoggingCloner) Clone(ctx context.Context, plan ragbuild.ClonePlan) error {
	begin := time.Now()
	err := c.next.Clone(ctx, plan)
	if err != nil {
		c.logger.Error("clone failed",
			"component", plan.ComponentName,
			"url", plan.RepositoryURL,
			"error", err,
			"duration", time.Since(begin),
		)
		return err
	}
	c.logger.Info("cloned",
		"component", plan.ComponentName,
		"url", plan.RepositoryURL,
		"ref", plan.Ref,
		"dir", plan.TargetDir,
		"duration", time.Since(begin),
	)
	return nil
}
