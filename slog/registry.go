// Package slog provides logging decorators for ragbuild services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lifto/ragbuild"
)

// Ensure LoggingRegistryService implements ragbuild.RegistryService.
var _ ragbuild.RegistryService = (*LoggingRegistryService)(nil)

// LoggingRegistryService wraps a RegistryService with logging for
// registry fetches.
type LoggingRegistryService struct {
	next   ragbuild.RegistryService
	logger *slog.Logger
}

// NewLoggingRegistryService creates a new LoggingRegistryService.
func NewLoggingRegistryService(next ragbuild.RegistryService, logger *slog.Logger) *LoggingRegistryService {
	return &LoggingRegistryService{next: next, logger: logger}
}

// FetchRegistry delegates to the wrapped service and logs the entry
// count and duration, or the failure.
func (s *LoggingRegistryService) FetchRegistry(ctx context.Context) ([]ragbuild.RegistryEntry, error) {
	begin := time.Now()
	entries, err := s.next.FetchRegistry(ctx)
	if err != nil {
		s.logger.Error("registry fetch failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("registry fetched",
		"entries", len(entries),
		"duration", time.Since(begin),
	)
	return entries, nil
}
