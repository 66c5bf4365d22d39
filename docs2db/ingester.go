// Package docs2db wraps the external docs2db ingestion CLI. The CLI
// chunks, embeds, loads, and dumps the extracted content; this
// package only sequences its subcommands and propagates exit
// statuses. The dump artifact is never parsed or validated here.
package docs2db

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lifto/ragbuild"
)

// DefaultStartupWait is how long to wait for PostgreSQL to initialize
// after db-start before loading.
const DefaultStartupWait = 5 * time.Second

// Ensure Ingester implements ragbuild.Ingester at compile time.
var _ ragbuild.Ingester = (*Ingester)(nil)

// Ingester drives the docs2db pipeline through a ragbuild.Runner.
type Ingester struct {
	runner      ragbuild.Runner
	command     []string
	title       string
	description string
	workers     int
	startupWait time.Duration
}

// Option configures an Ingester.
type Option func(*Ingester)

// WithCommand sets the command prefix used to invoke docs2db.
// Defaults to "uv run docs2db". Calling it with no arguments keeps
// the default.
func WithCommand(command ...string) Option {
	return func(i *Ingester) {
		if len(command) > 0 {
			i.command = command
		}
	}
}

// WithTitle sets the dump title.
func WithTitle(title string) Option {
	return func(i *Ingester) {
		i.title = title
	}
}

// WithDescription sets the dump description.
func WithDescription(description string) Option {
	return func(i *Ingester) {
		i.description = description
	}
}

// WithWorkers sets the embedding worker count. Defaults to 1.
func WithWorkers(n int) Option {
	return func(i *Ingester) {
		i.workers = n
	}
}

// WithStartupWait sets the post-db-start wait. Defaults to
// DefaultStartupWait.
func WithStartupWait(d time.Duration) Option {
	return func(i *Ingester) {
		i.startupWait = d
	}
}

// NewIngester creates a new Ingester.
func NewIngester(runner ragbuild.Runner, opts ...Option) *Ingester {
	i := &Ingester{
		runner:      runner,
		command:     []string{"uv", "run", "docs2db"},
		title:       "Fedora Documentation",
		description: "RAG database of Fedora Project documentation",
		workers:     1,
		startupWait: DefaultStartupWait,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Ingest processes contentDir through the full docs2db pipeline and
// writes the database dump to dumpPath. A non-zero exit on any
// required subcommand aborts with that subcommand's name and status;
// db-destroy is best-effort (it fails cleanly when no database
// exists) and db-stop is always attempted once the database started.
func (i *Ingester) Ingest(ctx context.Context, contentDir string, dumpPath string) error {
	if err := os.MkdirAll(filepath.Dir(dumpPath), 0755); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "creating dump directory: %v", err)
	}

	if err := i.run(ctx, "ingest", contentDir); err != nil {
		return err
	}
	if err := i.run(ctx, "chunk", "--skip-context"); err != nil {
		return err
	}
	if err := i.run(ctx, "embed", "--workers", strconv.Itoa(i.workers)); err != nil {
		return err
	}

	// Best-effort: db-destroy fails cleanly when no database exists.
	_, _ = i.invoke(ctx, "db-destroy")

	if err := i.run(ctx, "db-start"); err != nil {
		return err
	}
	if i.startupWait > 0 {
		select {
		case <-time.After(i.startupWait):
		case <-ctx.Done():
			_ = i.stop(ctx)
			return ctx.Err()
		}
	}

	if err := i.run(ctx, "load", "--title", i.title, "--description", i.description); err != nil {
		_ = i.stop(ctx)
		return err
	}
	if err := i.run(ctx, "db-dump", "--output-file", dumpPath); err != nil {
		_ = i.stop(ctx)
		return err
	}

	return i.stop(ctx)
}

// run invokes a docs2db subcommand and converts a non-zero exit into
// an application error carrying the subcommand name.
func (i *Ingester) run(ctx context.Context, args ...string) error {
	result, err := i.invoke(ctx, args...)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "docs2db %s exited %d: %s",
			args[0], result.ExitCode, strings.TrimSpace(result.Output))
	}
	return nil
}

func (i *Ingester) invoke(ctx context.Context, args ...string) (ragbuild.RunResult, error) {
	full := append(append([]string{}, i.command[1:]...), args...)
	return i.runner.Run(ctx, "", i.command[0], full...)
}

func (i *Ingester) stop(ctx context.Context) error {
	return i.run(ctx, "db-stop")
}
