// Package build provides the documentation build orchestration. It
// sequences registry fetch, component resolution, cloning, the
// containerized render, page extraction, and ingestion, treating each
// external stage as a pass/fail collaborator.
package build

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/lifto/ragbuild"
	"golang.org/x/sync/errgroup"
)

// Stage names reported by StageError.
const (
	StageFetch    = "fetch"
	StagePlan     = "plan"
	StageClone    = "clone"
	StagePlaybook = "playbook"
	StageRender   = "render"
	StageExtract  = "extract"
	StageIngest   = "ingest"
)

// DefaultSiteBaseURL is the published location rendered pages map to.
const DefaultSiteBaseURL = "https://docs.fedoraproject.org"

// renderedDir is where Antora places its output inside the work dir.
const renderedDir = "public"

// skipPage reports rendered files that carry no documentation
// content. Antora emits per-component sitemap pages, hence the
// prefix match.
func skipPage(name string) bool {
	return name == "404.html" || name == "search.html" || strings.HasPrefix(name, "sitemap")
}

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of a build run.
type Result struct {
	RunID       string
	Entries     int
	Components  int
	Cloned      int
	Pages       int
	Skipped     int
	DumpPath    string
	Diagnostics []ragbuild.Diagnostic
}

// Builder orchestrates the full documentation build.
type Builder struct {
	Registry  ragbuild.RegistryService
	Cloner    ragbuild.Cloner
	Playbook  ragbuild.PlaybookWriter
	Renderer  ragbuild.Renderer
	Extractor ragbuild.Extractor
	Pages     ragbuild.PageWriter
	Ingester  ragbuild.Ingester
	Limiter   ragbuild.HostLimiter
	Logger    *slog.Logger

	// WorkDir holds clones, the playbook, and the rendered site.
	WorkDir string

	// ContentDir receives extracted pages for ingestion.
	ContentDir string

	// DumpPath is where the final database dump lands.
	DumpPath string

	// SiteBaseURL maps rendered page paths to their published
	// location. Defaults to DefaultSiteBaseURL.
	SiteBaseURL string

	// Concurrency bounds parallel clones. Defaults to 4.
	Concurrency int

	// KeepWork leaves the work dir in place after extraction.
	KeepWork bool
}

// Run executes the pipeline: fetch, resolve, plan, clone, render,
// extract, ingest. It stops on the first failure and reports the
// failing stage through StageError. Partial clone state is left on
// disk; re-running the build is the retry mechanism.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	result := &Result{
		RunID:    uuid.NewString(),
		DumpPath: b.DumpPath,
	}
	logger = logger.With("run", result.RunID)

	entries, err := b.Registry.FetchRegistry(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}
	result.Entries = len(entries)

	// Resolution must see the whole registry before any clone starts.
	assignments, diags := ragbuild.ResolveComponents(entries)
	result.Components = len(assignments)
	result.Diagnostics = diags
	for _, d := range diags {
		logger.Warn("registry diagnostic", "kind", string(d.Kind), "detail", d.Message)
	}

	plans, err := ragbuild.PlanClones(assignments, b.WorkDir)
	if err != nil {
		return nil, &StageError{Stage: StagePlan, Err: err}
	}

	if err := os.MkdirAll(b.WorkDir, 0755); err != nil {
		return nil, &StageError{Stage: StageClone, Err: err}
	}

	logger.Info("cloning sources", "count", len(plans))
	if err := b.cloneAll(ctx, plans); err != nil {
		return nil, &StageError{Stage: StageClone, Err: err}
	}
	result.Cloned = len(plans)

	cloneDirs := make([]string, 0, len(plans))
	for _, plan := range plans {
		cloneDirs = append(cloneDirs, plan.TargetDir)
	}

	if err := b.Playbook.WritePlaybook(ctx, b.WorkDir, cloneDirs); err != nil {
		return nil, &StageError{Stage: StagePlaybook, Err: err}
	}

	logger.Info("rendering site", "sources", len(cloneDirs))
	if err := b.Renderer.Render(ctx, b.WorkDir); err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	if err := b.extractPages(ctx, logger, result); err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	logger.Info("pages extracted", "pages", result.Pages, "skipped", result.Skipped)

	if !b.KeepWork {
		if err := os.RemoveAll(b.WorkDir); err != nil {
			logger.Warn("failed to remove work dir", "dir", b.WorkDir, "error", err)
		}
	}

	logger.Info("ingesting content", "dir", b.ContentDir)
	if err := b.Ingester.Ingest(ctx, b.ContentDir, b.DumpPath); err != nil {
		return nil, &StageError{Stage: StageIngest, Err: err}
	}

	logger.Info("build complete", "dump", b.DumpPath)
	return result, nil
}

// cloneAll runs the clone plans concurrently. Clones for different
// target directories share no state; the first failure cancels the
// rest and aborts the run before rendering.
func (b *Builder) cloneAll(ctx context.Context, plans []ragbuild.ClonePlan) error {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, plan := range plans {
		plan := plan
		g.Go(func() error {
			if b.Limiter != nil {
				if err := b.Limiter.Wait(gctx, cloneHost(plan.RepositoryURL)); err != nil {
					return err
				}
			}
			return b.Cloner.Clone(gctx, plan)
		})
	}

	return g.Wait()
}

// extractPages walks the rendered site, extracts article content from
// each page, and writes it to the content store. Pages without
// article content are skipped; a run that extracts nothing fails.
func (b *Builder) extractPages(ctx context.Context, logger *slog.Logger, result *Result) error {
	publicDir := filepath.Join(b.WorkDir, renderedDir)
	if _, err := os.Stat(publicDir); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "render output not found at %s", publicDir)
	}

	if err := b.Pages.Reset(ctx); err != nil {
		return err
	}

	baseURL := b.SiteBaseURL
	if baseURL == "" {
		baseURL = DefaultSiteBaseURL
	}

	err := filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") || skipPage(d.Name()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(publicDir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		title, content, err := b.Extractor.Extract(string(data))
		if err != nil {
			if ragbuild.ErrorCode(err) == ragbuild.ENOTFOUND {
				result.Skipped++
				return nil
			}
			logger.Warn("could not extract page", "page", relPath, "error", err)
			result.Skipped++
			return nil
		}
		if title == "" {
			title = strings.TrimSuffix(d.Name(), ".html")
		}

		page := &ragbuild.Page{
			RelPath:     relPath,
			Title:       title,
			Content:     content,
			SourceURL:   baseURL + "/" + filepath.ToSlash(relPath),
			ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		}
		if err := b.Pages.WritePage(ctx, page); err != nil {
			return err
		}
		result.Pages++
		return nil
	})
	if err != nil {
		return err
	}

	if result.Pages == 0 {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "no content extracted from %s", publicDir)
	}

	return nil
}

// cloneHost extracts the forge host for rate limiting.
func cloneHost(repositoryURL string) string {
	u, err := url.Parse(repositoryURL)
	if err != nil || u.Host == "" {
		return repositoryURL
	}
	return u.Host
}
