package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.PlaybookWriter = (*PlaybookWriter)(nil)

// PlaybookWriter is a mock implementation of ragbuild.PlaybookWriter.
type PlaybookWriter struct {
	WritePlaybookFn func(ctx context.Context, workDir string, cloneDirs []string) error
}

func (w *PlaybookWriter) WritePlaybook(ctx context.Context, workDir string, cloneDirs []string) error {
	return w.WritePlaybookFn(ctx, workDir, cloneDirs)
}

var _ ragbuild.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of ragbuild.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, workDir string) error
}

func (r *Renderer) Render(ctx context.Context, workDir string) error {
	return r.RenderFn(ctx, workDir)
}
