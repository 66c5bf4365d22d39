package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ragbuild.Extractor.
type Extractor struct {
	ExtractFn func(html string) (title, content string, err error)
}

func (e *Extractor) Extract(html string) (string, string, error) {
	return e.ExtractFn(html)
}

var _ ragbuild.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of ragbuild.PageWriter.
type PageWriter struct {
	ResetFn     func(ctx context.Context) error
	WritePageFn func(ctx context.Context, page *ragbuild.Page) error
}

func (w *PageWriter) Reset(ctx context.Context) error {
	return w.ResetFn(ctx)
}

func (w *PageWriter) WritePage(ctx context.Context, page *ragbuild.Page) error {
	return w.WritePageFn(ctx, page)
}
