package mock

import (
	"context"

	"github.com/lifto/ragbuild"
)

var _ ragbuild.Ingester = (*Ingester)(nil)

// Ingester is a mock implementation of ragbuild.Ingester.
type Ingester struct {
	IngestFn func(ctx context.Context, contentDir string, dumpPath string) error
}

func (i *Ingester) Ingest(ctx context.Context, contentDir string, dumpPath string) error {
	return i.IngestFn(ctx, contentDir, dumpPath)
}
