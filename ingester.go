package ragbuild

import "context"

// Ingester hands the extracted content to the external ingestion
// pipeline, which chunks, embeds, loads, and dumps it. The dump
// artifact is opaque to this system; only the pipeline's exit status
// matters.
type Ingester interface {
	// Ingest processes contentDir and writes the database dump to
	// dumpPath.
	Ingest(ctx context.Context, contentDir string, dumpPath string) error
}
