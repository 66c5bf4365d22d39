// Package fs provides file-based storage for extracted pages in the
// layout the ingestion pipeline consumes: one flattened HTML file per
// page plus a JSON metadata sidecar.
package fs

import (
	"context"
	"encoding/json"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/lifto/ragbuild"
)

// DefaultLicense is recorded in every page's metadata sidecar.
const DefaultLicense = "CC-BY-SA 4.0"

// Ensure ContentStore implements ragbuild.PageWriter at compile time.
var _ ragbuild.PageWriter = (*ContentStore)(nil)

// ContentStore writes extracted pages into a flat content directory.
type ContentStore struct {
	dir     string
	license string
	claimed map[string]string // flattened name -> source page path
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithLicense sets the license recorded in page metadata. Defaults to
// DefaultLicense.
func WithLicense(license string) Option {
	return func(s *ContentStore) {
		s.license = license
	}
}

// NewContentStore creates a ContentStore writing into dir.
func NewContentStore(dir string, opts ...Option) *ContentStore {
	s := &ContentStore{
		dir:     dir,
		license: DefaultLicense,
		claimed: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileName flattens a page's relative path into a single filename.
// Example: quick-docs/installing-software/index.html →
// quick-docs_installing-software_index.html
func FileName(relPath string) string {
	return strings.ReplaceAll(filepath.ToSlash(relPath), "/", "_")
}

// pageMeta is the metadata sidecar layout.
type pageMeta struct {
	Title       string `json:"title"`
	SourceURL   string `json:"source_url"`
	License     string `json:"license"`
	ContentHash string `json:"content_hash"`
}

// Reset clears pages and sidecars left over from a previous run and
// ensures the content directory exists. Files it did not write (no
// .html or .meta.json suffix) are left alone.
func (s *ContentStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.claimed = make(map[string]string)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "creating content directory: %v", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "reading content directory: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".meta.json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return ragbuild.Errorf(ragbuild.EINTERNAL, "clearing %s: %v", name, err)
		}
	}

	return nil
}

// WritePage persists one page and its metadata sidecar.
func (s *ContentStore) WritePage(ctx context.Context, page *ragbuild.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return err
	}

	name := FileName(page.RelPath)
	// Flattening is lossy ("a/b.html" and "a_b.html" share a name),
	// so claims are tracked to fail instead of silently overwriting.
	if prev, ok := s.claimed[name]; ok && prev != page.RelPath {
		return ragbuild.Errorf(ragbuild.ECONFLICT, "pages %q and %q flatten to the same file %q", prev, page.RelPath, name)
	}
	s.claimed[name] = page.RelPath

	body := formatPage(page)
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(body), 0644); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "writing page %s: %v", name, err)
	}

	meta := pageMeta{
		Title:       page.Title,
		SourceURL:   page.SourceURL,
		License:     s.license,
		ContentHash: page.ContentHash,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "marshaling metadata for %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+".meta.json"), data, 0644); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "writing metadata for %s: %v", name, err)
	}

	return nil
}

// formatPage wraps the extracted article in a minimal HTML document
// so the ingestion pipeline sees the title alongside the content.
func formatPage(page *ragbuild.Page) string {
	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(html.EscapeString(page.Title))
	b.WriteString("</title></head><body>")
	b.WriteString(page.Content)
	b.WriteString("</body></html>")
	return b.String()
}
