package ragbuild

import "context"

// Page is one rendered documentation page after article extraction.
type Page struct {
	// RelPath is the page path relative to the rendered site root.
	RelPath string `json:"relPath"`

	// Title is the page title.
	Title string `json:"title"`

	// Content is the extracted article markup.
	Content string `json:"content"`

	// SourceURL is the canonical published location of the page.
	SourceURL string `json:"sourceUrl"`

	// ContentHash is a stable hash of Content.
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.RelPath == "" {
		return Errorf(EINVALID, "page relative path required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required for %s", p.RelPath)
	}
	return nil
}

// Extractor pulls article content out of a rendered page.
type Extractor interface {
	// Extract returns the page title and article markup. Returns
	// ENOTFOUND when the page carries no article content (navigation
	// shells, redirects); such pages are skipped, not failed.
	Extract(html string) (title, content string, err error)
}

// PageWriter persists extracted pages for the ingestion pipeline.
type PageWriter interface {
	// Reset clears pages left over from a previous run.
	Reset(ctx context.Context) error

	// WritePage persists one page.
	WritePage(ctx context.Context, page *Page) error
}
