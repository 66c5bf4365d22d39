// Package goquery provides a goquery-based implementation of
// ragbuild.Extractor for pulling article content out of rendered
// Antora pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lifto/ragbuild"
)

// Ensure Extractor implements ragbuild.Extractor at compile time.
var _ ragbuild.Extractor = (*Extractor)(nil)

// Extractor extracts the main article from Antora-rendered HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the article markup with
// navigation chrome stripped. Antora wraps page content in
// <article class="doc">; any <article> is accepted as a fallback.
// Returns ENOTFOUND for pages without an article (navigation shells,
// redirect stubs), which callers skip rather than fail on.
func (e *Extractor) Extract(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", ragbuild.Errorf(ragbuild.EINVALID, "failed to parse HTML: %v", err)
	}

	article := doc.Find("article.doc").First()
	if article.Length() == 0 {
		article = doc.Find("article").First()
	}
	if article.Length() == 0 {
		return "", "", ragbuild.Errorf(ragbuild.ENOTFOUND, "no article content")
	}

	article.Find("aside, nav, script").Remove()

	content, err := goquery.OuterHtml(article)
	if err != nil {
		return "", "", ragbuild.Errorf(ragbuild.EINTERNAL, "rendering article: %v", err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "", ragbuild.Errorf(ragbuild.ENOTFOUND, "no article content")
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	return title, content, nil
}
