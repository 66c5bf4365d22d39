package goquery_test

import (
	"testing"

	"github.com/lifto/ragbuild"
	"github.com/lifto/ragbuild/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article.doc with title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Quick Docs :: Fedora Docs</title></head><body>
<nav class="breadcrumbs">nav stuff</nav>
<article class="doc"><h1>Installing software</h1><p>Use dnf.</p></article>
</body></html>`

		title, content, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "Quick Docs :: Fedora Docs", title)
		assert.Contains(t, content, "<h1>Installing software</h1>")
		assert.Contains(t, content, "Use dnf.")
	})

	t.Run("strips aside, nav, and script from the article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article class="doc">
<aside class="toc">table of contents</aside>
<nav class="pagination">next page</nav>
<script>analytics()</script>
<p>Real content.</p>
</article></body></html>`

		_, content, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)

		assert.Contains(t, content, "Real content.")
		assert.NotContains(t, content, "table of contents")
		assert.NotContains(t, content, "next page")
		assert.NotContains(t, content, "analytics")
	})

	t.Run("falls back to a plain article element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>Plain article.</p></article></body></html>`

		_, content, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, content, "Plain article.")
	})

	t.Run("prefers article.doc over other articles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>Wrong one.</p></article>
<article class="doc"><p>Right one.</p></article>
</body></html>`

		_, content, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, content, "Right one.")
		assert.NotContains(t, content, "Wrong one.")
	})

	t.Run("page without an article is not found", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>No article here.</div></body></html>`

		_, _, err := goquery.NewExtractor().Extract(html)
		assert.Equal(t, ragbuild.ENOTFOUND, ragbuild.ErrorCode(err))
	})

	t.Run("missing title yields empty title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article class="doc"><p>Untitled.</p></article></body></html>`

		title, _, err := goquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Empty(t, title)
	})
}
