package antora_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lifto/ragbuild"
	"github.com/lifto/ragbuild/antora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// mkComponent creates dir with an antora.yml descriptor.
func mkComponent(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "antora.yml"), []byte("name: test\n"), 0644))
}

func TestPlaybookWriter_WritePlaybook(t *testing.T) {
	t.Parallel()

	t.Run("emits one source per component descriptor", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		rootComp := filepath.Join(work, "quick-docs")
		mkComponent(t, rootComp)

		nested := filepath.Join(work, "release-docs")
		mkComponent(t, filepath.Join(nested, "docs"))

		w := antora.NewPlaybookWriter()
		err := w.WritePlaybook(context.Background(), work, []string{rootComp, nested})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(work, antora.PlaybookFile))
		require.NoError(t, err)

		var doc struct {
			Site struct {
				Title     string `yaml:"title"`
				StartPage string `yaml:"start_page"`
			} `yaml:"site"`
			Content struct {
				Sources []struct {
					URL       string `yaml:"url"`
					StartPath string `yaml:"start_path"`
					Branches  string `yaml:"branches"`
				} `yaml:"sources"`
			} `yaml:"content"`
			Output struct {
				Dir string `yaml:"dir"`
			} `yaml:"output"`
			Runtime struct {
				Fetch bool `yaml:"fetch"`
			} `yaml:"runtime"`
		}
		require.NoError(t, yaml.Unmarshal(data, &doc))

		assert.Equal(t, "Fedora Documentation", doc.Site.Title)
		assert.Equal(t, "quick-docs::index.adoc", doc.Site.StartPage)
		assert.Equal(t, "./public", doc.Output.Dir)
		assert.True(t, doc.Runtime.Fetch)

		require.Len(t, doc.Content.Sources, 2)
		assert.Equal(t, "./quick-docs", doc.Content.Sources[0].URL)
		assert.Empty(t, doc.Content.Sources[0].StartPath)
		assert.Equal(t, "HEAD", doc.Content.Sources[0].Branches)
		assert.Equal(t, "./release-docs", doc.Content.Sources[1].URL)
		assert.Equal(t, "docs", doc.Content.Sources[1].StartPath)
	})

	t.Run("directory without descriptor contributes nothing", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		comp := filepath.Join(work, "with-docs")
		mkComponent(t, comp)
		bare := filepath.Join(work, "no-docs")
		require.NoError(t, os.MkdirAll(bare, 0755))

		w := antora.NewPlaybookWriter()
		err := w.WritePlaybook(context.Background(), work, []string{comp, bare})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(work, antora.PlaybookFile))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "no-docs")
	})

	t.Run("no components at all is an error", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		bare := filepath.Join(work, "empty")
		require.NoError(t, os.MkdirAll(bare, 0755))

		w := antora.NewPlaybookWriter()
		err := w.WritePlaybook(context.Background(), work, []string{bare})

		assert.Equal(t, ragbuild.EINVALID, ragbuild.ErrorCode(err))
	})

	t.Run("options override the defaults", func(t *testing.T) {
		t.Parallel()

		work := t.TempDir()
		comp := filepath.Join(work, "docs")
		mkComponent(t, comp)

		w := antora.NewPlaybookWriter(
			antora.WithTitle("Test Site"),
			antora.WithStartPage("docs::start.adoc"),
			antora.WithUIBundle("https://example.com/bundle.zip"),
		)
		require.NoError(t, w.WritePlaybook(context.Background(), work, []string{comp}))

		data, err := os.ReadFile(filepath.Join(work, antora.PlaybookFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Test Site")
		assert.Contains(t, string(data), "docs::start.adoc")
		assert.Contains(t, string(data), "https://example.com/bundle.zip")
	})
}
