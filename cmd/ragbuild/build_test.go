package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lifto/ragbuild"
	"github.com/lifto/ragbuild/build"
	main "github.com/lifto/ragbuild/cmd/ragbuild"
	"github.com/lifto/ragbuild/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBuilder wires a Builder with happy-path mocks rooted in a temp dir.
func testBuilder(t *testing.T, entries []ragbuild.RegistryEntry) *build.Builder {
	t.Helper()

	base := t.TempDir()

	return &build.Builder{
		Registry: &mock.RegistryService{
			FetchRegistryFn: func(_ context.Context) ([]ragbuild.RegistryEntry, error) {
				return entries, nil
			},
		},
		Cloner: &mock.Cloner{
			CloneFn: func(_ context.Context, plan ragbuild.ClonePlan) error {
				return os.MkdirAll(plan.TargetDir, 0755)
			},
		},
		Playbook: &mock.PlaybookWriter{
			WritePlaybookFn: func(_ context.Context, _ string, _ []string) error {
				return nil
			},
		},
		Renderer: &mock.Renderer{
			RenderFn: func(_ context.Context, workDir string) error {
				public := filepath.Join(workDir, "public", "quick-docs")
				if err := os.MkdirAll(public, 0755); err != nil {
					return err
				}
				page := `<html><head><title>Quick Docs</title></head><body><article class="doc"><p>Hi</p></article></body></html>`
				return os.WriteFile(filepath.Join(public, "index.html"), []byte(page), 0644)
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string) (string, string, error) {
				return "Quick Docs", "<article><p>Hi</p></article>", nil
			},
		},
		Pages: &mock.PageWriter{
			ResetFn:     func(_ context.Context) error { return nil },
			WritePageFn: func(_ context.Context, _ *ragbuild.Page) error { return nil },
		},
		Ingester: &mock.Ingester{
			IngestFn: func(_ context.Context, _, _ string) error { return nil },
		},
		WorkDir:    filepath.Join(base, "work"),
		ContentDir: filepath.Join(base, "content"),
		DumpPath:   filepath.Join(base, "dist", "fedora-docs.sql"),
		KeepWork:   true,
	}
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a summary and the restore hint", func(t *testing.T) {
		t.Parallel()

		builder := testBuilder(t, []ragbuild.RegistryEntry{
			{
				RepositoryURL: "https://pagure.io/fedora-docs/quick-docs.git",
				Ref:           "main",
				ComponentName: "quick-docs",
				Priority:      0,
			},
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Builder: builder,
		}

		cmd := &main.BuildCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Built 1 components (1 registry entries)")
		assert.Contains(t, output, "1 pages extracted, 0 skipped")
		assert.Contains(t, output, builder.DumpPath)
		assert.Contains(t, output, "docs2db db-restore")
	})

	t.Run("names the failed stage on stderr", func(t *testing.T) {
		t.Parallel()

		builder := testBuilder(t, nil)
		builder.Registry = &mock.RegistryService{
			FetchRegistryFn: func(_ context.Context) ([]ragbuild.RegistryEntry, error) {
				return nil, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "registry fetch failed: HTTP 503")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Builder: builder,
		}

		cmd := &main.BuildCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `build failed at stage "fetch"`)
		assert.Contains(t, stderr.String(), "registry fetch failed")
	})
}
