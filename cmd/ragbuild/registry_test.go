package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/lifto/ragbuild"
	main "github.com/lifto/ragbuild/cmd/ragbuild"
	"github.com/lifto/ragbuild/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries with component, ref, and URL", func(t *testing.T) {
		t.Parallel()

		registry := &mock.RegistryService{
			FetchRegistryFn: func(_ context.Context) ([]ragbuild.RegistryEntry, error) {
				return []ragbuild.RegistryEntry{
					{
						RepositoryURL: "https://pagure.io/fedora-docs/quick-docs.git",
						Ref:           "main",
						ComponentName: "quick-docs",
						Priority:      0,
					},
					{
						RepositoryURL: "https://github.com/fedora-iot/iot-docs.git",
						Ref:           "stable",
						ComponentName: "iot",
						Priority:      1,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Registry: registry,
		}

		cmd := &main.RegistryCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "quick-docs")
		assert.Contains(t, output, "https://pagure.io/fedora-docs/quick-docs.git")
		assert.Contains(t, output, "iot")
		assert.Contains(t, output, "stable")
		assert.Contains(t, output, "2 entries")
	})

	t.Run("reports fetch failures on stderr", func(t *testing.T) {
		t.Parallel()

		registry := &mock.RegistryService{
			FetchRegistryFn: func(_ context.Context) ([]ragbuild.RegistryEntry, error) {
				return nil, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "registry fetch failed: HTTP 503")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Registry: registry,
		}

		cmd := &main.RegistryCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "registry fetch failed")
	})
}
