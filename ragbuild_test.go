package ragbuild_test

import (
	"errors"
	"testing"

	"github.com/lifto/ragbuild"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ragbuild.Errorf(ragbuild.ECONFLICT, "component %q already planned", "quick-docs")

	assert.Equal(t, ragbuild.ECONFLICT, ragbuild.ErrorCode(err))
	assert.Equal(t, "component \"quick-docs\" already planned", ragbuild.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ragbuild.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ragbuild.EINTERNAL, ragbuild.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ragbuild.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", ragbuild.ErrorMessage(errors.New("boom")))
}

func TestRegistryEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid entry", func(t *testing.T) {
		t.Parallel()

		entry := ragbuild.RegistryEntry{
			RepositoryURL: "https://pagure.io/fedora-docs/quick-docs.git",
			Ref:           "main",
			ComponentName: "quick-docs",
		}
		assert.NoError(t, entry.Validate())
	})

	t.Run("missing repository URL", func(t *testing.T) {
		t.Parallel()

		entry := ragbuild.RegistryEntry{Ref: "main", ComponentName: "quick-docs"}
		err := entry.Validate()
		assert.Equal(t, ragbuild.EINVALID, ragbuild.ErrorCode(err))
	})

	t.Run("missing ref", func(t *testing.T) {
		t.Parallel()

		entry := ragbuild.RegistryEntry{
			RepositoryURL: "https://pagure.io/fedora-docs/quick-docs.git",
			ComponentName: "quick-docs",
		}
		err := entry.Validate()
		assert.Equal(t, ragbuild.EINVALID, ragbuild.ErrorCode(err))
	})

	t.Run("empty component name is not a validation error", func(t *testing.T) {
		t.Parallel()

		entry := ragbuild.RegistryEntry{
			RepositoryURL: "https://pagure.io/fedora-docs/quick-docs.git",
			Ref:           "main",
		}
		assert.NoError(t, entry.Validate())
		assert.False(t, entry.HasValidComponentName())
	})

	t.Run("whitespace component name is invalid", func(t *testing.T) {
		t.Parallel()

		entry := ragbuild.RegistryEntry{ComponentName: "  \t"}
		assert.False(t, entry.HasValidComponentName())
	})
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid page", func(t *testing.T) {
		t.Parallel()

		page := ragbuild.Page{RelPath: "quick-docs/index.html", Content: "<article></article>"}
		assert.NoError(t, page.Validate())
	})

	t.Run("missing rel path", func(t *testing.T) {
		t.Parallel()

		page := ragbuild.Page{Content: "<article></article>"}
		assert.Equal(t, ragbuild.EINVALID, ragbuild.ErrorCode(page.Validate()))
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()

		page := ragbuild.Page{RelPath: "quick-docs/index.html"}
		assert.Equal(t, ragbuild.EINVALID, ragbuild.ErrorCode(page.Validate()))
	})
}
