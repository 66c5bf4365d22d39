package ragbuild

import (
	"context"
	"strings"
)

// RegistryEntry is one documentation source declared by the upstream
// site configuration.
type RegistryEntry struct {
	// RepositoryURL is the clone URL of the source repository.
	RepositoryURL string `json:"repositoryUrl"`

	// Ref is the branch or tag to clone.
	Ref string `json:"ref"`

	// ComponentName is the Antora component the repository renders
	// into. Not guaranteed unique across entries.
	ComponentName string `json:"componentName"`

	// Priority orders entries for collision resolution. Lower wins.
	// Defaults to declaration order in the upstream registry unless
	// the registry declares an explicit priority.
	Priority int `json:"priority"`
}

// Validate returns an error if the entry is missing a required field.
// Component name validity is checked separately by ResolveComponents,
// which drops the offending entry with a diagnostic rather than
// failing the whole registry.
func (e *RegistryEntry) Validate() error {
	if e.RepositoryURL == "" {
		return Errorf(EINVALID, "registry entry repository URL required")
	}
	if e.Ref == "" {
		return Errorf(EINVALID, "registry entry ref required for %s", e.RepositoryURL)
	}
	return nil
}

// HasValidComponentName reports whether the entry names a non-empty,
// non-whitespace component.
func (e *RegistryEntry) HasValidComponentName() bool {
	return strings.TrimSpace(e.ComponentName) != ""
}

// RegistryService retrieves the upstream registry of documentation
// sources.
type RegistryService interface {
	// FetchRegistry retrieves and parses the upstream site
	// configuration, preserving declaration order. An empty result or
	// a missing required field on any entry is an error; a partially
	// parsed registry would silently drop documentation.
	FetchRegistry(ctx context.Context) ([]RegistryEntry, error)
}
