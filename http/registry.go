// Package http provides an HTTP-based implementation of
// ragbuild.RegistryService for fetching the upstream site
// configuration that declares the documentation source repositories.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/lifto/ragbuild"
	"gopkg.in/yaml.v3"
)

// DefaultRegistryURL is the well-known location of the upstream site
// configuration.
const DefaultRegistryURL = "https://gitlab.com/fedora/docs/docs-website/docs-fp-o/-/raw/main/site.yml"

// DefaultFetchTimeout is the default timeout for registry requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure RegistryService implements ragbuild.RegistryService at compile time.
var _ ragbuild.RegistryService = (*RegistryService)(nil)

// RegistryService fetches and parses the upstream registry over HTTP.
type RegistryService struct {
	client *http.Client
	url    string
}

// Option configures a RegistryService.
type Option func(*RegistryService)

// WithClient sets the HTTP client. Defaults to a client with
// DefaultFetchTimeout.
func WithClient(client *http.Client) Option {
	return func(s *RegistryService) {
		s.client = client
	}
}

// WithURL sets the registry location. Defaults to DefaultRegistryURL.
func WithURL(url string) Option {
	return func(s *RegistryService) {
		s.url = url
	}
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(opts ...Option) *RegistryService {
	s := &RegistryService{
		url: DefaultRegistryURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return s
}

// registryDocument mirrors the upstream configuration layout.
type registryDocument struct {
	Sources []registrySource `yaml:"sources"`
}

type registrySource struct {
	URL       string `yaml:"url"`
	Ref       string `yaml:"ref"`
	Component string `yaml:"component"`
	Priority  *int   `yaml:"priority"`
}

// FetchRegistry retrieves and parses the upstream registry, preserving
// declaration order. Declaration order doubles as the default
// priority; an explicit priority field on a source overrides it.
//
// The parse is all-or-nothing: a missing required field on any entry
// fails the whole fetch, since a partially correct registry would
// silently drop documentation.
func (s *RegistryService) FetchRegistry(ctx context.Context) ([]ragbuild.RegistryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, ragbuild.Errorf(ragbuild.EINVALID, "invalid registry URL %q: %v", s.url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "registry fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "registry fetch failed: HTTP %d for %s", resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ragbuild.Errorf(ragbuild.EUNAVAILABLE, "reading registry response: %v", err)
	}

	return parseRegistry(body)
}

// parseRegistry decodes the registry document into ordered entries.
func parseRegistry(data []byte) ([]ragbuild.RegistryEntry, error) {
	var doc registryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ragbuild.Errorf(ragbuild.EINVALID, "malformed registry payload: %v", err)
	}

	if len(doc.Sources) == 0 {
		return nil, ragbuild.Errorf(ragbuild.EINVALID, "registry lists no sources; upstream unreachable or malformed")
	}

	entries := make([]ragbuild.RegistryEntry, 0, len(doc.Sources))
	for i, src := range doc.Sources {
		entry := ragbuild.RegistryEntry{
			RepositoryURL: src.URL,
			Ref:           src.Ref,
			ComponentName: src.Component,
			Priority:      i,
		}
		if src.Priority != nil {
			entry.Priority = *src.Priority
		}
		if err := entry.Validate(); err != nil {
			return nil, ragbuild.Errorf(ragbuild.EINVALID, "registry entry %d: %s", i, ragbuild.ErrorMessage(err))
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
