// Package antora drives the external Antora render: it generates the
// combined playbook covering all cloned sources and runs the Antora
// container image over it through a ragbuild.Runner.
package antora

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lifto/ragbuild"
	"gopkg.in/yaml.v3"
)

// PlaybookFile is the playbook filename written into the work dir.
const PlaybookFile = "site.yml"

// defaultUIBundleURL is the Fedora docs UI bundle used for rendering.
const defaultUIBundleURL = "https://gitlab.com/fedora/docs/docs-website/ui-bundle/-/jobs/artifacts/HEAD/raw/build/ui-bundle.zip?job=bundle-stable"

// Ensure PlaybookWriter implements ragbuild.PlaybookWriter at compile time.
var _ ragbuild.PlaybookWriter = (*PlaybookWriter)(nil)

// PlaybookWriter generates the combined Antora playbook.
type PlaybookWriter struct {
	title     string
	startPage string
	uiBundle  string
}

// PlaybookOption configures a PlaybookWriter.
type PlaybookOption func(*PlaybookWriter)

// WithTitle sets the site title.
func WithTitle(title string) PlaybookOption {
	return func(w *PlaybookWriter) {
		w.title = title
	}
}

// WithStartPage sets the site start page.
func WithStartPage(page string) PlaybookOption {
	return func(w *PlaybookWriter) {
		w.startPage = page
	}
}

// WithUIBundle sets the UI bundle URL.
func WithUIBundle(url string) PlaybookOption {
	return func(w *PlaybookWriter) {
		w.uiBundle = url
	}
}

// NewPlaybookWriter creates a new PlaybookWriter with Fedora defaults.
func NewPlaybookWriter(opts ...PlaybookOption) *PlaybookWriter {
	w := &PlaybookWriter{
		title:     "Fedora Documentation",
		startPage: "quick-docs::index.adoc",
		uiBundle:  defaultUIBundleURL,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Playbook document layout. Field order matches the emitted YAML.
type playbook struct {
	Site    playbookSite    `yaml:"site"`
	Content playbookContent `yaml:"content"`
	UI      playbookUI      `yaml:"ui"`
	Output  playbookOutput  `yaml:"output"`
	Runtime playbookRuntime `yaml:"runtime"`
}

type playbookSite struct {
	Title     string `yaml:"title"`
	StartPage string `yaml:"start_page"`
}

type playbookContent struct {
	Sources []playbookSource `yaml:"sources"`
}

type playbookSource struct {
	URL       string `yaml:"url"`
	StartPath string `yaml:"start_path,omitempty"`
	Branches  string `yaml:"branches"`
}

type playbookUI struct {
	Bundle playbookBundle `yaml:"bundle"`
}

type playbookBundle struct {
	URL      string `yaml:"url"`
	Snapshot bool   `yaml:"snapshot"`
}

type playbookOutput struct {
	Clean bool   `yaml:"clean"`
	Dir   string `yaml:"dir"`
}

type playbookRuntime struct {
	Fetch bool `yaml:"fetch"`
}

// WritePlaybook scans cloneDirs for Antora components and writes the
// combined playbook into workDir. A component is a directory holding
// antora.yml at its root or in an immediate subdirectory (emitted
// with start_path). Returns EINVALID if no component is found.
func (w *PlaybookWriter) WritePlaybook(ctx context.Context, workDir string, cloneDirs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sources []playbookSource
	for _, dir := range cloneDirs {
		name := filepath.Base(dir)

		if hasComponentDescriptor(dir) {
			sources = append(sources, playbookSource{
				URL:      "./" + name,
				Branches: "HEAD",
			})
		}

		subdirs, err := os.ReadDir(dir)
		if err != nil {
			return ragbuild.Errorf(ragbuild.EINTERNAL, "scanning %s: %v", dir, err)
		}
		for _, sub := range subdirs {
			if !sub.IsDir() {
				continue
			}
			if hasComponentDescriptor(filepath.Join(dir, sub.Name())) {
				sources = append(sources, playbookSource{
					URL:       "./" + name,
					StartPath: sub.Name(),
					Branches:  "HEAD",
				})
			}
		}
	}

	if len(sources) == 0 {
		return ragbuild.Errorf(ragbuild.EINVALID, "no Antora components found in %d cloned directories", len(cloneDirs))
	}

	doc := playbook{
		Site: playbookSite{
			Title:     w.title,
			StartPage: w.startPage,
		},
		Content: playbookContent{Sources: sources},
		UI: playbookUI{
			Bundle: playbookBundle{URL: w.uiBundle, Snapshot: true},
		},
		Output:  playbookOutput{Clean: true, Dir: "./public"},
		Runtime: playbookRuntime{Fetch: true},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "marshaling playbook: %v", err)
	}

	path := filepath.Join(workDir, PlaybookFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "writing playbook: %v", err)
	}

	return nil
}

// hasComponentDescriptor reports whether dir holds an Antora
// component descriptor.
func hasComponentDescriptor(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "antora.yml"))
	return err == nil && !info.IsDir()
}
