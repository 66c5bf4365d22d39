package antora

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lifto/ragbuild"
)

// DefaultImage is the Antora container image used for rendering.
const DefaultImage = "docker.io/antora/antora"

// Ensure Renderer implements ragbuild.Renderer at compile time.
var _ ragbuild.Renderer = (*Renderer)(nil)

// Renderer runs Antora in a container over the generated playbook.
type Renderer struct {
	runner  ragbuild.Runner
	runtime string
	image   string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithImage sets the Antora container image. Defaults to DefaultImage.
func WithImage(image string) RendererOption {
	return func(r *Renderer) {
		r.image = image
	}
}

// NewRenderer creates a Renderer that invokes the given container
// runtime ("podman" or "docker") through the runner.
func NewRenderer(runner ragbuild.Runner, runtime string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		runner:  runner,
		runtime: runtime,
		image:   DefaultImage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render runs the Antora build once across all sources declared in
// the playbook under workDir. Rendered pages land in workDir/public.
func (r *Renderer) Render(ctx context.Context, workDir string) error {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return ragbuild.Errorf(ragbuild.EINVALID, "resolving work dir %q: %v", workDir, err)
	}

	result, err := r.runner.Run(ctx, "", r.runtime,
		"run", "--rm",
		"-v", abs+":/antora:Z",
		r.image,
		PlaybookFile,
	)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return ragbuild.Errorf(ragbuild.EINTERNAL, "antora render exited %d: %s",
			result.ExitCode, tail(result.Output, 500))
	}

	return nil
}

// DetectRuntime returns the first installed container runtime,
// preferring podman over docker. The lookPath argument reports
// whether a binary is installed (see exec.LookPath).
func DetectRuntime(lookPath func(name string) bool) (string, error) {
	for _, name := range []string{"podman", "docker"} {
		if lookPath(name) {
			return name, nil
		}
	}
	return "", ragbuild.Errorf(ragbuild.EUNAVAILABLE, "no container runtime found: install podman or docker")
}

// tail returns at most n trailing bytes of s, trimmed.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
