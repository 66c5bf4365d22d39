package ragbuild

import "context"

// PlaybookWriter generates the combined Antora playbook covering all
// cloned sources.
type PlaybookWriter interface {
	// WritePlaybook scans cloneDirs for Antora components and writes
	// the playbook into workDir. Returns EINVALID if no component is
	// found in any cloned directory.
	WritePlaybook(ctx context.Context, workDir string, cloneDirs []string) error
}

// Renderer runs the external static-site render over the cloned
// sources. The render is a black box: this system only observes its
// exit status and expects rendered pages under workDir afterwards.
type Renderer interface {
	Render(ctx context.Context, workDir string) error
}
