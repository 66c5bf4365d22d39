package ragbuild

import "context"

// RunResult holds the outcome of an external process invocation.
type RunResult struct {
	// ExitCode is the process exit status. Zero means success.
	ExitCode int

	// Output is the combined stdout and stderr of the process.
	Output string
}

// Runner invokes external processes. It is the single seam through
// which the system reaches version control, the container runtime,
// and the ingestion CLI, so orchestration logic can be tested with a
// fake implementation.
type Runner interface {
	// Run executes name with args in dir (or the current directory if
	// dir is empty) and waits for it to finish. A non-zero exit is
	// reported through RunResult, not through err; err is reserved
	// for failures to start or interrupt the process at all.
	Run(ctx context.Context, dir string, name string, args ...string) (RunResult, error)
}
