package main

import (
	"errors"
	"fmt"

	"github.com/lifto/ragbuild"
	"github.com/lifto/ragbuild/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Run(deps.Ctx)
	if err != nil {
		var stageErr *build.StageError
		if errors.As(err, &stageErr) {
			fmt.Fprintf(deps.Stderr, "build failed at stage %q: %s\n", stageErr.Stage, ragbuild.ErrorMessage(stageErr.Err))
		} else {
			fmt.Fprintf(deps.Stderr, "build failed: %s\n", ragbuild.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Built %d components (%d registry entries): %d pages extracted, %d skipped\n",
		result.Components, result.Entries, result.Pages, result.Skipped)
	fmt.Fprintf(deps.Stdout, "Database dump: %s\n", result.DumpPath)
	fmt.Fprintf(deps.Stdout, "Restore with: docs2db db-restore %s\n", result.DumpPath)

	printDiagnostics(deps, result.Diagnostics)

	return nil
}
