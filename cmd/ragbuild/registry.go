package main

import (
	"fmt"

	"github.com/lifto/ragbuild"
)

// Run executes the registry command.
func (c *RegistryCmd) Run(deps *Dependencies) error {
	entries, err := deps.Registry.FetchRegistry(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragbuild.ErrorMessage(err))
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%-4d %-30s %-12s %s\n", e.Priority, e.ComponentName, e.Ref, e.RepositoryURL)
	}
	fmt.Fprintf(deps.Stdout, "%d entries\n", len(entries))

	return nil
}
