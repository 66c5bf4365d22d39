package main

import (
	"fmt"

	"github.com/lifto/ragbuild"
)

// Run executes the plan command. It performs the fetch and resolution
// stages and prints what a build would clone, without side effects.
func (c *PlanCmd) Run(deps *Dependencies) error {
	entries, err := deps.Registry.FetchRegistry(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragbuild.ErrorMessage(err))
		return err
	}

	assignments, diags := ragbuild.ResolveComponents(entries)
	plans, err := ragbuild.PlanClones(assignments, c.WorkDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ragbuild.ErrorMessage(err))
		return err
	}

	for _, p := range plans {
		fmt.Fprintf(deps.Stdout, "%-30s %-12s %s -> %s\n", p.ComponentName, p.Ref, p.RepositoryURL, p.TargetDir)
	}
	fmt.Fprintf(deps.Stdout, "%d components from %d registry entries\n", len(plans), len(entries))

	printDiagnostics(deps, diags)

	return nil
}

// printDiagnostics surfaces shadowed and dropped entries for human
// review. They never fail the run but are never silently dropped.
func printDiagnostics(deps *Dependencies, diags []ragbuild.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(deps.Stderr, "%s: %s\n", d.Kind, d.Message)
	}
}
