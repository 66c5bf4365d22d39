package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/lifto/ragbuild"
	"github.com/lifto/ragbuild/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Registry ragbuild.RegistryService
	Builder  *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	RegistryURL string `help:"Upstream registry location (overrides RAGBUILD_REGISTRY)"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`

	Registry RegistryCmd `cmd:"" help:"Fetch and list the upstream registry entries"`
	Plan     PlanCmd     `cmd:"" help:"Resolve components and show the clone plan without cloning"`
	Build    BuildCmd    `cmd:"" help:"Run the full build: clone, render, extract, ingest, dump"`
}

// RegistryCmd is the "registry" subcommand.
type RegistryCmd struct{}

// PlanCmd is the "plan" subcommand.
type PlanCmd struct {
	WorkDir string `default:"build" help:"Directory clones would be placed in"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	WorkDir     string  `default:"build" help:"Directory for clones, the playbook, and the rendered site"`
	ContentDir  string  `default:"docs2db_content" help:"Directory for extracted pages"`
	Output      string  `default:"dist/fedora-docs.sql" help:"Database dump output path"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent clone limit"`
	CloneRPS    float64 `name:"clone-rps" default:"1" help:"Clone operations per second per forge host"`
	Runtime     string  `enum:"auto,podman,docker" default:"auto" help:"Container runtime"`
	Workers     int     `default:"1" help:"Embedding worker count"`
	KeepWork    bool    `help:"Keep the work directory after extraction"`
}
