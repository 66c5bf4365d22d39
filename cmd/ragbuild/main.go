package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lifto/ragbuild/antora"
	"github.com/lifto/ragbuild/build"
	"github.com/lifto/ragbuild/docs2db"
	ragexec "github.com/lifto/ragbuild/exec"
	"github.com/lifto/ragbuild/fs"
	"github.com/lifto/ragbuild/git"
	"github.com/lifto/ragbuild/goquery"
	raghttp "github.com/lifto/ragbuild/http"
	ragslog "github.com/lifto/ragbuild/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// LookPath reports whether a binary is installed. Overridable for
	// end-to-end testing.
	LookPath func(name string) bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LookPath: ragexec.LookPath,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ragbuild"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ragbuild --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parse result, not from
	// args[0]: global flags may precede the command name.
	cmd := kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	registry := raghttp.NewRegistryService(raghttp.WithURL(registryURL(cli.RegistryURL)))
	deps.Registry = ragslog.NewLoggingRegistryService(registry, deps.Logger)

	if cmd == "build" {
		if !m.LookPath("git") {
			fmt.Fprintln(stderr, "Hint: git must be installed")
			return fmt.Errorf("git not found on PATH")
		}

		runtime := cli.Build.Runtime
		if runtime == "auto" {
			runtime, err = antora.DetectRuntime(m.LookPath)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: install podman or docker")
				return err
			}
		}

		runner := ragexec.NewRunner()
		deps.Builder = &build.Builder{
			Registry:    deps.Registry,
			Cloner:      ragslog.NewLoggingCloner(git.NewCloner(runner), deps.Logger),
			Playbook:    antora.NewPlaybookWriter(),
			Renderer:    antora.NewRenderer(runner, runtime),
			Extractor:   goquery.NewExtractor(),
			Pages:       fs.NewContentStore(cli.Build.ContentDir),
			Ingester:    docs2db.NewIngester(runner, docs2db.WithWorkers(cli.Build.Workers)),
			Limiter:     build.NewHostLimiter(cli.Build.CloneRPS),
			Logger:      deps.Logger,
			WorkDir:     cli.Build.WorkDir,
			ContentDir:  cli.Build.ContentDir,
			DumpPath:    cli.Build.Output,
			Concurrency: cli.Build.Concurrency,
			KeepWork:    cli.Build.KeepWork,
		}
	}

	return kongCtx.Run(deps)
}

// registryURL resolves the registry location: flag, then environment,
// then the well-known default.
func registryURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("RAGBUILD_REGISTRY"); env != "" {
		return env
	}
	return raghttp.DefaultRegistryURL
}
