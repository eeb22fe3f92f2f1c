// Command firmbuild drives an embedded cross-toolchain through compile,
// link, assembly, binary and Intel-HEX steps for a list of C sources.
//
// It parses flags, validates configuration, collects filenames (from the
// command line or interactively until END), and either runs toolchain
// diagnostics (--check) or the five-step build.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/firmbuild/internal/check"
	"github.com/backmassage/firmbuild/internal/config"
	"github.com/backmassage/firmbuild/internal/display"
	"github.com/backmassage/firmbuild/internal/input"
	"github.com/backmassage/firmbuild/internal/logging"
	"github.com/backmassage/firmbuild/internal/pipeline"
	"github.com/backmassage/firmbuild/internal/planner"
	"github.com/backmassage/firmbuild/internal/term"
	"github.com/backmassage/firmbuild/internal/toolchain"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes.
const (
	exitSuccess      = 0
	exitStageFailure = 1 // A toolchain step returned non-zero.
	exitInputError   = 2 // No filenames, or stdin could not be read.
	exitConfigError  = 3 // Bad flags, logger setup, or missing toolchain.
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run builds the root command and executes it, mapping every outcome to
// an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()
	code := exitSuccess

	root := newRootCmd(&cfg, func() int {
		return execute(&cfg, stdin, stdout, stderr, &toolchain.ExecRunner{Stdout: stdout, Stderr: stderr})
	}, &code)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Bootstrap errors: the logger doesn't exist yet, so they go to stderr.
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "firmbuild: %v\n", err)
		return exitConfigError
	}
	return code
}

// execute runs one configured invocation of firmbuild.
func execute(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, runner toolchain.Runner) int {
	log, err := logging.New(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "firmbuild: %v\n", err)
		return exitConfigError
	}
	defer log.Close()

	// From here on all diagnostics go through log.
	if term.Enabled() {
		display.PrintBanner(stdout)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return exitConfigError
		}
		return exitSuccess
	}

	files := cfg.Files
	if len(files) == 0 {
		files, err = input.Collect(stdin, stdout, cfg.Sentinel)
		if err != nil {
			log.Error("%v", err)
			return exitInputError
		}
	}

	plan, err := planner.BuildPlan(cfg, files)
	if err != nil {
		log.Error("%v", err)
		return exitInputError
	}

	log.Debug(cfg.Verbose, "firmbuild v%s (%s), toolchain %s / %s",
		version, commit, cfg.Compiler(), cfg.ObjcopyTool())

	// Fail fast if the toolchain is not installed.
	if !cfg.DryRun && !cfg.NoPreflight {
		if err := check.CheckDeps(cfg); err != nil {
			log.Error("%v", err)
			return exitConfigError
		}
	}

	// No cancellation: every step runs to completion.
	stats, err := pipeline.Run(context.Background(), cfg, plan, runner, log)
	log.Debug(cfg.Verbose, "%d of %d steps completed in %s", len(stats.Completed),
		len(plan.Steps), display.FormatDuration(stats.Elapsed.Milliseconds()))
	return exitCode(err)
}

// exitCode maps a pipeline error onto the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ie *input.InputError
	if errors.As(err, &ie) {
		return exitInputError
	}
	return exitStageFailure
}
