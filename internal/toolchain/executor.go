package toolchain

import (
	"context"
	"io"
	"os/exec"
)

// Result holds the outcome of a single invocation. ExitCode is -1 when the
// process could not be started or did not exit normally.
type Result struct {
	ExitCode int
	Err      error
}

// Success reports whether the process started and exited with status 0.
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes an invocation synchronously.
type Runner interface {
	Run(ctx context.Context, inv Invocation) Result
}

// ExecRunner runs invocations as child processes. Output is passed through
// to Stdout/Stderr as it is produced; nothing is captured.
type ExecRunner struct {
	Dir    string    // Working directory; empty means the current one.
	Stdout io.Writer // nil discards output.
	Stderr io.Writer // nil discards output.
}

// Run starts inv and waits for it to exit. Stdin is not forwarded: the
// interactive file list has already consumed it.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) Result {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err != nil {
		return Result{ExitCode: ExitCode(err), Err: err}
	}
	return Result{ExitCode: 0}
}
