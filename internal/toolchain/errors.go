package toolchain

import (
	"errors"
	"io/fs"
	"os/exec"
)

// ExitCode extracts the process exit status from a Run error: 0 for nil,
// the status for *exec.ExitError, and -1 for start failures or signals.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// IsNotFound reports whether err means the executable is not on PATH or
// does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
