package pipeline

import (
	"fmt"

	"github.com/backmassage/firmbuild/internal/planner"
)

// StageError reports that a stage's command did not succeed. Its message is
// the stage's fixed diagnostic; the exit code and cause are kept for
// callers and debug logging.
type StageError struct {
	Stage    planner.Stage
	ExitCode int
	Err      error // Start or wait error from the runner; nil for a plain non-zero exit.
}

func (e *StageError) Error() string {
	return e.Stage.FailureMessage()
}

func (e *StageError) Unwrap() error { return e.Err }

// Detail describes the underlying failure for debug output.
func (e *StageError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s stage: exit status %d: %v", e.Stage, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s stage: exit status %d", e.Stage, e.ExitCode)
}
