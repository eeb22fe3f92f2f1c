package pipeline

import (
	"time"

	"github.com/backmassage/firmbuild/internal/planner"
)

// RunStats records how far a run got.
type RunStats struct {
	State       State
	Completed   []planner.Stage
	FailedStage *planner.Stage
	Invocations int // Processes actually started (zero in dry-run).
	Elapsed     time.Duration
}

// Succeeded reports whether the run reached Done.
func (s *RunStats) Succeeded() bool {
	return s.State == StateDone
}
