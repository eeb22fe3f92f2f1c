package pipeline

import "github.com/backmassage/firmbuild/internal/planner"

// State is a position in the run's state machine.
type State int

const (
	StateStart State = iota
	StateCompiling
	StateLinking
	StateEmittingAssembly
	StateExtractingBinary
	StateExtractingHex
	StateDone
	StateFailed
)

var stateNames = [...]string{
	"Start",
	"Compiling",
	"Linking",
	"EmittingAssembly",
	"ExtractingBinary",
	"ExtractingHex",
	"Done",
	"Failed",
}

func (s State) String() string {
	if s < StateStart || s > StateFailed {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// stateFor maps a stage to the state the machine is in while it runs.
func stateFor(stage planner.Stage) State {
	switch stage {
	case planner.StageCompile:
		return StateCompiling
	case planner.StageLink:
		return StateLinking
	case planner.StageAssembly:
		return StateEmittingAssembly
	case planner.StageBinary:
		return StateExtractingBinary
	case planner.StageHex:
		return StateExtractingHex
	}
	return StateFailed
}

// next returns the successor of s on success. Terminal states are fixed
// points.
func (s State) next() State {
	if s.Terminal() {
		return s
	}
	return s + 1
}
