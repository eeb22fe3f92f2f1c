package planner

import "github.com/backmassage/firmbuild/internal/toolchain"

// Stage identifies one of the five toolchain steps, in execution order.
type Stage int

const (
	StageCompile Stage = iota
	StageLink
	StageAssembly
	StageBinary
	StageHex
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageCompile, StageLink, StageAssembly, StageBinary, StageHex}

var stageNames = [...]string{"compile", "link", "assembly", "binary", "hex"}

var stageProgress = [...]string{
	"Compiling with command",
	"Linking with command",
	"Generating ARM assembly with command",
	"Generating binary file with command",
	"Generating hex file with command",
}

var stageFailures = [...]string{
	"Compilation failed. Please check your code.",
	"Linking failed. Please check your code.",
	"Failed to generate ARM assembly code.",
	"Failed to generate binary file.",
	"Failed to generate hex file.",
}

func (s Stage) valid() bool { return s >= StageCompile && s <= StageHex }

// String returns the short stage name ("compile", "link", ...).
func (s Stage) String() string {
	if !s.valid() {
		return "unknown"
	}
	return stageNames[s]
}

// Progress returns the label logged before the stage's command line.
func (s Stage) Progress() string {
	if !s.valid() {
		return "Running command"
	}
	return stageProgress[s]
}

// FailureMessage returns the one-line diagnostic for a failed stage.
func (s Stage) FailureMessage() string {
	if !s.valid() {
		return "Build step failed."
	}
	return stageFailures[s]
}

// Artifacts are the four output paths of a run. They derive from a fixed
// base name and are not user-configurable.
type Artifacts struct {
	Executable string
	Assembly   string
	Binary     string
	Hex        string
}

// NewArtifacts derives the artifact names from base.
func NewArtifacts(base string) Artifacts {
	return Artifacts{
		Executable: base,
		Assembly:   base + ".s",
		Binary:     base + ".bin",
		Hex:        base + ".hex",
	}
}

// List returns the artifacts in summary order.
func (a Artifacts) List() []string {
	return []string{a.Executable, a.Assembly, a.Binary, a.Hex}
}

// Step pairs a stage with the command that performs it.
type Step struct {
	Stage      Stage
	Invocation toolchain.Invocation
}

// Plan is the complete, ordered description of a run.
type Plan struct {
	Files     []string // Input list, as collected.
	Objects   []string // Derived object files, one per input.
	Artifacts Artifacts
	Steps     []Step // One per Stage, in Stages order.
}
