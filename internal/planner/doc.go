// Package planner builds the BuildPlan for a run: the fixed output
// artifacts and the five ordered toolchain steps that the pipeline executes.
//
// The plan is built once from config and the input file list and is not
// mutated afterwards.
//
// The assembly step receives the derived object files rather than the
// input sources. A real compiler cannot produce textual assembly from
// object files, so that step is expected to fail against a genuine
// toolchain; the command sequence is kept as established rather than
// silently rewritten.
package planner
