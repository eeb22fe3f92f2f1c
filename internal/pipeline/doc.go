// Package pipeline runs a BuildPlan: each toolchain step in order, blocking,
// stopping at the first non-zero exit status.
//
// State machine:
//
//	Start -> Compiling -> Linking -> EmittingAssembly ->
//	ExtractingBinary -> ExtractingHex -> Done
//
// Any state moves to Failed (terminal) when its command fails. Start with
// an empty file list moves to Failed before any process is started. Files
// already produced are left on disk after a failure.
package pipeline
