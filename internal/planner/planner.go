package planner

import (
	"github.com/backmassage/firmbuild/internal/config"
	"github.com/backmassage/firmbuild/internal/input"
	"github.com/backmassage/firmbuild/internal/toolchain"
)

// BuildPlan produces the five-step plan for files. An empty list is an
// [input.InputError] wrapping [input.ErrNoFiles].
//
// Flow:
//  1. Derive object names (extension after the last dot replaced by .o)
//  2. Derive the fixed artifacts from cfg.OutputBase
//  3. Build one invocation per stage
func BuildPlan(cfg *config.Config, files []string) (*Plan, error) {
	if len(files) == 0 {
		return nil, &input.InputError{Err: input.ErrNoFiles}
	}

	files = append([]string(nil), files...)
	objects := toolchain.ObjectNames(files)
	art := NewArtifacts(cfg.OutputBase)

	steps := []Step{
		{StageCompile, toolchain.CompileArgs(cfg, files)},
		{StageLink, toolchain.LinkArgs(cfg, art.Executable, objects)},
		{StageAssembly, toolchain.AssemblyArgs(cfg, art.Assembly, objects)},
		{StageBinary, toolchain.BinaryArgs(cfg, art.Executable, art.Binary)},
		{StageHex, toolchain.HexArgs(cfg, art.Executable, art.Hex)},
	}

	return &Plan{
		Files:     files,
		Objects:   objects,
		Artifacts: art,
		Steps:     steps,
	}, nil
}
