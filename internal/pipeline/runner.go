package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/backmassage/firmbuild/internal/config"
	"github.com/backmassage/firmbuild/internal/display"
	"github.com/backmassage/firmbuild/internal/input"
	"github.com/backmassage/firmbuild/internal/planner"
	"github.com/backmassage/firmbuild/internal/toolchain"
)

// Logger is the logging surface the pipeline needs; *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Run executes plan's steps in order through runner. It returns on the
// first failing step with a *StageError, or with an *input.InputError when
// the plan has no input files; in both cases the diagnostic has already
// been logged at ERROR level. In dry-run mode commands are logged but
// never started.
func Run(ctx context.Context, cfg *config.Config, plan *planner.Plan, runner toolchain.Runner, log Logger) (RunStats, error) {
	start := time.Now()
	stats := RunStats{State: StateStart}

	if plan == nil || len(plan.Files) == 0 {
		err := &input.InputError{Err: input.ErrNoFiles}
		log.Error("%v", err)
		stats.State = StateFailed
		return finish(&stats, start), err
	}

	log.Debug(cfg.Verbose, "Input files: %s", strings.Join(plan.Files, " "))
	log.Debug(cfg.Verbose, "Object files: %s", strings.Join(plan.Objects, " "))
	if cfg.DryRun {
		log.Warn("DRY RUN: commands are printed, not executed")
	}

	for _, step := range plan.Steps {
		want := stats.State.next()
		if stateFor(step.Stage) != want {
			prev := stats.State
			stats.State = StateFailed
			return finish(&stats, start), fmt.Errorf("pipeline: %v step cannot follow state %v", step.Stage, prev)
		}
		stats.State = want

		log.Info("%s: %s", step.Stage.Progress(), step.Invocation)
		if cfg.DryRun {
			stats.Completed = append(stats.Completed, step.Stage)
			continue
		}

		stepStart := time.Now()
		stats.Invocations++
		res := runner.Run(ctx, step.Invocation)
		if !res.Success() {
			return fail(cfg, log, &stats, start, step, res)
		}
		log.Debug(cfg.Verbose, "%s finished in %s", step.Stage,
			display.FormatDuration(time.Since(stepStart).Milliseconds()))
		stats.Completed = append(stats.Completed, step.Stage)
	}

	if stats.State != StateExtractingHex {
		prev := stats.State
		stats.State = StateFailed
		return finish(&stats, start), fmt.Errorf("pipeline: plan ends in state %v", prev)
	}
	stats.State = stats.State.next()
	logSummary(cfg, log, plan.Artifacts)
	return finish(&stats, start), nil
}

// fail moves the run to Failed and logs the stage's diagnostic.
func fail(cfg *config.Config, log Logger, stats *RunStats, start time.Time, step planner.Step, res toolchain.Result) (RunStats, error) {
	stage := step.Stage
	stats.State = StateFailed
	stats.FailedStage = &stage

	serr := &StageError{Stage: stage, ExitCode: res.ExitCode, Err: res.Err}
	if toolchain.IsNotFound(res.Err) {
		log.Warn("%s not found; check --prefix, --cc and --objcopy", step.Invocation.Name)
	}
	log.Debug(cfg.Verbose, "%s", serr.Detail())
	log.Error("%s", serr.Error())
	return finish(stats, start), serr
}

// finish stamps the elapsed time on the returned copy.
func finish(stats *RunStats, start time.Time) RunStats {
	stats.Elapsed = time.Since(start)
	return *stats
}

// logSummary reports the four artifacts; in verbose mode it adds the size
// of each one found on disk.
func logSummary(cfg *config.Config, log Logger, art planner.Artifacts) {
	log.Success("Compilation and linking successful! Executable: %s", art.Executable)
	log.Success("ARM assembly code generated: %s", art.Assembly)
	log.Success("Binary file generated: %s", art.Binary)
	log.Success("Hex file generated: %s", art.Hex)

	if !cfg.Verbose || cfg.DryRun {
		return
	}
	for _, path := range art.List() {
		if fi, err := os.Stat(path); err == nil {
			log.Debug(true, "  %s: %s", path, display.FormatBytes(fi.Size()))
		}
	}
}
