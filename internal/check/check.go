// Package check provides toolchain diagnostics (--check mode) and the
// pre-pipeline lookup (CheckDeps) of the compiler and object-copy utility.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/firmbuild/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrCompilerNotFound = errors.New("compiler not found on PATH")
	ErrObjcopyNotFound  = errors.New("objcopy not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// smokeSource is compiled by RunCheck to prove the specs file resolves.
const smokeSource = "int main(void) { return 0; }\n"

// RunCheck prints each tool's version and test-compiles a trivial
// translation unit with the runtime specs flag. It returns false if any
// check failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Toolchain Check ===")

	ok := checkVersion(log, cfg.Compiler())
	ok = checkVersion(log, cfg.ObjcopyTool()) && ok
	if ok {
		ok = checkSpecs(cfg, log)
	}
	return ok
}

// checkVersion verifies name is on PATH and logs the first line of its
// --version output.
func checkVersion(log Logger, name string) bool {
	if _, err := lookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, "--version").Output()
	if err != nil {
		log.Warn("%s found but --version failed: %v", name, err)
		return false
	}
	log.Success("%s: %s", name, firstLine(string(out)))
	return true
}

// checkSpecs compiles smokeSource from stdin to the null device with the
// specs flag.
func checkSpecs(cfg *config.Config, log Logger) bool {
	log.Info("Testing %s with %s...", cfg.Compiler(), cfg.SpecsFlag())
	cmd := exec.Command(cfg.Compiler(), "-x", "c", "-c", "-o", os.DevNull, "-", cfg.SpecsFlag())
	cmd.Stdin = strings.NewReader(smokeSource)
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Test compile failed: %v", err)
		if s := strings.TrimSpace(string(out)); s != "" {
			log.Error("  %s", firstLine(s))
		}
		return false
	}
	log.Success("Test compile works")
	return true
}

// CheckDeps is the pre-pipeline validation: it verifies that the compiler
// and objcopy resolve on PATH. Nothing is executed.
func CheckDeps(cfg *config.Config) error {
	if _, err := lookPath(cfg.Compiler()); err != nil {
		return fmt.Errorf("%w: %s", ErrCompilerNotFound, cfg.Compiler())
	}
	if _, err := lookPath(cfg.ObjcopyTool()); err != nil {
		return fmt.Errorf("%w: %s", ErrObjcopyNotFound, cfg.ObjcopyTool())
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
