package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)
	var out bytes.Buffer
	r := &ExecRunner{Stdout: &out, Stderr: &out}
	res := r.Run(context.Background(), Invocation{Name: "sh", Args: []string{"-c", "echo linked"}})
	if !res.Success() {
		t.Fatalf("Run: %+v", res)
	}
	if !strings.Contains(out.String(), "linked") {
		t.Errorf("stdout not passed through: %q", out.String())
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)
	r := &ExecRunner{}
	res := r.Run(context.Background(), Invocation{Name: "sh", Args: []string{"-c", "exit 3"}})
	if res.Success() {
		t.Fatal("Success() = true for exit 3")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestExecRunner_MissingTool(t *testing.T) {
	r := &ExecRunner{}
	res := r.Run(context.Background(), Invocation{Name: "firmbuild-no-such-tool-xyz"})
	if res.Success() {
		t.Fatal("Success() = true for missing tool")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
	if !IsNotFound(res.Err) {
		t.Errorf("IsNotFound(%v) = false", res.Err)
	}
}

func TestExecRunner_ArgsNotShellInterpreted(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	canary := filepath.Join(dir, "canary")
	var out bytes.Buffer
	r := &ExecRunner{Dir: dir, Stdout: &out}
	// $1 is echoed verbatim; the embedded command must not run.
	arg := "a.c; touch " + canary
	res := r.Run(context.Background(), Invocation{Name: "sh", Args: []string{"-c", `printf '%s' "$1"`, "sh", arg}})
	if !res.Success() {
		t.Fatalf("Run: %+v", res)
	}
	if out.String() != arg {
		t.Errorf("argument = %q, want %q", out.String(), arg)
	}
	if _, err := os.Stat(canary); err == nil {
		t.Error("shell metacharacters in an argument were executed")
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) != 0")
	}
	if ExitCode(os.ErrNotExist) != -1 {
		t.Error("ExitCode(non-exit error) != -1")
	}
}
