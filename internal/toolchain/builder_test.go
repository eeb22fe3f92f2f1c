package toolchain

import (
	"strings"
	"testing"

	"github.com/backmassage/firmbuild/internal/config"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain source", "a.c", "a.o"},
		{"header", "util.h", "util.o"},
		{"multiple dots", "my.module.c", "my.module.o"},
		{"no dot", "main", "main.o"},
		{"dotted directory", "src.v2/main", "src.v2/main.o"},
		{"dotted directory with ext", "src.v2/main.c", "src.v2/main.o"},
		{"trailing dot", "odd.", "odd.o"},
		{"assembly source", "startup.s", "startup.o"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ObjectName(tt.in); got != tt.want {
				t.Errorf("ObjectName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestObjectNames_PreservesOrder(t *testing.T) {
	got := ObjectNames([]string{"a.c", "b.c", "a.c"})
	want := []string{"a.o", "b.o", "a.o"}
	assertArgs(t, got, want)
}

func TestCompileArgs(t *testing.T) {
	cfg := config.DefaultConfig()
	inv := CompileArgs(&cfg, []string{"a.c", "b.c"})
	if inv.Name != "arm-none-eabi-gcc" {
		t.Errorf("Name = %q", inv.Name)
	}
	assertArgs(t, inv.Args, []string{"-c", "a.c", "b.c", "-specs=nosys.specs"})
}

func TestLinkArgs(t *testing.T) {
	cfg := config.DefaultConfig()
	inv := LinkArgs(&cfg, "output_program", []string{"a.o", "b.o"})
	assertArgs(t, inv.Args, []string{"-o", "output_program", "a.o", "b.o", "-specs=nosys.specs"})
}

func TestAssemblyArgs_NoSpecsFlag(t *testing.T) {
	cfg := config.DefaultConfig()
	inv := AssemblyArgs(&cfg, "output_program.s", []string{"a.o", "b.o"})
	assertArgs(t, inv.Args, []string{"-S", "-o", "output_program.s", "a.o", "b.o"})
	for _, a := range inv.Args {
		if strings.HasPrefix(a, "-specs=") {
			t.Errorf("assembly command carries %q", a)
		}
	}
}

func TestObjcopyArgs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Objcopy = "llvm-objcopy"

	bin := BinaryArgs(&cfg, "output_program", "output_program.bin")
	if bin.Name != "llvm-objcopy" {
		t.Errorf("Name = %q", bin.Name)
	}
	assertArgs(t, bin.Args, []string{"-O", "binary", "output_program", "output_program.bin"})

	hex := HexArgs(&cfg, "output_program", "output_program.hex")
	assertArgs(t, hex.Args, []string{"-O", "ihex", "output_program", "output_program.hex"})
}

func TestInvocationString(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		want string
	}{
		{
			"plain words",
			Invocation{Name: "arm-none-eabi-gcc", Args: []string{"-c", "a.c", "-specs=nosys.specs"}},
			"arm-none-eabi-gcc -c a.c -specs=nosys.specs",
		},
		{
			"space in filename",
			Invocation{Name: "gcc", Args: []string{"-c", "my file.c"}},
			`gcc -c "my file.c"`,
		},
		{
			"shell metacharacters",
			Invocation{Name: "gcc", Args: []string{"-c", "a.c;rm"}},
			`gcc -c "a.c;rm"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvocationArgv(t *testing.T) {
	inv := Invocation{Name: "objcopy", Args: []string{"-O", "ihex"}}
	assertArgs(t, inv.Argv(), []string{"objcopy", "-O", "ihex"})
	if len(inv.Args) != 2 {
		t.Errorf("Argv mutated Args: %v", inv.Args)
	}
}

func assertArgs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}
