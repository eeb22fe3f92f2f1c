package toolchain

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/firmbuild/internal/config"
)

// Invocation is a single external-process call: program name plus ordered
// arguments.
type Invocation struct {
	Name string
	Args []string
}

// Argv returns the full argument vector including the program name.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Name}, inv.Args...)
}

// String renders the command line for progress messages. Words containing
// whitespace, quotes, or shell metacharacters are Go-quoted so the printed
// line is unambiguous; the process itself never sees the quoting.
func (inv Invocation) String() string {
	argv := inv.Argv()
	words := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\;&|<>()*?[]{}!#~") {
			words[i] = strconv.Quote(a)
		} else {
			words[i] = a
		}
	}
	return strings.Join(words, " ")
}

// ObjectName derives the object file produced for a compiled input by
// replacing the extension after the final "." of the base name with ".o".
// A base name without a dot keeps the whole name: "main" becomes "main.o".
func ObjectName(file string) string {
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + ".o"
}

// ObjectNames maps ObjectName over files, preserving order and duplicates.
func ObjectNames(files []string) []string {
	objs := make([]string, len(files))
	for i, f := range files {
		objs[i] = ObjectName(f)
	}
	return objs
}

// CompileArgs builds "<cc> -c <file>... -specs=<specs>".
func CompileArgs(cfg *config.Config, files []string) Invocation {
	args := make([]string, 0, len(files)+2)
	args = append(args, "-c")
	args = append(args, files...)
	args = append(args, cfg.SpecsFlag())
	return Invocation{Name: cfg.Compiler(), Args: args}
}

// LinkArgs builds "<cc> -o <exe> <obj>... -specs=<specs>".
func LinkArgs(cfg *config.Config, exe string, objects []string) Invocation {
	args := make([]string, 0, len(objects)+3)
	args = append(args, "-o", exe)
	args = append(args, objects...)
	args = append(args, cfg.SpecsFlag())
	return Invocation{Name: cfg.Compiler(), Args: args}
}

// AssemblyArgs builds "<cc> -S -o <asm> <obj>...". It is fed object files
// and carries no specs flag, matching the established command sequence.
func AssemblyArgs(cfg *config.Config, asm string, objects []string) Invocation {
	args := make([]string, 0, len(objects)+3)
	args = append(args, "-S", "-o", asm)
	args = append(args, objects...)
	return Invocation{Name: cfg.Compiler(), Args: args}
}

// BinaryArgs builds "<objcopy> -O binary <exe> <bin>".
func BinaryArgs(cfg *config.Config, exe, bin string) Invocation {
	return Invocation{Name: cfg.ObjcopyTool(), Args: []string{"-O", "binary", exe, bin}}
}

// HexArgs builds "<objcopy> -O ihex <exe> <hex>".
func HexArgs(cfg *config.Config, exe, hex string) Invocation {
	return Invocation{Name: cfg.ObjcopyTool(), Args: []string{"-O", "ihex", exe, hex}}
}
