// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation. Output names and the runtime specs are fixed for a run and are
// not exposed as flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the flag binding before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Toolchain.
	Prefix  string // Default: "arm-none-eabi-".
	CC      string // Overrides Prefix+"gcc" when set.
	Objcopy string // Overrides Prefix+"objcopy" when set.
	Specs   string // Fixed: "nosys.specs".

	// Outputs.
	OutputBase string // Fixed: "output_program".

	// Input. Files come from positional args; when empty, they are read
	// interactively until Sentinel.
	Files    []string
	Sentinel string // Fixed: "END".

	// Behavior flags.
	DryRun      bool
	NoPreflight bool // Skip the PATH lookup before running.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with every default and fixed value set.
func DefaultConfig() Config {
	return Config{
		Prefix:     "arm-none-eabi-",
		Specs:      "nosys.specs",
		OutputBase: "output_program",
		Sentinel:   "END",
		ColorMode:  ColorAuto,
	}
}

// Compiler returns the cross-compiler executable name.
func (c *Config) Compiler() string {
	if c.CC != "" {
		return c.CC
	}
	return c.Prefix + "gcc"
}

// ObjcopyTool returns the object-copy executable name.
func (c *Config) ObjcopyTool() string {
	if c.Objcopy != "" {
		return c.Objcopy
	}
	return c.Prefix + "objcopy"
}

// SpecsFlag returns the compiler flag selecting the runtime specs file.
func (c *Config) SpecsFlag() string {
	return "-specs=" + c.Specs
}

// Validate checks that the toolchain resolves to usable names, the color
// mode is known, and no positional filename is blank.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if strings.TrimSpace(c.Compiler()) == "" {
		return errors.New("compiler name must not be empty (set --prefix or --cc)")
	}
	if strings.TrimSpace(c.ObjcopyTool()) == "" {
		return errors.New("objcopy name must not be empty (set --prefix or --objcopy)")
	}
	if c.Specs == "" || c.OutputBase == "" || c.Sentinel == "" {
		return errors.New("specs, output base and sentinel must be set")
	}

	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("file argument %d is empty", i+1)
		}
	}
	return nil
}
