package config

// This file binds CLI flags onto a pflag.FlagSet owned by the cobra root
// command. Flags are grouped into toolchain, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless set.

import (
	"github.com/spf13/pflag"
)

// Binding ties a FlagSet to the Config it populates. Call [Binding.Finish]
// with the positional args once the FlagSet has been parsed.
type Binding struct {
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default or short-circuit the run (showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
}

// BindFlags registers every firmbuild flag on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Binding {
	b := &Binding{cfg: cfg}

	defineToolchainFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &b.negated)
	defineUtilityFlags(fs, &b.negated)

	fs.SortFlags = false
	return b
}

// defineToolchainFlags registers --prefix, --cc, --objcopy.
func defineToolchainFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Toolchain prefix prepended to gcc and objcopy")
	fs.StringVar(&cfg.CC, "cc", cfg.CC, "Compiler executable (default: <prefix>gcc)")
	fs.StringVar(&cfg.Objcopy, "objcopy", cfg.Objcopy, "Object-copy executable (default: <prefix>objcopy)")
}

// defineBehaviorFlags registers --dry-run and --no-preflight.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Print commands without running them")
	fs.BoolVar(&cfg.NoPreflight, "no-preflight", false, "Do not look up the toolchain on PATH before running")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run toolchain diagnostics and exit")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// defineUtilityFlags registers --version. Help is provided by cobra.
func defineUtilityFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
}

// Finish applies negated flags and takes the positional args as the input
// file list, verbatim and in order.
func (b *Binding) Finish(args []string) {
	if b.negated.noColor {
		b.cfg.ColorMode = ColorNever
	} else if b.negated.forceColor {
		b.cfg.ColorMode = ColorAlways
	}
	if len(args) > 0 {
		b.cfg.Files = append([]string(nil), args...)
	}
}

// ShowVersion reports whether --version was passed.
func (b *Binding) ShowVersion() bool {
	return b.negated.showVersion
}
