package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/firmbuild/internal/config"
)

// newRootCmd wires the config flags onto a cobra command. When the command
// runs, body produces the exit code stored in *code.
func newRootCmd(cfg *config.Config, body func() int, code *int) *cobra.Command {
	var binding *config.Binding

	cmd := &cobra.Command{
		Use:   "firmbuild [OPTIONS] [file ...]",
		Short: "Compile, link and convert C sources with an embedded cross-toolchain",
		Long: `firmbuild runs five toolchain steps in order and stops at the first failure:

  <cc> -c <file>... -specs=nosys.specs
  <cc> -o output_program <obj>... -specs=nosys.specs
  <cc> -S -o output_program.s <obj>...
  <objcopy> -O binary output_program output_program.bin
  <objcopy> -O ihex output_program output_program.hex

Files are taken from the arguments, or read from stdin until the token END.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			binding.Finish(args)
			if binding.ShowVersion() {
				fmt.Fprintf(cmd.OutOrStdout(), "firmbuild v%s (%s)\n", version, commit)
				return nil
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			*code = body()
			return nil
		},
	}

	binding = config.BindFlags(cmd.Flags(), cfg)
	return cmd
}
