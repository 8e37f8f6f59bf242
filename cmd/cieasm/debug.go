package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/cieasm/emulator"
	"github.com/ezrec/cieasm/host"
)

func newDebugCmd(opts *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "debug file.cie",
		Short: f("Debug a program interactively"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := emulator.NewEmulator()
			emu.Verbose = opts.verbose

			h := host.New(emu)
			h.Verbose = opts.verbose

			err = h.LoadFile(args[0])
			if err != nil {
				return
			}

			err = applyOptions(opts, emu)
			if err != nil {
				return
			}

			in := cmd.InOrStdin()
			h.RunCommands(in, cmd.OutOrStdout(), in == os.Stdin)

			return
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.preset, "preset", "p", "", f("Starlark memory preset"))
	flags.StringVarP(&opts.base, "base", "b", "", f("Display base: bin, dec, hex or ascii"))

	return
}
