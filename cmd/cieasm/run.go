package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func newRunCmd(opts *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "run file.cie",
		Short: f("Run a program to completion"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.preset, "preset", "p", "", f("Starlark memory preset"))
	flags.StringVarP(&opts.base, "base", "b", "", f("Display base: bin, dec, hex or ascii"))
	flags.StringVarP(&opts.input, "input", "i", "-", f("Program input"))
	flags.StringVarP(&opts.output, "output", "o", "-", f("Program output"))
	flags.BoolVarP(&opts.trace, "trace", "t", false, f("Show the memory trace after the run"))

	return
}

func runProgram(cmd *cobra.Command, opts *options, filename string) (err error) {
	emu, err := newEmulator(opts, filename)
	if err != nil {
		return
	}

	if opts.input == "-" {
		emu.Tape.Input = cmd.InOrStdin()
		if cmd.InOrStdin() == os.Stdin {
			emu.Tape.Prompt = cmd.ErrOrStderr()
		}
	} else {
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		atexit.Register(func() { inf.Close() })
		emu.Tape.Input = inf
	}

	if opts.output == "-" {
		emu.Tape.Output = cmd.OutOrStdout()
	} else {
		var ouf *os.File
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		atexit.Register(func() { ouf.Close() })
		emu.Tape.Output = ouf
	}

	runErr := emu.Run()

	if opts.trace {
		err = emu.History.Render(cmd.OutOrStdout(), emu.Cpu.Base)
	}

	return errors.Join(runErr, err)
}
