// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command cieasm runs and debugs CIE assembly programs.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/emulator"
	"github.com/ezrec/cieasm/preset"
	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

type options struct {
	verbose  bool
	language string
	preset   string
	base     string
	input    string
	output   string
	trace    bool
}

func newRootCmd() (root *cobra.Command) {
	opts := &options{}

	root = &cobra.Command{
		Use:   "cieasm",
		Short: f("CIE assembly interpreter"),
		Long: f(`Cieasm assembles and executes CIE assembly language programs, the
accumulator machine used in the Cambridge International A Level syllabus.`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(opts.language) != 0 {
				translate.SetLanguage(opts.language)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, f("Verbose mode"))
	root.PersistentFlags().StringVar(&opts.language, "lang", "", f("Message language"))

	root.AddCommand(
		newRunCmd(opts),
		newLabelsCmd(opts),
		newDebugCmd(opts),
	)

	return
}

// newEmulator creates an emulator with the program and preset loaded.
func newEmulator(opts *options, filename string) (emu *emulator.Emulator, err error) {
	emu = emulator.NewEmulator()
	emu.Verbose = opts.verbose

	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	err = emu.Load(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
		return
	}

	err = applyOptions(opts, emu)

	return
}

// applyOptions seeds the emulator from the preset and base options.
func applyOptions(opts *options, emu *emulator.Emulator) (err error) {
	if len(opts.preset) != 0 {
		var pre *preset.Preset
		pre, err = preset.Load(opts.preset, nil)
		if err != nil {
			return
		}
		pre.Apply(emu)
	}

	if len(opts.base) != 0 {
		var base cpu.Base
		base, err = cpu.ParseBase(opts.base)
		if err != nil {
			return
		}
		emu.Cpu.Base = base
	}

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	err := newRootCmd().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
