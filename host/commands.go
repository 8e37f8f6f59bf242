package host

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/cieasm/cpu"
)

// newCommands builds the command tree for one command line.
func (h *Host) newCommands() (root *cobra.Command) {
	root = &cobra.Command{
		Use:           "cie",
		Short:         f("CIE assembly debugger"),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(h.output)
	root.SetErr(h.output)

	root.AddCommand(
		&cobra.Command{
			Use:     "step [count]",
			Aliases: []string{"s"},
			Short:   f("Execute the next instructions"),
			Args:    cobra.MaximumNArgs(1),
			RunE:    h.cmdStep,
		},
		&cobra.Command{
			Use:     "run",
			Aliases: []string{"r"},
			Short:   f("Execute until the program halts"),
			Args:    cobra.NoArgs,
			RunE:    h.cmdRun,
		},
		&cobra.Command{
			Use:   "stop",
			Short: f("Clear memory and rewind the program"),
			Args:  cobra.NoArgs,
			RunE:  h.cmdStop,
		},
		&cobra.Command{
			Use:   "set address value",
			Short: f("Write a memory location"),
			Args:  cobra.ExactArgs(2),
			RunE:  h.cmdSet,
		},
		&cobra.Command{
			Use:   "base bin|dec|hex|ascii",
			Short: f("Select the display base"),
			Args:  cobra.ExactArgs(1),
			RunE:  h.cmdBase,
		},
		&cobra.Command{
			Use:   "load file",
			Short: f("Load a program"),
			Args:  cobra.ExactArgs(1),
			RunE:  h.cmdLoad,
		},
		&cobra.Command{
			Use:   "labels",
			Short: f("List the program labels"),
			Args:  cobra.NoArgs,
			RunE:  h.cmdLabels,
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"l"},
			Short:   f("List the program"),
			Args:    cobra.NoArgs,
			RunE:    h.cmdList,
		},
		&cobra.Command{
			Use:     "mem",
			Aliases: []string{"m"},
			Short:   f("Show the registers and memory"),
			Args:    cobra.NoArgs,
			RunE:    h.cmdMemory,
		},
		&cobra.Command{
			Use:   "trace",
			Short: f("Show the memory history since the last stop"),
			Args:  cobra.NoArgs,
			RunE:  h.cmdTrace,
		},
		&cobra.Command{
			Use:     "next",
			Aliases: []string{"n"},
			Short:   f("Show the next instruction"),
			Args:    cobra.NoArgs,
			RunE:    h.cmdNext,
		},
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"q", "exit"},
			Short:   f("Leave the debugger"),
			Args:    cobra.NoArgs,
			RunE:    h.cmdQuit,
		},
	)

	return
}

func (h *Host) cmdStep(c *cobra.Command, args []string) (err error) {
	count := 1
	if len(args) == 1 {
		count, err = strconv.Atoi(args[0])
		if err != nil || count < 1 {
			err = ErrCount(args[0])
			return
		}
	}

	for range count {
		inst, ok := h.emu.Code()

		var done bool
		done, err = h.emu.Tick()
		if err != nil {
			return
		}
		if ok {
			h.displayStep(inst)
		}
		if done {
			break
		}
	}

	h.displayNext()

	return
}

func (h *Host) cmdRun(c *cobra.Command, args []string) (err error) {
	err = h.emu.Run()
	if err != nil {
		return
	}

	h.displayNext()

	return
}

func (h *Host) cmdStop(c *cobra.Command, args []string) (err error) {
	h.emu.Stop()
	h.displayNext()

	return
}

func (h *Host) cmdSet(c *cobra.Command, args []string) (err error) {
	literal := args[1]
	if !strings.HasPrefix(literal, "#") {
		literal = "#" + literal
	}

	value, err := cpu.ParseLiteral(literal)
	if err != nil {
		return
	}

	h.emu.SetMemory(args[0], value)

	return
}

func (h *Host) cmdBase(c *cobra.Command, args []string) (err error) {
	base, err := cpu.ParseBase(args[0])
	if err != nil {
		return
	}

	h.emu.Cpu.Base = base

	return
}

func (h *Host) cmdLoad(c *cobra.Command, args []string) (err error) {
	err = h.LoadFile(args[0])
	if err != nil {
		return
	}

	h.displayNext()

	return
}

func (h *Host) cmdLabels(c *cobra.Command, args []string) (err error) {
	labels, err := cpu.Labels(strings.NewReader(h.source))
	if err != nil {
		return
	}

	for _, label := range labels {
		h.println(label)
	}

	return
}

func (h *Host) cmdList(c *cobra.Command, args []string) (err error) {
	if h.emu.Program.Len() == 0 {
		err = ErrNoProgram
		return
	}

	for n, inst := range h.emu.Program.All() {
		marker := "  "
		if n == h.emu.Ip {
			marker = "=>"
		}
		h.printf("%s%4d  %v\n", marker, inst.LineNo, inst)
	}

	return
}

func (h *Host) cmdMemory(c *cobra.Command, args []string) (err error) {
	err = h.emu.RenderMemory(h.output)
	h.flush()

	return
}

func (h *Host) cmdTrace(c *cobra.Command, args []string) (err error) {
	err = h.emu.History.Render(h.output, h.emu.Cpu.Base)
	h.flush()

	return
}

func (h *Host) cmdNext(c *cobra.Command, args []string) (err error) {
	h.displayNext()

	return
}

func (h *Host) cmdQuit(c *cobra.Command, args []string) (err error) {
	h.quit = true

	return
}
