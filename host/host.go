// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package host is an interactive debugger for CIE assembly programs.
//
// The host reads commands from a line oriented stream, and drives an
// emulator. Program input for IN is read from the same stream, and program
// output from OUT is written to the command output.
package host

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/emulator"
	cieio "github.com/ezrec/cieasm/io"
)

// Host is a debugger session around an emulator.
type Host struct {
	Verbose bool // If set, enables verbose logging.

	emu         *emulator.Emulator
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool

	filename string // Name of the loaded program.
	source   string // Text of the loaded program.
	lastArgs []string
	quit     bool
}

var _ cieio.Input = (*Host)(nil)
var _ cieio.Output = (*Host)(nil)

// New creates a host around an emulator. The emulator's CPU input and
// output are attached to the host.
func New(emu *emulator.Emulator) (h *Host) {
	h = &Host{
		emu:    emu,
		input:  bufio.NewScanner(strings.NewReader("")),
		output: bufio.NewWriter(io.Discard),
	}

	emu.Cpu.Input = h
	emu.Cpu.Output = h

	return
}

// Emulator returns the emulator driven by the host.
func (h *Host) Emulator() *emulator.Emulator {
	return h.emu
}

// LoadFile loads a program from a file.
func (h *Host) LoadFile(filename string) (err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	return h.LoadSource(filename, string(data))
}

// LoadSource loads a program from text, and stops the emulator.
func (h *Host) LoadSource(filename string, source string) (err error) {
	err = h.emu.LoadString(source)
	if err != nil {
		return
	}

	h.filename = filename
	h.source = source
	h.emu.Stop()

	if h.Verbose {
		log.Printf("host: loaded %v, %d instructions", filename, h.emu.Program.Len())
	}

	return
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	h.quit = false

	defer h.flush()

	h.displayNext()

	for !h.quit {
		h.prompt("* ")

		line, err := h.getLine()
		if err != nil {
			break
		}

		h.processCommand(line)
	}
}

// processCommand runs a single command line. An empty line repeats the
// previous command.
func (h *Host) processCommand(line string) {
	args := strings.Fields(line)
	if len(args) == 0 {
		args = h.lastArgs
	}
	if len(args) == 0 {
		return
	}
	h.lastArgs = args

	if h.Verbose {
		log.Printf("host: %v", args)
	}

	root := h.newCommands()
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		h.printf("%v\n", f("ERROR: %v", err))
	}
}

// ReadCharacter reads program input from the command stream.
func (h *Host) ReadCharacter() (text string, err error) {
	h.prompt(f("Input: "))

	text, err = h.getLine()
	if err != nil {
		err = cieio.ErrInputClosed
	}

	return
}

// Emit writes program output.
func (h *Host) Emit(text string) (err error) {
	h.println(text)
	return
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt(text string) {
	if !h.interactive {
		return
	}

	h.printf("%s", text)
}

// displayNext shows the next instruction, or the run state when there is
// none.
func (h *Host) displayNext() {
	inst, ok := h.emu.Code()
	if !ok {
		h.println(f("state: %v", h.emu.State()))
		return
	}

	h.printf("%4d  %v\n", inst.LineNo, inst)
}

// displayStep shows an executed instruction and its effects.
func (h *Host) displayStep(inst cpu.Instruction) {
	text := fmt.Sprintf("%4d  %v", inst.LineNo, inst)

	step := h.emu.Last
	base := h.emu.Cpu.Base
	for _, key := range step.Changed {
		text += fmt.Sprintf("  %v=%v", key, cpu.Format(h.emu.Cpu.Memory.Get(key), base))
	}
	h.println(text)

	for _, warning := range step.Warnings {
		h.println(f("warning: %v", warning))
	}
}
