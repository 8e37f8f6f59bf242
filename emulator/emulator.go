// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/cieasm/cpu"
	cieio "github.com/ezrec/cieasm/io"
)

// IP_ABORTED is the instruction pointer after a fatal execution error.
const IP_ABORTED = -1

// State is the run state of the emulator.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_READY    = State(0) // ready
	STATE_RUNNING  = State(1) // running
	STATE_HALTED   = State(2) // halted
	STATE_FINISHED = State(3) // finished
	STATE_ABORTED  = State(4) // aborted
)

// Emulator state. CPU + program + IO tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Ip     int        // Offset of the next instruction.
	Cycles int        // Instructions executed since the last stop.
	Tape   cieio.Tape // Terminal IO.

	History History  // Changed memory after each step.
	Last    cpu.Step // Result of the last successful step.

	halted bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Input = &emu.Tape
	emu.Cpu.Output = &emu.Tape

	return
}

// Load parses source text and replaces the program. On error the current
// program is kept. Machine state is not reset.
func (emu *Emulator) Load(source io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	prog, err := asm.Parse(source)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// LoadString is Load from a string.
func (emu *Emulator) LoadString(source string) (err error) {
	return emu.Load(strings.NewReader(source))
}

// Stop clears memory, registers and the compare flag, and rewinds to the
// first instruction. The program and display base are kept.
func (emu *Emulator) Stop() {
	if emu.Verbose {
		log.Printf("emulator: stop")
	}

	emu.Cpu.Reset()
	emu.Ip = 0
	emu.Cycles = 0
	emu.halted = false
	emu.Last = cpu.Step{}
	emu.History.Reset()
}

// State returns the run state.
func (emu *Emulator) State() State {
	switch {
	case emu.Ip == IP_ABORTED:
		return STATE_ABORTED
	case emu.halted:
		return STATE_HALTED
	case emu.Ip >= emu.Program.Len():
		return STATE_FINISHED
	case emu.Cycles == 0:
		return STATE_READY
	default:
		return STATE_RUNNING
	}
}

// Done returns true if no more instructions will execute until a stop.
func (emu *Emulator) Done() bool {
	switch emu.State() {
	case STATE_READY, STATE_RUNNING:
		return false
	default:
		return true
	}
}

// Code returns the next instruction to execute.
func (emu *Emulator) Code() (inst cpu.Instruction, ok bool) {
	if emu.Done() {
		return
	}

	return emu.Program.Instructions[emu.Ip], true
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	inst, ok := emu.Code()
	if !ok {
		return 0
	}

	return inst.LineNo
}

// SetMemory writes a memory location outside of program execution.
func (emu *Emulator) SetMemory(addr string, value cpu.Word) {
	if emu.Verbose {
		log.Printf("emulator: set %v = %v", addr, cpu.Format(value, emu.Cpu.Base))
	}

	emu.Cpu.Memory.Set(addr, value)
	emu.History.Record(SNAPSHOT_MEMSET, emu.Cpu.Memory, addr)
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	switch emu.State() {
	case STATE_ABORTED:
		done = true
		err = ErrAborted
		return
	case STATE_HALTED, STATE_FINISHED:
		done = true
		return
	}

	inst := emu.Program.Instructions[emu.Ip]

	defer func() {
		if err != nil {
			emu.Ip = IP_ABORTED
			err = &ErrRuntime{LineNo: inst.LineNo, Label: inst.Label, Err: err}
		}
		done = emu.Done()
	}()

	step, err := emu.Cpu.Execute(inst)
	if err != nil {
		return
	}

	emu.Cycles++
	emu.Last = step
	if len(step.Changed) != 0 {
		emu.History.Record(inst.Label, emu.Cpu.Memory, step.Changed...)
	}

	switch step.Outcome {
	case cpu.OUTCOME_JUMP:
		ip, ok := emu.Program.FindOffsetByLabel(step.Target)
		if !ok {
			err = cpu.ErrLabelMissing(step.Target)
			return
		}
		emu.Ip = ip
	case cpu.OUTCOME_HALT:
		emu.halted = true
	default:
		emu.Ip++
	}

	return
}

// Run ticks until the program halts, runs off the end, or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
