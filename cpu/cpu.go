// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"strconv"
	"unicode/utf8"

	"github.com/ezrec/cieasm/io"
)

// CompareResult is the state of the compare flag.
type CompareResult int

//go:generate go tool stringer -type=CompareResult
const (
	CMP_EQUAL        = CompareResult(0) // ACC == operand
	CMP_ARG1_GREATER = CompareResult(1) // ACC > operand
	CMP_ARG2_GREATER = CompareResult(2) // ACC < operand
)

// Outcome is the control flow result of a step.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_NEXT = Outcome(0) // next
	OUTCOME_JUMP = Outcome(1) // jump
	OUTCOME_HALT = Outcome(2) // halt
)

// Step is the result of executing a single instruction.
type Step struct {
	Outcome  Outcome  // Control flow result.
	Target   string   // Jump target label, for OUTCOME_JUMP.
	Changed  []string // Memory keys written by the step.
	Warnings []error  // Non-fatal advisories.
}

func (step *Step) change(keys ...string) {
	step.Changed = append(step.Changed, keys...)
}

func (step *Step) warn(err error) {
	step.Warnings = append(step.Warnings, err)
}

// Cpu is the machine state of the CIE assembly virtual machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory  Memory        // Memory map, including ACC and IX.
	Compare CompareResult // Result of the last CMP.
	Base    Base          // Display base for OUT.

	Input  io.Input  // Source of IN characters.
	Output io.Output // Sink of OUT values.
}

// NewCpu creates a new CPU with empty memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: Memory{},
	}

	return
}

// Reset clears memory, registers and the compare flag. The display base and
// I/O attachments are kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	if cpu.Memory == nil {
		cpu.Memory = Memory{}
	}
	cpu.Memory.Clear()
	cpu.Compare = CMP_EQUAL
}

// Acc returns the accumulator.
func (cpu *Cpu) Acc() Word {
	return cpu.Memory.Get(REG_ACC)
}

// Ix returns the index register.
func (cpu *Cpu) Ix() Word {
	return cpu.Memory.Get(REG_IX)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", REG_ACC, Format(cpu.Acc(), cpu.Base))
	text += fmt.Sprintf("% 5s: %v\n", REG_IX, Format(cpu.Ix(), cpu.Base))
	text += fmt.Sprintf("% 5s: %v\n", "cmp", cpu.Compare)
	for key := range cpu.Memory.Keys() {
		if key == REG_ACC || key == REG_IX {
			continue
		}
		text += fmt.Sprintf("% 5s: %v\n", key, Format(cpu.Memory.Get(key), cpu.Base))
	}

	return
}

// indexed returns the address offset by IX. With IX of zero the address
// is unchanged.
func (cpu *Cpu) indexed(addr string) string {
	ix := cpu.Ix()
	if ix == 0 {
		return addr
	}
	return addr + "+" + strconv.Itoa(int(ix))
}

// readCharacter blocks on the input until a non-empty value arrives.
func (cpu *Cpu) readCharacter() (code Word, err error) {
	if cpu.Input == nil {
		err = ErrInputMissing
		return
	}

	var text string
	for len(text) == 0 {
		text, err = cpu.Input.ReadCharacter()
		if err != nil {
			return
		}
	}

	r, _ := utf8.DecodeRuneInString(text)
	code = Word(r)

	return
}

// Execute executes a single instruction, and reports the control flow
// result. Memory writes made before an error are kept.
func (cpu *Cpu) Execute(inst Instruction) (step Step, err error) {
	defer func() {
		if err != nil {
			err = &ErrOperand{Opcode: inst.Opcode, Operand: inst.Operand, Err: err}
		}
		if cpu.Verbose {
			for _, warning := range step.Warnings {
				log.Printf("%v: %v", inst, warning)
			}
		}
	}()

	if cpu.Verbose {
		log.Printf("exec: %v", inst)
	}

	if cpu.Memory == nil {
		cpu.Memory = Memory{}
	}
	mem := cpu.Memory
	operand := inst.Operand

	ot, err := DeduceOperandType(inst)
	if err != nil {
		return
	}

	var number Word
	switch ot {
	case INVALID_OPERAND:
		err = ErrOperandInvalid
		return
	case NO_OPERAND:
		if len(operand) != 0 {
			step.warn(ErrOperandIgnored)
		}
	case NUMBER_BASE2, NUMBER_BASE10, NUMBER_BASE16:
		var ok bool
		number, ok = parseNumber(operand, ot)
		if !ok {
			step.warn(ErrNumberMalformed)
		}
	}

	// value is the ACC-relative operand: a memory location or a number.
	value := func() Word {
		if ot == MEMORY_LOCATION {
			return mem.Get(operand)
		}
		return number
	}

	acc := mem.Get(REG_ACC)

	switch inst.Opcode {
	// Data movement
	case LDM:
		step.change(REG_ACC)
		mem.Set(REG_ACC, number)
	case LDD:
		step.change(REG_ACC)
		mem.Set(REG_ACC, mem.Get(operand))
	case LDI, STI:
		step.warn(ErrIndirect)
	case LDX:
		step.change(REG_ACC)
		mem.Set(REG_ACC, mem.Get(cpu.indexed(operand)))
	case LDR:
		step.change(REG_IX)
		mem.Set(REG_IX, number)
	case STO:
		step.change(operand)
		mem.Set(operand, acc)
	case STX:
		addr := cpu.indexed(operand)
		step.change(addr)
		mem.Set(addr, acc)

	// Arithmetic
	case ADD:
		step.change(REG_ACC)
		mem.Set(REG_ACC, acc+value())
	case INC:
		step.change(operand)
		mem.Set(operand, mem.Get(operand)+1)
	case DEC:
		step.change(operand)
		mem.Set(operand, mem.Get(operand)-1)

	// Compare and jump
	case JMP:
		step.Outcome = OUTCOME_JUMP
		step.Target = operand
	case CMP:
		arg2 := value()
		switch {
		case acc > arg2:
			cpu.Compare = CMP_ARG1_GREATER
		case acc == arg2:
			cpu.Compare = CMP_EQUAL
		default:
			cpu.Compare = CMP_ARG2_GREATER
		}
	case JPE:
		if cpu.Compare == CMP_EQUAL {
			step.Outcome = OUTCOME_JUMP
			step.Target = operand
		}
	case JPN:
		if cpu.Compare != CMP_EQUAL {
			step.Outcome = OUTCOME_JUMP
			step.Target = operand
		}

	// Input and output
	case IN:
		var code Word
		code, err = cpu.readCharacter()
		if err != nil {
			return
		}
		step.change(REG_ACC)
		mem.Set(REG_ACC, code)
	case OUT:
		if cpu.Output == nil {
			err = ErrOutputMissing
			return
		}
		err = cpu.Output.Emit(Format(acc, cpu.Base))
		if err != nil {
			return
		}

	// Bitwise
	case AND:
		step.change(REG_ACC)
		mem.Set(REG_ACC, acc&value())
	case XOR:
		step.change(REG_ACC)
		mem.Set(REG_ACC, acc^value())
	case OR:
		step.change(REG_ACC)
		mem.Set(REG_ACC, acc|value())
	case LSL, LSR:
		shift := number
		if shift < 0 {
			step.warn(ErrShiftNegative)
			shift = 0
		}
		step.change(REG_ACC)
		if inst.Opcode == LSL {
			mem.Set(REG_ACC, acc<<uint8(shift))
		} else {
			mem.Set(REG_ACC, acc>>uint8(shift))
		}

	case END:
		step.Outcome = OUTCOME_HALT
	default:
		err = ErrOpcodeUnsupported
		return
	}

	return
}
