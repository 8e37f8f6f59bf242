package cpu

import (
	"iter"
)

// Instruction is a single parsed line of CIE assembly.
type Instruction struct {
	LineNo  int    // Source line, 1-based.
	Label   string // Computed label: 'LABEL' or 'LABEL+offset'.
	Opcode  Opcode // Instruction mnemonic.
	Operand string // Raw operand text, or empty.
}

func (inst Instruction) String() string {
	text := inst.Label + " - " + inst.Opcode.String()
	if len(inst.Operand) != 0 {
		text += ":" + inst.Operand
	}
	return text
}

// Program is an ordered list of instructions. Order is execution order.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// FindOffsetByLabel returns the index of the first instruction whose
// computed label matches exactly.
func (prog *Program) FindOffsetByLabel(label string) (offset int, ok bool) {
	for n, inst := range prog.All() {
		if inst.Label == label {
			return n, true
		}
	}

	return -1, false
}

// All iterates over the instructions with their offsets.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(offset int, inst Instruction) bool) {
		if prog == nil {
			return
		}
		for n, inst := range prog.Instructions {
			if !yield(n, inst) {
				return
			}
		}
	}
}
