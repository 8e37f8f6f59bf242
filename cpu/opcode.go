// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Opcode is a CIE assembly instruction mnemonic.
type Opcode int

//go:generate go tool stringer -type=Opcode
const (
	// Data movement
	LDM = Opcode(0) // Immediate: load the number n to ACC.
	LDD = Opcode(1) // Direct: load the contents of address to ACC.
	LDI = Opcode(2) // Indirect load (not implemented, no-op).
	LDX = Opcode(3) // Indexed: load the contents of address+IX to ACC.
	LDR = Opcode(4) // Immediate: load the number n to IX.
	STO = Opcode(5) // Store ACC at address.
	STX = Opcode(6) // Indexed: store ACC at address+IX.
	STI = Opcode(7) // Indirect store (not implemented, no-op).

	// Arithmetic
	ADD = Opcode(8)  // Add the contents of address, or n, to ACC.
	INC = Opcode(9)  // Add 1 to ACC or IX.
	DEC = Opcode(10) // Subtract 1 from ACC or IX.

	// Compare and jump
	JMP = Opcode(11) // Jump to label.
	CMP = Opcode(12) // Compare ACC with the contents of address, or n.
	JPE = Opcode(13) // Jump to label if the last compare was equal.
	JPN = Opcode(14) // Jump to label if the last compare was not equal.

	// Input and output
	IN  = Opcode(15) // Key in a character, store its code in ACC.
	OUT = Opcode(16) // Output ACC in the active display base.

	// Bitwise
	AND = Opcode(17) // ACC &= operand.
	XOR = Opcode(18) // ACC ^= operand.
	OR  = Opcode(19) // ACC |= operand.
	LSL = Opcode(20) // ACC <<= n.
	LSR = Opcode(21) // ACC >>= n.

	END = Opcode(22) // Return control to the operating system.
)

// opcodeMap maps mnemonics to opcodes. Matching is case sensitive.
var opcodeMap = map[string]Opcode{
	"LDM": LDM,
	"LDD": LDD,
	"LDI": LDI,
	"LDX": LDX,
	"LDR": LDR,
	"STO": STO,
	"STX": STX,
	"STI": STI,
	"ADD": ADD,
	"INC": INC,
	"DEC": DEC,
	"JMP": JMP,
	"CMP": CMP,
	"JPE": JPE,
	"JPN": JPN,
	"IN":  IN,
	"OUT": OUT,
	"AND": AND,
	"XOR": XOR,
	"OR":  OR,
	"LSL": LSL,
	"LSR": LSR,
	"END": END,
}

// OpcodeOf returns the opcode for a mnemonic.
func OpcodeOf(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}
