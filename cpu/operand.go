package cpu

import (
	"strconv"
	"strings"
)

// OperandType is the addressing mode of an instruction operand.
type OperandType int

//go:generate go tool stringer -type=OperandType
const (
	NUMBER_BASE10   = OperandType(0) // '#n'
	NUMBER_BASE16   = OperandType(1) // '#&n'
	NUMBER_BASE2    = OperandType(2) // '#bn' or '#Bn'
	LABEL           = OperandType(3) // Jump target.
	MEMORY_LOCATION = OperandType(4) // Symbolic address or register.
	NO_OPERAND      = OperandType(5)
	INVALID_OPERAND = OperandType(6)
)

// Numeric returns true if the operand is an immediate number.
func (ot OperandType) Numeric() bool {
	return ot == NUMBER_BASE10 || ot == NUMBER_BASE16 || ot == NUMBER_BASE2
}

// numberBase is the radix and prefix length of each numeric operand type.
var numberBase = map[OperandType](struct {
	radix  int
	prefix int
}){
	NUMBER_BASE10: {10, 1},
	NUMBER_BASE16: {16, 2},
	NUMBER_BASE2:  {2, 2},
}

// DetectNumberType returns the numeric operand type from the literal prefix.
func DetectNumberType(operand string) OperandType {
	switch {
	case strings.HasPrefix(strings.ToLower(operand), "#b"):
		return NUMBER_BASE2
	case strings.HasPrefix(operand, "#&"):
		return NUMBER_BASE16
	case strings.HasPrefix(operand, "#"):
		return NUMBER_BASE10
	default:
		return INVALID_OPERAND
	}
}

// DeduceOperandType determines the addressing mode of an instruction's
// operand from its opcode family. A non-nil error means the operand form is
// wrong for the opcode; the returned type is still reported.
func DeduceOperandType(inst Instruction) (ot OperandType, err error) {
	operand := inst.Operand
	literal := strings.HasPrefix(operand, "#")

	switch inst.Opcode {
	case LDM, LDR, LSL, LSR:
		if !literal {
			return INVALID_OPERAND, ErrExpectNumber
		}
		return DetectNumberType(operand), nil
	case INC, DEC:
		if operand != REG_ACC && operand != REG_IX {
			err = ErrExpectRegister
		}
		return MEMORY_LOCATION, err
	case LDD, LDI, LDX, STO, STI, STX:
		if literal {
			return INVALID_OPERAND, ErrExpectAddress
		}
		return MEMORY_LOCATION, nil
	case JMP, JPE, JPN:
		if literal {
			return INVALID_OPERAND, ErrExpectAddress
		}
		return LABEL, nil
	case IN, OUT, END:
		return NO_OPERAND, nil
	case ADD, AND, OR, CMP, XOR:
		if literal {
			return DetectNumberType(operand), nil
		}
		return MEMORY_LOCATION, nil
	default:
		return INVALID_OPERAND, nil
	}
}

// parseNumber converts a literal of a known numeric type. Malformed digits
// return ok == false and a zero value.
func parseNumber(operand string, ot OperandType) (value Word, ok bool) {
	nb, known := numberBase[ot]
	if !known || len(operand) < nb.prefix {
		return
	}

	v64, err := strconv.ParseInt(operand[nb.prefix:], nb.radix, 64)
	if err != nil {
		return
	}

	// Truncate to the word size.
	return Word(v64), true
}

// ParseLiteral parses an immediate literal ('#n', '#&n' or '#bn').
func ParseLiteral(operand string) (value Word, err error) {
	ot := DetectNumberType(operand)
	if !ot.Numeric() {
		err = ErrParseNumber(operand)
		return
	}

	value, ok := parseNumber(operand, ot)
	if !ok {
		err = ErrParseNumber(operand)
	}

	return
}
