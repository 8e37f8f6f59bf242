package cpu

import (
	"errors"

	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

var (
	// Operand type errors, fatal at execution time.
	ErrExpectNumber   = errors.New(f("LDM, LDR, LSL, LSR expect a number as operand"))
	ErrExpectRegister = errors.New(f(`INC and DEC expect "ACC" or "IX" as the operand`))
	ErrExpectAddress  = errors.New(f("LDD, LDI, LDX, STO, STI, STX, JMP, JPE and JPN expect an address as the operand"))
	ErrOperandInvalid = errors.New(f("operand invalid"))

	// Engine errors
	ErrOpcodeUnsupported = errors.New(f("opcode not supported"))
	ErrInputMissing      = errors.New(f("no input attached"))
	ErrOutputMissing     = errors.New(f("no output attached"))

	// Advisories. These are reported as step warnings and never stop a run.
	ErrOperandIgnored  = errors.New(f("operand ignored"))
	ErrNumberMalformed = errors.New(f("malformed number, using 0"))
	ErrShiftNegative   = errors.New(f("negative shift, using 0"))
	ErrIndirect        = errors.New(f("indirect addressing is not implemented"))
)

// ErrOpcodeUnknown is the mnemonic that failed to match an opcode.
type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("%q is not a valid CIE assembly opcode", string(err))
}

// ErrLabelMissing is a jump target that matches no instruction label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("cannot find label: %v", string(el))
}

// ErrParseNumber is a literal that could not be parsed.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrBaseUnknown is an unrecognized display base name.
type ErrBaseUnknown string

func (err ErrBaseUnknown) Error() string {
	return f("'%v' is not a display base", string(err))
}

// ErrSyntax locates a parse error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand attaches the offending operand to an error.
type ErrOperand struct {
	Opcode  Opcode
	Operand string
	Err     error
}

func (err *ErrOperand) Error() string {
	return f("%v '%v': %v", err.Opcode, err.Operand, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
