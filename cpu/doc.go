// Package cpu implements the virtual machine and assembler for CIE assembly.
//
// The machine consists of an accumulator (ACC), an index register (IX), a
// symbolically addressed memory map of 8-bit words, and a compare flag. The
// registers are memory locations keyed "ACC" and "IX". Unset memory reads as
// zero.
//
// The assembler turns source text into an ordered list of instructions, each
// carrying a computed label ('LOOP', 'LOOP+1', ...) that jump instructions
// use as their target. Operands are kept as raw text and only classified when
// an instruction is executed.
package cpu
