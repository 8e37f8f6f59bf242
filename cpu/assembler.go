// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// LABEL_INIT is the label of instructions before the first label definition.
const LABEL_INIT = "_init_"

// Assembler is a single pass, fail-fast assembler for CIE assembly.
type Assembler struct {
	Verbose      bool          // If set, verbosely logs the assembler actions.
	Instructions []Instruction // List of parsed instructions.

	label  string // Current label.
	offset int    // Instructions emitted under the current label.
}

// scanLines is a bufio.SplitFunc that ends lines on LF, CR, or CR LF.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\r' {
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				// Need more data to see if LF follows.
				return 0, nil, nil
			}
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// stripComment removes everything from the first ';' and trims the result.
func stripComment(text string) string {
	code, _, _ := strings.Cut(text, ";")
	return strings.TrimSpace(code)
}

// splitWords splits a line on spaces, dropping empty words.
func splitWords(line string) []string {
	return slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })
}

// Parse parses an input stream into a Program. Parsing stops at the
// first unknown opcode.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Split(scanLines)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Instructions = asm.Instructions[:0]
	asm.label = LABEL_INIT
	asm.offset = 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = stripComment(text)
		err = asm.parseWords(splitWords(line), lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instructions),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	// LABEL: [opcode [operand]]
	for strings.HasSuffix(words[0], ":") {
		asm.label = strings.TrimSpace(strings.TrimSuffix(words[0], ":"))
		asm.offset = 0
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	op, ok := OpcodeOf(words[0])
	if !ok {
		err = ErrOpcodeUnknown(words[0])
		return
	}

	inst := Instruction{
		LineNo: lineno,
		Label:  asm.label,
		Opcode: op,
	}
	if asm.offset != 0 {
		inst.Label += "+" + strconv.Itoa(asm.offset)
	}
	if len(words) > 1 {
		inst.Operand = words[1]
	}
	if len(words) > 2 && asm.Verbose {
		log.Printf("%v: ignoring %v", lineno, words[2:])
	}

	asm.Instructions = append(asm.Instructions, inst)
	asm.offset++

	return
}

// Labels returns the label definitions of a source text, in order. It is a
// best-effort scan that does not validate the rest of the source.
func Labels(input io.Reader) (labels []string, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Split(scanLines)

	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if compact := strings.ReplaceAll(line, " ", ""); strings.HasSuffix(compact, ":") {
			labels = append(labels, strings.TrimSuffix(compact, ":"))
			continue
		}
		for _, word := range splitWords(line) {
			if !strings.HasSuffix(word, ":") {
				break
			}
			labels = append(labels, strings.TrimSuffix(word, ":"))
		}
	}

	err = scanner.Err()

	return
}
