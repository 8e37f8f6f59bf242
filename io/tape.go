package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Tape connects the machine to a line oriented terminal. Each IN reads one
// line from Input; each OUT writes one line to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt io.Writer // If set, receives a prompt before each read.

	reader *bufio.Reader
	source io.Reader
}

var _ Input = (*Tape)(nil)
var _ Output = (*Tape)(nil)

// ReadCharacter reads the next line of input, without its line ending.
func (tc *Tape) ReadCharacter() (text string, err error) {
	if tc.Input == nil {
		err = ErrInputClosed
		return
	}

	if tc.reader == nil || tc.source != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}

	if tc.Prompt != nil {
		fmt.Fprint(tc.Prompt, f("Input: "))
	}

	line, err := tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) != 0 {
		err = nil
	}
	if errors.Is(err, io.EOF) {
		err = ErrInputClosed
		return
	}
	if err != nil {
		return
	}

	text = strings.TrimRight(line, "\r\n")

	return
}

// Emit writes a value on its own line.
func (tc *Tape) Emit(text string) (err error) {
	if tc.Output == nil {
		err = ErrOutputClosed
		return
	}

	_, err = fmt.Fprintln(tc.Output, text)

	return
}
