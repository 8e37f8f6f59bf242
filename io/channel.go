// Package io provides the input and output collaborators of the CIE
// assembly machine: the source of IN characters and the sink of OUT values.
// It includes a terminal tape over an io.Reader and io.Writer, and a scripted
// queue for canned sessions.
package io

// Input supplies characters for the IN instruction.
type Input interface {
	// ReadCharacter blocks until a value is available. An empty value is
	// permitted, and causes the caller to ask again.
	ReadCharacter() (text string, err error)
}

// Output receives the formatted values of the OUT instruction.
type Output interface {
	// Emit writes a single formatted value.
	Emit(text string) error
}
