package io

// Script is a canned session: IN values are taken from Inputs in order,
// and OUT values are collected in Outputs.
type Script struct {
	Inputs  []string
	Outputs []string
}

var _ Input = (*Script)(nil)
var _ Output = (*Script)(nil)

// Feed queues more input values.
func (sc *Script) Feed(values ...string) {
	sc.Inputs = append(sc.Inputs, values...)
}

// ReadCharacter pops the next queued input.
func (sc *Script) ReadCharacter() (text string, err error) {
	if len(sc.Inputs) == 0 {
		err = ErrInputClosed
		return
	}

	text = sc.Inputs[0]
	sc.Inputs = sc.Inputs[1:]

	return
}

// Emit records an output value.
func (sc *Script) Emit(text string) (err error) {
	sc.Outputs = append(sc.Outputs, text)
	return
}

// Reset drops all queued inputs and recorded outputs.
func (sc *Script) Reset() {
	sc.Inputs = nil
	sc.Outputs = nil
}
