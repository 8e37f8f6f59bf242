package emulator

import (
	"errors"

	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

var (
	// ErrAborted is returned when ticking after a fatal execution error.
	ErrAborted = errors.New(f("stopped executing"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Label  string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (%v) %v", err.LineNo, err.Label, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
