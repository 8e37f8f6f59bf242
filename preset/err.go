package preset

import (
	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

// ErrMemoryType is returned when 'memory' is not a dict.
type ErrMemoryType string

func (err ErrMemoryType) Error() string {
	return f("memory must be a dict, not %v", string(err))
}

// ErrBaseType is returned when 'base' is not a string.
type ErrBaseType string

func (err ErrBaseType) Error() string {
	return f("base must be a string, not %v", string(err))
}

// ErrAddress is returned for a memory key that is not a string.
type ErrAddress string

func (err ErrAddress) Error() string {
	return f("memory address %v is not a string", string(err))
}

// ErrValue is returned for a memory value that is not a word.
type ErrValue struct {
	Address string
	Err     error
}

func (err *ErrValue) Error() string {
	return f("memory %v: %v", err.Address, err.Err)
}

func (err *ErrValue) Unwrap() error {
	return err.Err
}
