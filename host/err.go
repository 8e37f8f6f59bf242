package host

import (
	"errors"

	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
)

// ErrCount is an invalid step count.
type ErrCount string

func (err ErrCount) Error() string {
	return f("%q is not a valid step count", string(err))
}
