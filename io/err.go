package io

import (
	"errors"

	"github.com/ezrec/cieasm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputClosed  = errors.New(f("input closed"))
	ErrOutputClosed = errors.New(f("output closed"))
)
