package cpu

import (
	"strconv"
	"strings"
)

// Word is the contents of a single memory location or register.
type Word int8

// Base is a display base for values.
type Base int

//go:generate go tool stringer -type=Base
const (
	BASE10 = Base(0) // Decimal, '#' prefix.
	BASE16 = Base(1) // Hexadecimal, '#&' prefix.
	BASE2  = Base(2) // Binary, '#b' prefix.
	ASCII  = Base(3) // Quoted character.
)

// baseMap maps the accepted display base names.
var baseMap = map[string]Base{
	"base10":  BASE10,
	"dec":     BASE10,
	"decimal": BASE10,
	"10":      BASE10,
	"base16":  BASE16,
	"hex":     BASE16,
	"16":      BASE16,
	"base2":   BASE2,
	"bin":     BASE2,
	"binary":  BASE2,
	"2":       BASE2,
	"ascii":   ASCII,
	"char":    ASCII,
}

// ParseBase parses a display base name, case insensitively.
func ParseBase(name string) (base Base, err error) {
	base, ok := baseMap[strings.ToLower(name)]
	if !ok {
		err = ErrBaseUnknown(name)
	}
	return
}

// Format renders a value in a display base.
func Format(value Word, base Base) string {
	switch base {
	case BASE2:
		return "#b" + strconv.FormatInt(int64(value), 2)
	case BASE16:
		return "#&" + strconv.FormatInt(int64(value), 16)
	case ASCII:
		return `"` + string(rune(uint8(value))) + `"`
	case BASE10:
		return "#" + strconv.FormatInt(int64(value), 10)
	default:
		return "Unknown"
	}
}
