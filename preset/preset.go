// Package preset loads starlark scripts that seed the machine before a run.
//
// A preset script defines a 'memory' dict of address to value, and may
// define a 'base' for the display base:
//
//	base = BASE16
//	memory = {"X": 5, "Y": "#&7f"}
//	for n in range(4):
//	    memory["ARR+%d" % n] = n * n
//
// Values are integers, truncated to the word size, or CIE literal strings.
package preset

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/emulator"
)

// Cell is a single preset memory location.
type Cell struct {
	Address string
	Value   cpu.Word
}

// Preset is the evaluated content of a preset script.
type Preset struct {
	Memory []Cell    // Memory locations, in script order.
	Base   *cpu.Base // Display base, or nil to keep the current base.
}

// predeclared returns the names visible to a preset script.
func predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for _, base := range []cpu.Base{cpu.BASE2, cpu.BASE10, cpu.BASE16, cpu.ASCII} {
		pred[base.String()] = starlark.String(base.String())
	}
	return pred
}

// Load evaluates a preset script. If src is nil, the script is read from
// filename; otherwise src is a string, []byte or io.Reader.
func Load(filename string, src any) (preset *Preset, err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared())
	if err != nil {
		return
	}

	preset = &Preset{}

	if st_base, ok := dict["base"]; ok {
		st_str, ok := starlark.AsString(st_base)
		if !ok {
			err = ErrBaseType(st_base.Type())
			return
		}
		var base cpu.Base
		base, err = cpu.ParseBase(st_str)
		if err != nil {
			return
		}
		preset.Base = &base
	}

	st_mem, ok := dict["memory"]
	if !ok {
		return
	}

	st_dict, ok := st_mem.(*starlark.Dict)
	if !ok {
		err = ErrMemoryType(st_mem.Type())
		return
	}

	for _, item := range st_dict.Items() {
		addr, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrAddress(item[0].String())
			return
		}

		var value cpu.Word
		value, err = wordOf(item[1])
		if err != nil {
			err = &ErrValue{Address: addr, Err: err}
			return
		}

		preset.Memory = append(preset.Memory, Cell{Address: addr, Value: value})
	}

	return
}

// wordOf converts a starlark int or literal string to a word.
func wordOf(value starlark.Value) (word cpu.Word, err error) {
	if text, ok := starlark.AsString(value); ok {
		return cpu.ParseLiteral(text)
	}

	st_int, ok := value.(starlark.Int)
	if !ok {
		err = errors.New(f("%v is not an int or literal", value.Type()))
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = errors.New(f("%v is out of range", st_int))
		return
	}

	word = cpu.Word(st_int64)

	return
}

// Apply seeds the emulator memory and display base.
func (preset *Preset) Apply(emu *emulator.Emulator) {
	if preset.Base != nil {
		emu.Cpu.Base = *preset.Base
	}

	for _, cell := range preset.Memory {
		emu.SetMemory(cell.Address, cell.Value)
	}
}
