package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/emulator"
)

var echo = strings.Join([]string{
	"LOOP: IN",
	"      CMP #46",
	"      JPE DONE",
	"      OUT",
	"      JMP LOOP",
	"DONE: END",
}, "\n")

func doCommands(h *Host, commands ...string) string {
	out := &bytes.Buffer{}
	h.RunCommands(strings.NewReader(strings.Join(commands, "\n")+"\n"), out, false)
	return out.String()
}

func newHost(t *testing.T, source string) (h *Host) {
	h = New(emulator.NewEmulator())
	require.NoError(t, h.LoadSource("test.cie", source))
	return
}

func TestHost(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	h := New(emu)

	assert.Same(emu, h.Emulator())
	assert.Equal(h, emu.Cpu.Input)
	assert.Equal(h, emu.Cpu.Output)

	out := doCommands(h, "list")
	assert.Contains(out, "state: finished")
	assert.Contains(out, ErrNoProgram.Error())
}

func TestHostRun(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, echo)
	h.Emulator().Cpu.Base = cpu.ASCII

	out := doCommands(h, "run", "H", "i", ".", "quit", "next")
	assert.Equal(strings.Join([]string{
		"   1  LOOP - IN",
		`"H"`,
		`"i"`,
		"state: halted",
		"",
	}, "\n"), out)
}

func TestHostStep(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "LDM #5\nSTO X\nADD X\nLDI X\nEND\n")

	out := doCommands(h, "step", "", "step 2", "step 9")
	assert.Equal(strings.Join([]string{
		"   1  _init_ - LDM:#5",
		"   1  _init_ - LDM:#5  ACC=#5",
		"   2  _init_+1 - STO:X",
		"   2  _init_+1 - STO:X  X=#5",
		"   3  _init_+2 - ADD:X",
		"   3  _init_+2 - ADD:X  ACC=#10",
		"   4  _init_+3 - LDI:X",
		cpu.ErrIndirect.Error(),
		"   5  _init_+4 - END",
		"   5  _init_+4 - END",
		"state: halted",
		"",
	}, "\n"), strings.ReplaceAll(out, "warning: ", ""))
}

func TestHostSet(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "LDD X\nADD Y\nOUT\nEND\n")

	out := doCommands(h, "set X 3", "set Y #&10", "set Z bogus", "base hex", "run", "base octal")
	assert.Contains(out, "#&13\n")
	assert.Contains(out, "ERROR: ")
	assert.Equal(cpu.Word(3), h.Emulator().Cpu.Memory.Get("X"))
	assert.Equal(cpu.Word(16), h.Emulator().Cpu.Memory.Get("Y"))
	assert.Equal(cpu.BASE16, h.Emulator().Cpu.Base)
	assert.Equal(2, strings.Count(out, "ERROR: "))
}

func TestHostStop(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "LDM #1\nSTO X\nEND\n")
	emu := h.Emulator()

	doCommands(h, "run")
	assert.Equal(emulator.STATE_HALTED, emu.State())
	assert.Equal(cpu.Word(1), emu.Cpu.Memory.Get("X"))

	out := doCommands(h, "stop")
	assert.Equal("state: halted\n   1  _init_ - LDM:#1\n", out)
	assert.Equal(emulator.STATE_READY, emu.State())
	assert.Equal(cpu.Word(0), emu.Cpu.Memory.Get("X"))
}

func TestHostListing(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, echo)

	out := doCommands(h, "labels", "step", "X", "list")
	assert.Contains(out, "LOOP\nDONE\n")
	assert.Contains(out, "   1  LOOP - IN  ACC=#88\n")
	assert.Contains(out, "     1  LOOP - IN\n")
	assert.Contains(out, "=>   2  LOOP+1 - CMP:#46\n")
}

func TestHostTables(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "LDM #4\nSTO X\nEND\n")

	out := doCommands(h, "run", "mem", "trace")
	assert.Contains(out, "ADDRESS")
	assert.Contains(out, "#4")
	assert.Contains(out, "_init_+1")
}

func TestHostLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.cie")
	bad := filepath.Join(dir, "bad.cie")
	require.NoError(t, os.WriteFile(good, []byte("LDM #1\nEND\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("FOO\n"), 0o644))

	h := New(emulator.NewEmulator())
	out := doCommands(h, "load "+good, "load "+bad, "load "+filepath.Join(dir, "missing.cie"))
	assert.Contains(out, "   1  _init_ - LDM:#1\n")
	assert.Equal(2, strings.Count(out, "ERROR: "))
	assert.Equal(2, h.Emulator().Program.Len())
}

func TestHostErrors(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "JMP AWAY\n")

	out := doCommands(h, "bogus", "step 0", "step x", "run", "step")
	assert.Equal(5, strings.Count(out, "ERROR: "), out)
	assert.Contains(out, "AWAY")
	assert.Equal(emulator.STATE_ABORTED, h.Emulator().State())
}

func TestHostInputClosed(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "IN\nEND\n")

	out := doCommands(h, "run")
	assert.Contains(out, "ERROR: ")
	assert.Equal(emulator.STATE_ABORTED, h.Emulator().State())
}

func TestHostInteractive(t *testing.T) {
	assert := assert.New(t)

	h := newHost(t, "IN\nOUT\nEND\n")
	h.Emulator().Cpu.Base = cpu.ASCII

	out := &bytes.Buffer{}
	h.RunCommands(strings.NewReader("run\nZ\nquit\n"), out, true)
	assert.Equal("   1  _init_ - IN\n* Input: \"Z\"\nstate: halted\n* ", out.String())
}
