package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const double = `
; Doubles the preset value of X.
        LDD X
        ADD X
        OUT
        END
`

func doExecute(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(out)

	err = root.Execute()
	stdout = out.String()

	return
}

func writeFile(t *testing.T, name string, text string) (filename string) {
	filename = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(text), 0o644))
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	program := writeFile(t, "double.cie", double)
	preset := writeFile(t, "x.star", "memory = {\"X\": 21}\n")

	out, err := doExecute(t, "", "run", program, "-p", preset)
	assert.NoError(err)
	assert.Equal("#42\n", out)

	out, err = doExecute(t, "", "run", program, "-p", preset, "-b", "hex", "-t")
	assert.NoError(err)
	assert.True(strings.HasPrefix(out, "#&2a\n"), out)
	assert.Contains(out, "MEMSET")
}

func TestRunInputOutput(t *testing.T) {
	assert := assert.New(t)

	program := writeFile(t, "echo.cie", "IN\nOUT\nIN\nOUT\nEND\n")
	input := writeFile(t, "input.txt", "a\nb\n")
	output := filepath.Join(t.TempDir(), "output.txt")

	_, err := doExecute(t, "", "run", program, "-b", "ascii", "-i", input, "-o", output)
	assert.NoError(err)

	data, err := os.ReadFile(output)
	assert.NoError(err)
	assert.Equal("\"a\"\n\"b\"\n", string(data))

	out, err := doExecute(t, "x\ny\n", "run", program, "--base", "dec")
	assert.NoError(err)
	assert.Equal("#120\n#121\n", out)
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	missing := filepath.Join(t.TempDir(), "missing.cie")
	_, err := doExecute(t, "", "run", missing)
	assert.Error(err)

	bad := writeFile(t, "bad.cie", "LDM #1\nFROB\n")
	_, err = doExecute(t, "", "run", bad)
	assert.ErrorContains(err, "FROB")

	aborted := writeFile(t, "aborted.cie", "JMP AWAY\n")
	_, err = doExecute(t, "", "run", aborted)
	assert.ErrorContains(err, "AWAY")

	good := writeFile(t, "good.cie", "END\n")
	_, err = doExecute(t, "", "run", good, "-b", "octal")
	assert.Error(err)

	_, err = doExecute(t, "", "run")
	assert.Error(err)
}

func TestLabels(t *testing.T) {
	assert := assert.New(t)

	program := writeFile(t, "labels.cie", "START: LDM #1\nLOOP:\n  INC ACC\n  JMP LOOP\n")

	out, err := doExecute(t, "", "labels", program)
	assert.NoError(err)
	assert.Equal("START\nLOOP\n", out)
}

func TestDebug(t *testing.T) {
	assert := assert.New(t)

	program := writeFile(t, "double.cie", double)
	preset := writeFile(t, "x.star", "memory = {\"X\": 4}\n")

	out, err := doExecute(t, "mem\nrun\nquit\n", "debug", program, "-p", preset)
	assert.NoError(err)
	assert.Contains(out, "   3  _init_ - LDD:X\n")
	assert.Contains(out, "#4")
	assert.Contains(out, "#8\nstate: halted\n")
}
