package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}
	sc.Feed("", "B")

	text, err := sc.ReadCharacter()
	assert.NoError(err)
	assert.Equal("", text)

	text, err = sc.ReadCharacter()
	assert.NoError(err)
	assert.Equal("B", text)

	_, err = sc.ReadCharacter()
	assert.ErrorIs(err, ErrInputClosed)

	assert.NoError(sc.Emit("#1"))
	assert.NoError(sc.Emit("#2"))
	assert.Equal([]string{"#1", "#2"}, sc.Outputs)

	sc.Reset()
	assert.Empty(sc.Outputs)
	assert.Empty(sc.Inputs)
}
