package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{}
	assert.Equal(Word(0), mem.Get("X"))
	assert.Empty(mem)

	mem.Set("Y", 2)
	mem.Set(REG_ACC, 1)
	mem.Set("B", 3)
	assert.Equal(Word(2), mem.Get("Y"))
	assert.Equal([]string{"ACC", "B", "Y"}, slices.Collect(mem.Keys()))

	mem.Clear()
	assert.Empty(mem)
	assert.Equal(Word(0), mem.Get(REG_ACC))

	var empty Memory
	assert.Equal(Word(0), empty.Get("X"))
}
