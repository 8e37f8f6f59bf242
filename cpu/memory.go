package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Register names. Registers live in memory under these keys.
const (
	REG_ACC = "ACC" // Accumulator.
	REG_IX  = "IX"  // Index register.
)

// Memory maps symbolic addresses to words. Locations are created on first
// write; unset locations read as zero.
type Memory map[string]Word

// Get returns the word at addr, or zero if it was never written.
func (mem Memory) Get(addr string) Word {
	value, ok := mem[addr]
	if !ok {
		return 0
	}
	return value
}

// Set writes the word at addr.
func (mem Memory) Set(addr string, value Word) {
	mem[addr] = value
}

// Clear removes all locations, including the registers.
func (mem Memory) Clear() {
	clear(mem)
}

// Keys returns the written addresses in sorted order.
func (mem Memory) Keys() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(mem)))
}
