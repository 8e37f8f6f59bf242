package emulator

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/cieasm/cpu"
	"github.com/ezrec/cieasm/internal"
)

// SNAPSHOT_MEMSET is the snapshot label of memory set outside a program.
const SNAPSHOT_MEMSET = "MEMSET"

// Snapshot is the value of the memory locations changed by one step.
type Snapshot struct {
	Label  string     // Label of the instruction, or SNAPSHOT_MEMSET.
	Keys   []string   // Changed locations, in change order.
	Values []cpu.Word // Values of the changed locations after the step.
}

// History is the list of snapshots since the last stop.
type History struct {
	Snapshots []Snapshot
}

// Record appends a snapshot of the given memory keys.
func (hist *History) Record(label string, mem cpu.Memory, keys ...string) {
	snap := Snapshot{
		Label: label,
		Keys:  slices.Clone(keys),
	}
	for _, key := range keys {
		snap.Values = append(snap.Values, mem.Get(key))
	}

	hist.Snapshots = append(hist.Snapshots, snap)
}

// Reset drops all snapshots.
func (hist *History) Reset() {
	hist.Snapshots = nil
}

// Columns returns every recorded key, in order of first change.
func (hist *History) Columns() (columns []string) {
	for _, snap := range hist.Snapshots {
		for _, key := range snap.Keys {
			if !slices.Contains(columns, key) {
				columns = append(columns, key)
			}
		}
	}

	return
}

// Render writes the history as a table: one row per snapshot, one column
// per memory location.
func (hist *History) Render(w io.Writer, base cpu.Base) (err error) {
	columns := hist.Columns()

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := table.Row{""}
	for _, key := range columns {
		header = append(header, key)
	}
	tw.AppendHeader(header)

	for _, snap := range hist.Snapshots {
		row := make(table.Row, len(columns)+1)
		for n := range row {
			row[n] = ""
		}
		row[0] = snap.Label
		for n, key := range snap.Keys {
			row[1+slices.Index(columns, key)] = cpu.Format(snap.Values[n], base)
		}
		tw.AppendRow(row)
	}

	_, err = fmt.Fprintln(w, tw.Render())

	return
}

// RenderMemory writes the registers followed by all written memory
// locations as a table.
func (emu *Emulator) RenderMemory(w io.Writer) (err error) {
	mem := emu.Cpu.Memory
	base := emu.Cpu.Base

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{f("Address"), f("Value")})

	others := internal.IterSeqFilter(mem.Keys(), func(key string) bool {
		return key != cpu.REG_ACC && key != cpu.REG_IX
	})
	registers := slices.Values([]string{cpu.REG_ACC, cpu.REG_IX})

	for key := range internal.IterSeqConcat(registers, others) {
		tw.AppendRow(table.Row{key, cpu.Format(mem.Get(key), base)})
	}

	_, err = fmt.Fprintln(w, tw.Render())

	return
}
