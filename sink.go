package eis

import (
	"github.com/calebcase/eis/bcd"
)

// Sink receives the cells of a result field, one call per cell, left to
// right.
type Sink interface {
	Put(w bcd.Width, cell uint16) (err error)
}

// CellBuffer is a Sink collecting cells in memory.
type CellBuffer struct {
	Cells []uint16
}

// Put appends a cell, masked to the width.
func (b *CellBuffer) Put(w bcd.Width, cell uint16) error {
	b.Cells = append(b.Cells, cell&w.Mask())

	return nil
}

// Reset discards the collected cells.
func (b *CellBuffer) Reset() {
	b.Cells = b.Cells[:0]
}
