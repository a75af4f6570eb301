package blocks

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Board is a fixed rows x cols grid of landed blocks.
// Absence of a block at a cell means the cell is empty. The landed set is kept
// sparse, keyed by row*cols+col, so no two blocks can share a cell.
type Board struct {
	rows   int
	cols   int
	landed *intmap.Map[int, core.Color]
}

// NewBoard creates an empty board. Dimensions are validated by NewState.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:   rows,
		cols:   cols,
		landed: intmap.New[int, core.Color](rows * cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of landed blocks.
func (b *Board) Len() int { return b.landed.Len() }

// Reset removes every landed block.
func (b *Board) Reset() {
	b.landed.Clear()
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) key(row, col int) int {
	return row*b.cols + col
}

// BlockAt returns the landed block at (row, col), if any.
func (b *Board) BlockAt(row, col int) (Block, bool) {
	if !b.inBounds(row, col) {
		return Block{}, false
	}
	c, ok := b.landed.Get(b.key(row, col))
	if !ok {
		return Block{}, false
	}
	return Block{Cell: Cell{Row: row, Col: col}, Color: c}, true
}

func (b *Board) occupied(row, col int) bool {
	_, ok := b.BlockAt(row, col)
	return ok
}

// Landed returns a copy of every landed block in row-major order.
func (b *Board) Landed() []Block {
	out := make([]Block, 0, b.landed.Len())
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if blk, ok := b.BlockAt(row, col); ok {
				out = append(out, blk)
			}
		}
	}
	return out
}

// HasLanded reports whether p rests on the floor or on a landed block.
func (b *Board) HasLanded(p Piece) bool {
	for _, blk := range p.Blocks() {
		if blk.Row == b.rows-1 {
			return true
		}
		if b.occupied(blk.Row+1, blk.Col) {
			return true
		}
	}
	return false
}

// HasValidPosition reports whether every cell of p is inside the grid and
// not on a landed block.
func (b *Board) HasValidPosition(p Piece) bool {
	for _, blk := range p.Blocks() {
		if !b.inBounds(blk.Row, blk.Col) || b.occupied(blk.Row, blk.Col) {
			return false
		}
	}
	return true
}

// CanMove reports whether p could be moved in direction d. p is not changed.
func (b *Board) CanMove(p Piece, d Direction) bool {
	return b.HasValidPosition(p.Moved(d))
}

// CanRotate reports whether p could be rotated once. p is not changed.
func (b *Board) CanRotate(p Piece, ccw bool) bool {
	return b.HasValidPosition(p.Rotated(ccw))
}

// Land merges every cell of p into the board with the piece's color.
// There is no legality check; cells outside the grid are dropped and a cell
// that is already landed is overwritten.
func (b *Board) Land(p Piece) {
	for _, blk := range p.Blocks() {
		if !b.inBounds(blk.Row, blk.Col) {
			continue
		}
		b.landed.Put(b.key(blk.Row, blk.Col), blk.Color)
	}
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.cols; col++ {
		if !b.occupied(row, col) {
			return false
		}
	}
	return true
}

// RemoveLines clears every full row and returns how many were cleared.
//
// Rows are scanned bottom to top. When a row is full its blocks are deleted,
// every block above it falls by one row, and the same row index is examined
// again because the row above has just moved into it.
func (b *Board) RemoveLines() int {
	lines := 0
	row := b.rows - 1
	for row >= 0 {
		if !b.rowFull(row) {
			row--
			continue
		}
		lines++
		for col := 0; col < b.cols; col++ {
			b.landed.Del(b.key(row, col))
		}
		// Walk upward so each destination cell has already been vacated.
		for r := row - 1; r >= 0; r-- {
			for col := 0; col < b.cols; col++ {
				c, ok := b.landed.Get(b.key(r, col))
				if !ok {
					continue
				}
				b.landed.Del(b.key(r, col))
				b.landed.Put(b.key(r+1, col), c)
			}
		}
	}
	return lines
}

// TopRowBlocked reports whether any landed block sits in row 0.
func (b *Board) TopRowBlocked() bool {
	for col := 0; col < b.cols; col++ {
		if b.occupied(0, col) {
			return true
		}
	}
	return false
}
