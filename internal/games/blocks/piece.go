package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Direction is a one-step translation of a piece.
type Direction struct {
	DRow, DCol int
}

// Directions a piece can be moved in. Pieces never move up.
var (
	Down  = Direction{DRow: 1}
	Left  = Direction{DCol: -1}
	Right = Direction{DCol: 1}
)

// AllDirections lists every legal move direction.
var AllDirections = [...]Direction{Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%+d,%+d)", d.DRow, d.DCol)
	}
}

// Cell is a board position. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// Block is a colored cell. Identity is the position only.
type Block struct {
	Cell
	Color core.Color
}

// Equal reports whether two blocks occupy the same cell, regardless of color.
func (b Block) Equal(o Block) bool {
	return b.Cell == o.Cell
}

// String implements fmt.Stringer.
func (b Block) String() string {
	return fmt.Sprintf("(%d, %d)", b.Row, b.Col)
}

// Piece is a shape placed at (Row, Col), the top-left of its 4x4 bounding box.
// It is a small value type: copying a Piece gives an independent piece, which
// is how Board tests hypothetical moves.
type Piece struct {
	Kind Kind
	Row  int
	Col  int
	Rot  int
}

// NewPiece creates a piece of kind k at (row, col) in rotation 0.
func NewPiece(k Kind, row, col int) Piece {
	return Piece{Kind: k, Row: row, Col: col}
}

// Shape returns the catalog entry of the piece.
func (p Piece) Shape() Shape {
	return Shapes[p.Kind]
}

// Mask returns the bitmap of the active rotation.
func (p Piece) Mask() uint16 {
	return Shapes[p.Kind].Masks[p.Rot]
}

// Blocks returns the absolute cells occupied by the piece, in row-major order.
func (p Piece) Blocks() []Block {
	shape := Shapes[p.Kind]
	mask := shape.Masks[p.Rot]
	blocks := make([]Block, 0, 4)
	for i := 0; i < 16; i++ {
		if mask&(0x8000>>i) == 0 {
			continue
		}
		blocks = append(blocks, Block{
			Cell:  Cell{Row: p.Row + i/4, Col: p.Col + i%4},
			Color: shape.Color,
		})
	}
	return blocks
}

// Move translates the piece by one step. Legality is the caller's concern.
func (p *Piece) Move(d Direction) {
	p.Row += d.DRow
	p.Col += d.DCol
}

// Rotate advances the rotation index clockwise, or counter-clockwise when ccw
// is set, wrapping modulo Rotations. Legality is the caller's concern.
func (p *Piece) Rotate(ccw bool) {
	step := 1
	if ccw {
		step = -1
	}
	p.Rot = ((p.Rot+step)%Rotations + Rotations) % Rotations
}

// Moved returns a copy of the piece translated by d.
func (p Piece) Moved(d Direction) Piece {
	p.Move(d)
	return p
}

// Rotated returns a copy of the piece rotated once.
func (p Piece) Rotated(ccw bool) Piece {
	p.Rotate(ccw)
	return p
}
