// Package blocks implements a falling-block puzzle game.
//
// The simulation is split in three layers. Board is the only authority on
// legality and on the landed-cell grid. Piece is a shape instance that knows
// its own cells but nothing about the board. State orchestrates one falling
// piece against the board and owns scoring, leveling and the pause/game-over
// state machine. Game adapts State to the game registry.
package blocks

import (
	"math/bits"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Rotations is the number of rotation states every shape has.
const Rotations = 4

// Shape is an immutable catalog entry.
//
// Each mask is a 4x4 bitmap read row-major with the most significant bit at
// the top-left cell of the bounding box.
//
//	0x44C0 (J, rotation 0)
//	. X . .
//	. X . .
//	X X . .
//	. . . .
type Shape struct {
	Kind  Kind
	Masks [Rotations]uint16
	Color core.Color
}

// Cells returns the number of occupied cells in the given rotation.
func (s Shape) Cells(rot int) int {
	return bits.OnesCount16(s.Masks[rot])
}

// Shapes is the catalog, indexed by Kind.
var Shapes = [...]Shape{
	KindI: {Kind: KindI, Masks: [Rotations]uint16{0x0F00, 0x2222, 0x00F0, 0x4444}, Color: core.ColorCyan},
	KindJ: {Kind: KindJ, Masks: [Rotations]uint16{0x44C0, 0x8E00, 0x6440, 0x0E20}, Color: core.ColorBlue},
	KindL: {Kind: KindL, Masks: [Rotations]uint16{0x4460, 0x0E80, 0xC440, 0x2E00}, Color: core.ColorOrange},
	KindO: {Kind: KindO, Masks: [Rotations]uint16{0xCC00, 0xCC00, 0xCC00, 0xCC00}, Color: core.ColorYellow},
	KindS: {Kind: KindS, Masks: [Rotations]uint16{0x06C0, 0x8C40, 0x6C00, 0x4620}, Color: core.ColorGreen},
	KindT: {Kind: KindT, Masks: [Rotations]uint16{0x0E40, 0x4C40, 0x4E00, 0x4640}, Color: core.ColorMagenta},
	KindZ: {Kind: KindZ, Masks: [Rotations]uint16{0x0C60, 0x4C80, 0xC600, 0x2640}, Color: core.ColorRed},
}

// AllKinds lists every kind in catalog order.
var AllKinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// ShapeOf returns the catalog entry for k.
func ShapeOf(k Kind) Shape {
	return Shapes[k]
}
