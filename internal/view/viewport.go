package view

import (
	"sort"

	"github.com/hailam/chessview/internal/board"
)

// Viewport maps world space onto pixels. The board's top-left corner is at (X, Y) and
// each square is Square pixels wide. Screen y grows downwards.
type Viewport struct {
	X, Y   float64
	Square float64
}

// Size is the width of the whole board in pixels.
func (vp Viewport) Size() float64 {
	return 8 * vp.Square
}

// ToScreen returns the pixel position of a world-space point.
func (vp Viewport) ToScreen(p Vec3) (x, y float64) {
	x = vp.X + (p.X+BoardHalfExtent)*vp.Square
	y = vp.Y + (BoardHalfExtent-p.Y)*vp.Square
	return x, y
}

// ToWorld is the inverse of ToScreen on the board plane.
func (vp Viewport) ToWorld(x, y float64) Vec3 {
	return Vec3{
		X: (x-vp.X)/vp.Square - BoardHalfExtent,
		Y: BoardHalfExtent - (y-vp.Y)/vp.Square,
	}
}

// SquareRect returns the top-left pixel of the square drawn at world position p.
func (vp Viewport) SquareRect(p Vec3) (x, y float64) {
	cx, cy := vp.ToScreen(p)
	return cx - vp.Square/2, cy - vp.Square/2
}

// DrawOrder returns the squares that have a sprite, ordered back to front. A moving or
// dragged piece comes after every piece at the same depth.
func (v *BoardView) DrawOrder() []VisualSquare {
	out := make([]VisualSquare, 0, 32)
	for _, sq := range v.squares {
		if sq.Sprite != nil {
			out = append(out, sq)
		}
	}

	moving := board.NoSquare
	if v.anim != nil {
		moving = board.IndexFromCoord(v.anim.From)
	}
	sort.SliceStable(out, func(i, j int) bool {
		zi, zj := out[i].PiecePosition.Z, out[j].PiecePosition.Z
		if zi != zj {
			return zi > zj
		}
		return board.IndexFromCoord(out[j].Coord) == moving && board.IndexFromCoord(out[i].Coord) != moving
	})
	return out
}
