package view

import (
	"math"

	"github.com/hailam/chessview/internal/board"
)

// World-space layout: one unit per square, board centred on the origin.
const (
	BoardHalfExtent = 4.0
	squareCentre    = 3.5

	SquareDepth    = 0.0
	PieceDepth     = -0.1
	PieceDragDepth = -0.2
)

// Vec3 is a world-space position. Smaller Z is nearer the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	t = math.Max(0, math.Min(1, t))
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// WorldPosition returns the centre of square (file, rank) at the given depth.
// With black at the bottom both axes are mirrored.
func WorldPosition(file, rank int, whiteIsBottom bool, depth float64) Vec3 {
	if whiteIsBottom {
		return Vec3{X: float64(file) - squareCentre, Y: float64(rank) - squareCentre, Z: depth}
	}
	return Vec3{X: squareCentre - float64(file), Y: squareCentre - float64(rank), Z: depth}
}

// CoordPosition is WorldPosition for a Coord.
func CoordPosition(c board.Coord, whiteIsBottom bool, depth float64) Vec3 {
	return WorldPosition(c.File, c.Rank, whiteIsBottom, depth)
}

// SquareUnderPointer maps a world-space point back to a board coordinate.
// The coordinate is returned even when it is off the board; ok reports whether it can be
// used to index the grid.
//
// Indices are floored rather than truncated toward zero, so a point up to one square
// beyond the left or bottom edge maps to index -1 and is reported off the board instead
// of landing on file or rank 0.
func SquareUnderPointer(p Vec3, whiteIsBottom bool) (c board.Coord, ok bool) {
	c = board.NewCoord(
		int(math.Floor(p.X+BoardHalfExtent)),
		int(math.Floor(p.Y+BoardHalfExtent)),
	)
	if !whiteIsBottom {
		c = c.Mirror()
	}
	return c, c.IsValid()
}
