// Package board holds the logical board types shared by the view and its collaborators.
package board

import "fmt"

// SquareIndex addresses a square on the board (0-63).
// Uses Little-Endian Rank-File Mapping: a1=0, h1=7, a8=56, h8=63.
type SquareIndex uint8

// NoSquare is returned when a square cannot be resolved.
const NoSquare SquareIndex = 64

// Coord identifies a square by file (0=a, 7=h) and rank (0=1, 7=8).
type Coord struct {
	File int
	Rank int
}

// NewCoord creates a Coord from file and rank.
func NewCoord(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// IsLightSquare reports whether the square takes the light colour class.
// a1 (0,0) is light.
func (c Coord) IsLightSquare() bool {
	return (c.File+c.Rank)%2 == 0
}

// IsValid returns true if both indices lie on the board.
func (c Coord) IsValid() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// String returns the algebraic notation for the coordinate (e.g., "e4").
func (c Coord) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return fmt.Sprintf("%c%c", 'a'+c.File, '1'+c.Rank)
}

// IndexFromCoord converts a coordinate to its square index.
func IndexFromCoord(c Coord) SquareIndex {
	return SquareIndex(c.Rank*8 + c.File)
}

// CoordFromIndex converts a square index to its coordinate.
func CoordFromIndex(sq SquareIndex) Coord {
	return Coord{File: sq.File(), Rank: sq.Rank()}
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq SquareIndex) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq SquareIndex) Rank() int {
	return int(sq) >> 3
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq SquareIndex) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq SquareIndex) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return CoordFromIndex(sq).String()
}

// ParseSquare parses algebraic notation (e.g., "e4") into a SquareIndex.
func ParseSquare(s string) (SquareIndex, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	c := Coord{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !c.IsValid() {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return IndexFromCoord(c), nil
}

// Mirror returns the coordinate seen from the opposite side of the board.
func (c Coord) Mirror() Coord {
	return Coord{File: 7 - c.File, Rank: 7 - c.Rank}
}
