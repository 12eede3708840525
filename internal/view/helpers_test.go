package view

import (
	"image"
	"testing"

	"github.com/hailam/chessview/internal/board"
	"github.com/lucasb-eyer/go-colorful"
)

// fakeMoves returns a fixed move list and counts calls.
type fakeMoves struct {
	moves []board.Move
	calls int
}

func (f *fakeMoves) GenerateMoves(board.Snapshot) []board.Move {
	f.calls++
	return f.moves
}

// fakePieces hands out one distinct image per piece code. Codes listed in missing get no
// sprite.
type fakePieces struct {
	sprites map[board.Piece]*image.RGBA
	missing map[board.Piece]bool
}

func newFakePieces() *fakePieces {
	f := &fakePieces{
		sprites: make(map[board.Piece]*image.RGBA),
		missing: make(map[board.Piece]bool),
	}
	for _, p := range board.AllPieces {
		f.sprites[p] = image.NewRGBA(image.Rect(0, 0, 8, 8))
	}
	return f
}

func (f *fakePieces) SpriteFor(p board.Piece) Sprite {
	img, ok := f.sprites[p]
	if !ok || f.missing[p] {
		return nil
	}
	return img
}

type fakeTray struct {
	added []Sprite
}

func (f *fakeTray) Add(s Sprite) {
	f.added = append(f.added, s)
}

func mustMove(t *testing.T, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func mustFEN(t *testing.T, fen string) board.Snapshot {
	t.Helper()
	snap, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return snap
}

func mustCoord(t *testing.T, s string) board.Coord {
	t.Helper()
	sq, err := board.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return board.CoordFromIndex(sq)
}

// newTestView builds a view with fakes. mutate may adjust the config first.
func newTestView(t *testing.T, mutate func(*Config)) (*BoardView, *fakeMoves, *fakePieces) {
	t.Helper()
	moves := &fakeMoves{}
	pieces := newFakePieces()
	cfg := Config{
		Theme:          DefaultTheme(),
		Pieces:         pieces,
		Moves:          moves,
		WhiteIsBottom:  true,
		ShowLegalMoves: true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, moves, pieces
}

func colours(v *BoardView) [64]colorful.Color {
	var out [64]colorful.Color
	for i, sq := range v.Squares() {
		out[i] = sq.Colour()
	}
	return out
}

func piecePositions(v *BoardView) [64]Vec3 {
	var out [64]Vec3
	for i, sq := range v.Squares() {
		out[i] = sq.PiecePosition
	}
	return out
}

func squarePositions(v *BoardView) [64]Vec3 {
	var out [64]Vec3
	for i, sq := range v.Squares() {
		out[i] = sq.Position
	}
	return out
}

func squareAt(t *testing.T, v *BoardView, c board.Coord) VisualSquare {
	t.Helper()
	sq, ok := v.Square(c)
	if !ok {
		t.Fatalf("Square(%v) not on board", c)
	}
	return sq
}
