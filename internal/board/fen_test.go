package board

import "testing"

func TestParseFENStart(t *testing.T) {
	snap, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	tests := []struct {
		sq   string
		want Piece
	}{
		{"a1", WhiteRook},
		{"e1", WhiteKing},
		{"d8", BlackQueen},
		{"e2", WhitePawn},
		{"g8", BlackKnight},
		{"e4", NoPiece},
	}
	for _, tc := range tests {
		sq, _ := ParseSquare(tc.sq)
		if got := snap.PieceAt(sq); got != tc.want {
			t.Errorf("PieceAt(%s) = %q, want %q", tc.sq, got, tc.want)
		}
	}

	if !snap.WhiteToMove {
		t.Error("expected white to move")
	}
	if got, want := snap.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"; got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

func TestParseFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"8/8/8/8/8/8/8/8 x",
	} {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		}
	}
}

func TestCapturedBy(t *testing.T) {
	snap, err := ParseFEN("4k3/8/8/3pP3/8/8/8/R3K2R w")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	mustMove := func(s string) Move {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		return m
	}

	tests := []struct {
		move string
		want Piece
	}{
		{"e5d6", BlackPawn}, // en passant
		{"e5e6", NoPiece},
		{"e1h1", NoPiece}, // castling as king-takes-rook
		{"a1a8", NoPiece},
	}
	for _, tc := range tests {
		if got := snap.CapturedBy(mustMove(tc.move)); got != tc.want {
			t.Errorf("CapturedBy(%s) = %q, want %q", tc.move, got, tc.want)
		}
	}

	snap.Squares[IndexFromCoord(NewCoord(0, 7))] = BlackRook
	if got := snap.CapturedBy(mustMove("a1a8")); got != BlackRook {
		t.Errorf("CapturedBy(a1a8) = %q, want r", got)
	}
	if got := snap.CapturedBy(InvalidMove); got != NoPiece {
		t.Errorf("CapturedBy(InvalidMove) = %q", got)
	}
}
