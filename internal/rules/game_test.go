package rules

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hailam/chessview/internal/board"
)

func mustMove(t *testing.T, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

func TestNewGameStartPosition(t *testing.T) {
	g, err := NewGame("", nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if diff := cmp.Diff(board.StartSnapshot(), g.Snapshot()); diff != "" {
		t.Errorf("start snapshot mismatch (-want +got):\n%s", diff)
	}
	if n := len(g.LegalMoves()); n != 20 {
		t.Errorf("len(LegalMoves()) = %d, want 20", n)
	}
}

func TestNewGameBadFEN(t *testing.T) {
	if _, err := NewGame("not a fen", nil); err == nil {
		t.Error("NewGame accepted an invalid FEN")
	}
}

func TestGenerateMovesForCurrentPosition(t *testing.T) {
	g, _ := NewGame("", nil)
	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	}
	got := moveStrings(g.GenerateMoves(g.Snapshot()))
	if diff := cmp.Diff(want, got, sortStrings); diff != "" {
		t.Errorf("GenerateMoves mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMovesForOtherSnapshot(t *testing.T) {
	g, _ := NewGame("", nil)
	snap, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w")
	if err != nil {
		t.Fatal(err)
	}

	got := moveStrings(g.GenerateMoves(snap))
	for _, m := range got {
		if m == "e1c1" {
			t.Error("castling generated without castling rights")
		}
	}
	// 10 rook moves along the a-file and first rank, 5 king moves.
	if len(got) != 15 {
		t.Errorf("len(GenerateMoves) = %d, want 15: %v", len(got), got)
	}
}

func TestApply(t *testing.T) {
	g, _ := NewGame("", nil)
	played, err := g.Apply(mustMove(t, "e2e4"))
	if err != nil {
		t.Fatalf("Apply(e2e4): %v", err)
	}
	if played != mustMove(t, "e2e4") {
		t.Errorf("played %v, want e2e4", played)
	}

	snap := g.Snapshot()
	if snap.WhiteToMove {
		t.Error("white still to move after e2e4")
	}
	if got := snap.At(board.NewCoord(4, 3)); got != board.WhitePawn {
		t.Errorf("e4 = %q, want P", got)
	}
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	g, _ := NewGame("", nil)
	for _, m := range []board.Move{board.InvalidMove, mustMove(t, "e2e5"), mustMove(t, "e7e5")} {
		if _, err := g.Apply(m); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Apply(%v) error = %v, want ErrIllegalMove", m, err)
		}
	}
	if diff := cmp.Diff(board.StartSnapshot(), g.Snapshot()); diff != "" {
		t.Errorf("rejected move changed the position:\n%s", diff)
	}
}

func TestApplyPromotion(t *testing.T) {
	tests := []struct {
		move string
		want board.Piece
	}{
		{"a7a8", board.WhiteQueen},
		{"a7a8n", board.WhiteKnight},
		{"a7a8r", board.WhiteRook},
	}
	for _, tc := range tests {
		t.Run(tc.move, func(t *testing.T) {
			g, err := NewGame("4k3/P7/8/8/8/8/8/4K3 w - - 0 1", nil)
			if err != nil {
				t.Fatal(err)
			}
			played, err := g.Apply(mustMove(t, tc.move))
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if played.Promotion() != tc.want.Type() {
				t.Errorf("promotion = %v, want %v", played.Promotion(), tc.want.Type())
			}
			if got := g.Snapshot().At(board.NewCoord(0, 7)); got != tc.want {
				t.Errorf("a8 = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	g, _ := NewGame("", nil)
	if g.Over() || g.Result() != "*" {
		t.Fatalf("new game over=%v result=%q", g.Over(), g.Result())
	}

	for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if _, err := g.Apply(mustMove(t, s)); err != nil {
			t.Fatalf("Apply(%s): %v", s, err)
		}
	}
	if !g.Over() {
		t.Fatal("game not over after fool's mate")
	}
	if g.Outcome() != "0-1" {
		t.Errorf("Outcome() = %q, want 0-1", g.Outcome())
	}
	if got, want := g.Result(), "0-1 by Checkmate"; got != want {
		t.Errorf("Result() = %q, want %q", got, want)
	}
}
