package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessview/internal/board"
)

func TestWorldPositionRoundTrip(t *testing.T) {
	for _, whiteIsBottom := range []bool{true, false} {
		for rank := 0; rank < 8; rank++ {
			for file := 0; file < 8; file++ {
				pos := WorldPosition(file, rank, whiteIsBottom, 0)
				got, ok := SquareUnderPointer(pos, whiteIsBottom)
				want := board.NewCoord(file, rank)
				if !ok || got != want {
					t.Errorf("whiteIsBottom=%v: SquareUnderPointer(WorldPosition(%d,%d)) = %v,%v want %v,true",
						whiteIsBottom, file, rank, got, ok, want)
				}
			}
		}
	}
}

func TestWorldPositionValues(t *testing.T) {
	tests := []struct {
		file, rank    int
		whiteIsBottom bool
		depth         float64
		want          Vec3
	}{
		{0, 0, true, 0, Vec3{-3.5, -3.5, 0}},
		{7, 7, true, PieceDepth, Vec3{3.5, 3.5, PieceDepth}},
		{0, 0, false, 0, Vec3{3.5, 3.5, 0}},
		{4, 1, false, 0, Vec3{-0.5, 2.5, 0}},
	}

	for _, tc := range tests {
		got := WorldPosition(tc.file, tc.rank, tc.whiteIsBottom, tc.depth)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("WorldPosition(%d,%d,%v) mismatch (-want +got):\n%s", tc.file, tc.rank, tc.whiteIsBottom, diff)
		}
	}
}

func TestSquareUnderPointerOffBoard(t *testing.T) {
	tests := []struct {
		name          string
		p             Vec3
		whiteIsBottom bool
		want          board.Coord
	}{
		{"left of a-file", Vec3{X: -4.5, Y: 0}, true, board.NewCoord(-1, 4)},
		{"right of h-file", Vec3{X: 4.2, Y: 0}, true, board.NewCoord(8, 4)},
		{"below rank 1", Vec3{X: 0, Y: -4.01}, true, board.NewCoord(4, -1)},
		{"flipped, below", Vec3{X: 0, Y: -4.5}, false, board.NewCoord(3, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SquareUnderPointer(tc.p, tc.whiteIsBottom)
			if ok {
				t.Errorf("expected off-board, got %v on board", got)
			}
			if got != tc.want {
				t.Errorf("coordinate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSquareUnderPointerReproducible(t *testing.T) {
	p := Vec3{X: 1.25, Y: -2.75}
	first, firstOK := SquareUnderPointer(p, false)
	for i := 0; i < 10; i++ {
		got, ok := SquareUnderPointer(p, false)
		if got != first || ok != firstOK {
			t.Fatalf("call %d returned %v,%v; first call %v,%v", i, got, ok, first, firstOK)
		}
	}
}

func TestLerpClamps(t *testing.T) {
	a := Vec3{0, 0, PieceDepth}
	b := Vec3{2, -4, PieceDepth}

	tests := []struct {
		t    float64
		want Vec3
	}{
		{-1, a},
		{0, a},
		{0.5, Vec3{1, -2, PieceDepth}},
		{1, b},
		{1.7, b},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, Lerp(a, b, tc.t)); diff != "" {
			t.Errorf("Lerp(t=%v) mismatch (-want +got):\n%s", tc.t, diff)
		}
	}
}
