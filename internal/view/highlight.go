package view

import (
	"github.com/hailam/chessview/internal/board"
)

// HighlightLegalMoves overlays every square the piece on from may move to and returns
// how many squares were marked. It does nothing when legal move display is off.
func (v *BoardView) HighlightLegalMoves(b board.Snapshot, from board.Coord) int {
	if !v.showLegalMoves {
		return 0
	}
	if !from.IsValid() {
		v.log.Sugar().Warnf("legal moves requested for off-board square %v", from)
		return 0
	}

	start := board.IndexFromCoord(from)
	var marked [64]bool // promotions yield several moves per target
	count := 0
	for _, m := range v.moves.GenerateMoves(b) {
		if m.IsInvalid() || m.Start() != start || marked[m.Target()] {
			continue
		}
		marked[m.Target()] = true
		target := board.CoordFromIndex(m.Target())
		c := v.colours.legalMoveColour(target)
		v.ApplyOverlay(target, LayerLegalMove, c, c)
		count++
	}

	v.log.Sugar().Debugf("highlighted %d legal moves from %v", count, from)
	return count
}

// SetShowLegalMoves toggles legal move display.
func (v *BoardView) SetShowLegalMoves(show bool) {
	v.showLegalMoves = show
}

// ShowLegalMoves reports whether legal move display is on.
func (v *BoardView) ShowLegalMoves() bool {
	return v.showLegalMoves
}
