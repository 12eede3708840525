package view

import (
	"github.com/hailam/chessview/internal/board"
)

// SyncAll mirrors the snapshot onto the grid: every square gets the sprite of its piece
// and its piece is put back on the square centre.
func (v *BoardView) SyncAll(b board.Snapshot) {
	for i := range v.squares {
		sq := &v.squares[i]
		piece := b.Squares[i]
		sq.Piece = piece
		sq.Sprite = v.spriteFor(piece)
		sq.PiecePosition = CoordPosition(sq.Coord, v.whiteIsBottom, PieceDepth)
	}
	v.synced = b
	v.hasSynced = true
}

// spriteFor resolves a sprite. A missing sprite draws nothing.
func (v *BoardView) spriteFor(p board.Piece) Sprite {
	s := v.pieces.SpriteFor(p)
	if s == nil && !p.IsEmpty() {
		v.log.Sugar().Debugf("no sprite for piece %q", p)
	}
	return s
}

// syncMove syncs the board after m and reports a captured piece to the tray.
func (v *BoardView) syncMove(b board.Snapshot, m board.Move) {
	if v.tray != nil && v.hasSynced {
		if captured := v.synced.CapturedBy(m); !captured.IsEmpty() {
			if s := v.spriteFor(captured); s != nil {
				v.tray.Add(s)
			}
		}
	}
	v.SyncAll(b)
}

// refreshPositions recomputes every square and piece position for the perspective.
func (v *BoardView) refreshPositions() {
	for i := range v.squares {
		sq := &v.squares[i]
		sq.Position = CoordPosition(sq.Coord, v.whiteIsBottom, SquareDepth)
		sq.PiecePosition = CoordPosition(sq.Coord, v.whiteIsBottom, PieceDepth)
	}
}
