package board

// Snapshot is a read-only copy of a board's piece placement, indexed by SquareIndex.
type Snapshot struct {
	Squares     [64]Piece
	WhiteToMove bool
}

// StartSnapshot returns the standard starting placement.
func StartSnapshot() Snapshot {
	snap, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return snap
}

// PieceAt returns the piece on sq, or NoPiece for an invalid square.
func (s Snapshot) PieceAt(sq SquareIndex) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return s.Squares[sq]
}

// At returns the piece on the given coordinate.
func (s Snapshot) At(c Coord) Piece {
	if !c.IsValid() {
		return NoPiece
	}
	return s.Squares[IndexFromCoord(c)]
}

// CapturedBy returns the piece that m removes from the board, or NoPiece.
// A pawn moving diagonally onto an empty square captures en passant.
func (s Snapshot) CapturedBy(m Move) Piece {
	if m.IsInvalid() {
		return NoPiece
	}

	mover := s.PieceAt(m.Start())
	if mover.IsEmpty() {
		return NoPiece
	}

	if victim := s.PieceAt(m.Target()); !victim.IsEmpty() {
		if victim.Color() == mover.Color() {
			// Castling expressed as king-takes-rook.
			return NoPiece
		}
		return victim
	}

	if mover.Type() == Pawn && m.Start().File() != m.Target().File() {
		passed := s.At(Coord{File: m.Target().File(), Rank: m.Start().Rank()})
		if passed.Type() == Pawn && passed.Color() != mover.Color() {
			return passed
		}
	}

	return NoPiece
}
