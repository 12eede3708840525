package rules

import (
	"github.com/hailam/chessview/internal/board"
	"github.com/notnil/chess"
)

// Both packages index squares a1=0 .. h8=63.
func toSquare(sq chess.Square) board.SquareIndex {
	if sq < chess.A1 || sq > chess.H8 {
		return board.NoSquare
	}
	return board.SquareIndex(sq)
}

func fromSquare(sq board.SquareIndex) chess.Square {
	return chess.Square(sq)
}

var pieceTypes = map[chess.PieceType]board.PieceType{
	chess.King:   board.King,
	chess.Queen:  board.Queen,
	chess.Rook:   board.Rook,
	chess.Bishop: board.Bishop,
	chess.Knight: board.Knight,
	chess.Pawn:   board.Pawn,
}

func toPieceType(pt chess.PieceType) board.PieceType {
	return pieceTypes[pt]
}

func toPiece(p chess.Piece) board.Piece {
	if p == chess.NoPiece {
		return board.NoPiece
	}
	color := board.White
	if p.Color() == chess.Black {
		color = board.Black
	}
	return board.NewPiece(toPieceType(p.Type()), color)
}

func toMove(m *chess.Move) board.Move {
	if m == nil {
		return board.InvalidMove
	}
	from, to := toSquare(m.S1()), toSquare(m.S2())
	if promo := m.Promo(); promo != chess.NoPieceType {
		return board.NewPromotion(from, to, toPieceType(promo))
	}
	return board.NewMove(from, to)
}

func toSnapshot(pos *chess.Position) board.Snapshot {
	var snap board.Snapshot
	for sq, p := range pos.Board().SquareMap() {
		if i := toSquare(sq); i.IsValid() {
			snap.Squares[i] = toPiece(p)
		}
	}
	snap.WhiteToMove = pos.Turn() == chess.White
	return snap
}
