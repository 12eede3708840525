package board

import "fmt"

// Move encodes a move in 16 bits:
// bits 0-5:   start square (0-63)
// bits 6-11:  target square (0-63)
// bits 12-14: promotion piece type (0 = none)
type Move uint16

// InvalidMove represents "no move yet". It is never highlighted or animated.
const InvalidMove Move = 0

// NewMove creates a normal move.
func NewMove(start, target SquareIndex) Move {
	return Move(start&0x3F) | Move(target&0x3F)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(start, target SquareIndex, promo PieceType) Move {
	return NewMove(start, target) | Move(promo&typeMask)<<12
}

// Start returns the origin square.
func (m Move) Start() SquareIndex {
	return SquareIndex(m & 0x3F)
}

// Target returns the destination square.
func (m Move) Target() SquareIndex {
	return SquareIndex((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 12) & typeMask)
}

// IsInvalid reports whether m is the sentinel.
func (m Move) IsInvalid() bool {
	return m == InvalidMove
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsInvalid() {
		return "0000"
	}

	s := m.Start().String() + m.Target().String()
	if promo := m.Promotion(); promo != NoPieceType {
		s += string(promo.Char())
	}
	return s
}

// ParseMove parses a UCI format move string.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return InvalidMove, fmt.Errorf("invalid move string: %s", s)
	}

	start, err := ParseSquare(s[0:2])
	if err != nil {
		return InvalidMove, err
	}

	target, err := ParseSquare(s[2:4])
	if err != nil {
		return InvalidMove, err
	}
	if start == target {
		return InvalidMove, fmt.Errorf("invalid move string: %s", s)
	}

	if len(s) == 5 {
		promo := PieceFromChar(s[4]).Type()
		switch promo {
		case Knight, Bishop, Rook, Queen:
			return NewPromotion(start, target, promo), nil
		default:
			return InvalidMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return NewMove(start, target), nil
}
