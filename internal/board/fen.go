package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Castling, en passant and clocks are the rules engine's business and are ignored.
func ParseFEN(fen string) (Snapshot, error) {
	var snap Snapshot

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return snap, fmt.Errorf("invalid FEN: empty string")
	}

	if err := parsePiecePlacement(&snap, parts[0]); err != nil {
		return snap, err
	}

	snap.WhiteToMove = true
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			snap.WhiteToMove = false
		default:
			return snap, fmt.Errorf("invalid side to move: %s", parts[1])
		}
	}

	return snap, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(snap *Snapshot, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			snap.Squares[IndexFromCoord(Coord{File: file, Rank: rank})] = piece
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// FEN returns the placement and side-to-move fields of the snapshot.
func (s Snapshot) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := s.At(Coord{File: file, Rank: rank})
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if s.WhiteToMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	return sb.String()
}
