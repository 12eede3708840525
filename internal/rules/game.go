// Package rules adapts github.com/notnil/chess to the board package so the view can ask
// for legal moves and the frontends can play a game.
package rules

import (
	"errors"
	"fmt"

	"github.com/hailam/chessview/internal/board"
	"github.com/notnil/chess"
	"go.uber.org/zap"
)

// ErrIllegalMove is returned by Apply for a move the position does not allow.
var ErrIllegalMove = errors.New("illegal move")

// Game is a game in progress. It implements view.MoveGenerator.
type Game struct {
	g   *chess.Game
	log *zap.Logger
}

// NewGame starts a game from a full FEN, or from the standard position when fen is empty.
func NewGame(fen string, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if fen == "" {
		return &Game{g: chess.NewGame(), log: log}, nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("load fen %q: %w", fen, err)
	}
	return &Game{g: chess.NewGame(opt), log: log}, nil
}

// Snapshot returns the current placement and side to move.
func (g *Game) Snapshot() board.Snapshot {
	return toSnapshot(g.g.Position())
}

// FEN returns the full FEN of the current position.
func (g *Game) FEN() string {
	return g.g.Position().String()
}

// LegalMoves returns the legal moves of the current position.
func (g *Game) LegalMoves() []board.Move {
	return convertMoves(g.g.ValidMoves())
}

// GenerateMoves returns the legal moves for b. When b is the current position the game's
// castling and en passant rights apply; any other snapshot is evaluated without them.
func (g *Game) GenerateMoves(b board.Snapshot) []board.Move {
	if b == g.Snapshot() {
		return g.LegalMoves()
	}

	opt, err := chess.FEN(b.FEN() + " - - 0 1")
	if err != nil {
		g.log.Warn("cannot generate moves for snapshot", zap.String("fen", b.FEN()), zap.Error(err))
		return nil
	}
	return convertMoves(chess.NewGame(opt).ValidMoves())
}

func convertMoves(moves []*chess.Move) []board.Move {
	out := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, toMove(m))
	}
	return out
}

// Apply plays m. A pawn reaching the last rank without a promotion piece becomes a
// queen. The move actually played is returned.
func (g *Game) Apply(m board.Move) (board.Move, error) {
	if m.IsInvalid() {
		return board.InvalidMove, ErrIllegalMove
	}

	from, to := fromSquare(m.Start()), fromSquare(m.Target())
	var played *chess.Move
	for _, cand := range g.g.ValidMoves() {
		if cand.S1() != from || cand.S2() != to {
			continue
		}
		promo := toPieceType(cand.Promo())
		if promo == m.Promotion() || (m.Promotion() == board.NoPieceType && promo == board.Queen) {
			played = cand
			break
		}
	}
	if played == nil {
		return board.InvalidMove, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	if err := g.g.Move(played); err != nil {
		return board.InvalidMove, fmt.Errorf("apply %v: %w", m, err)
	}
	applied := toMove(played)
	g.log.Debug("move applied", zap.Stringer("move", applied), zap.String("fen", g.FEN()))
	return applied, nil
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.g.Outcome() != chess.NoOutcome
}

// Outcome is the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Outcome() string {
	return g.g.Outcome().String()
}

// Result describes the outcome, e.g. "1-0 by Checkmate", or "*" while the game is running.
func (g *Game) Result() string {
	if !g.Over() {
		return g.Outcome()
	}
	return fmt.Sprintf("%s by %s", g.Outcome(), g.g.Method().String())
}
