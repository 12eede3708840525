package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/hailam/chessview/internal/board"
	"go.uber.org/zap"
)

// ErrMissingLookup is returned when a required collaborator is not configured.
var ErrMissingLookup = errors.New("missing board view collaborator")

// Config wires a BoardView to its collaborators.
type Config struct {
	Theme  BoardThemeLookup // required; validated when it has a Validate method
	Pieces PieceThemeLookup // required
	Moves  MoveGenerator    // required
	Tray   CapturedPieceTray

	WhiteIsBottom  bool
	ShowLegalMoves bool
	// FlatLegalMoves paints legal targets with the theme's legal_move colours instead of
	// the darkened gradient.
	FlatLegalMoves bool

	MoveDuration time.Duration // DefaultMoveDuration when zero
	Policy       RestartPolicy

	Logger *zap.Logger
}

// BoardView owns the 8x8 render grid and reacts to game events.
type BoardView struct {
	squares [64]VisualSquare // indexed by rank*8+file

	colours colourEngine
	pieces  PieceThemeLookup
	moves   MoveGenerator
	tray    CapturedPieceTray
	log     *zap.Logger

	whiteIsBottom  bool
	showLegalMoves bool
	lastMove       board.Move

	synced    board.Snapshot
	hasSynced bool

	anim     *MoveAnimation
	queue    []pendingMove
	policy   RestartPolicy
	duration time.Duration
}

// New builds a board view. An incomplete theme is an error: the board cannot be drawn
// without every colour.
func New(cfg Config) (*BoardView, error) {
	if cfg.Theme == nil {
		return nil, fmt.Errorf("%w: theme", ErrMissingLookup)
	}
	if cfg.Pieces == nil {
		return nil, fmt.Errorf("%w: piece theme", ErrMissingLookup)
	}
	if cfg.Moves == nil {
		return nil, fmt.Errorf("%w: move generator", ErrMissingLookup)
	}
	if validator, ok := cfg.Theme.(interface{ Validate() error }); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}

	v := &BoardView{
		colours:        colourEngine{theme: cfg.Theme, flat: cfg.FlatLegalMoves},
		pieces:         cfg.Pieces,
		moves:          cfg.Moves,
		tray:           cfg.Tray,
		log:            cfg.Logger,
		whiteIsBottom:  cfg.WhiteIsBottom,
		showLegalMoves: cfg.ShowLegalMoves,
		lastMove:       board.InvalidMove,
		policy:         cfg.Policy,
		duration:       cfg.MoveDuration,
	}
	if v.log == nil {
		v.log = zap.NewNop()
	}
	if v.duration <= 0 {
		v.duration = DefaultMoveDuration
	}

	for i := range v.squares {
		v.squares[i].Coord = board.CoordFromIndex(board.SquareIndex(i))
	}
	v.refreshPositions()
	v.ResetColours(true)

	return v, nil
}

func (v *BoardView) square(c board.Coord) *VisualSquare {
	return &v.squares[board.IndexFromCoord(c)]
}

// Square returns a copy of the render record at c. ok is false off the board.
func (v *BoardView) Square(c board.Coord) (sq VisualSquare, ok bool) {
	if !c.IsValid() {
		return VisualSquare{}, false
	}
	return *v.square(c), true
}

// Squares returns a copy of the whole grid, indexed by rank*8+file.
func (v *BoardView) Squares() [64]VisualSquare {
	return v.squares
}

// WhiteIsBottom reports the current perspective.
func (v *BoardView) WhiteIsBottom() bool {
	return v.whiteIsBottom
}

// LastMove returns the last move shown, or board.InvalidMove.
func (v *BoardView) LastMove() board.Move {
	return v.lastMove
}

// SetPerspective puts white (true) or black at the bottom. Any running or queued
// animation completes first, then every square and piece is repositioned.
func (v *BoardView) SetPerspective(whitePOV bool) {
	v.settle()
	v.whiteIsBottom = whitePOV
	v.refreshPositions()
	v.highlightMove(v.lastMove)
	v.log.Sugar().Debugf("perspective set, white at bottom: %v", whitePOV)
}

// OnPointerMove resolves a world-space pointer to the square beneath it.
func (v *BoardView) OnPointerMove(pointer Vec3) (board.Coord, bool) {
	return SquareUnderPointer(pointer, v.whiteIsBottom)
}

// DragPiece lifts the piece on c and places it under the pointer.
func (v *BoardView) DragPiece(c board.Coord, pointer Vec3) {
	if !c.IsValid() {
		return
	}
	v.square(c).PiecePosition = Vec3{X: pointer.X, Y: pointer.Y, Z: PieceDragDepth}
}

// ResetPiecePosition puts the piece on c back on its square.
func (v *BoardView) ResetPiecePosition(c board.Coord) {
	if !c.IsValid() {
		return
	}
	v.square(c).PiecePosition = CoordPosition(c, v.whiteIsBottom, PieceDepth)
}

// Reset shows a new game. The animation, queued moves and last move are dropped and
// the grid is synced to b. A nil generator keeps the current one.
func (v *BoardView) Reset(b board.Snapshot, moves MoveGenerator) {
	if moves != nil {
		v.moves = moves
	}
	v.anim = nil
	v.queue = nil
	v.lastMove = board.InvalidMove
	v.SyncAll(b)
	v.ResetColours(false)
}
