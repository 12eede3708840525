package view

import (
	"time"

	"github.com/hailam/chessview/internal/board"
)

// DefaultMoveDuration is how long a piece takes to slide to its target square.
const DefaultMoveDuration = 150 * time.Millisecond

// AnimState is the state of the move animator.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimAnimating
)

func (s AnimState) String() string {
	if s == AnimAnimating {
		return "animating"
	}
	return "idle"
}

// RestartPolicy decides what happens to a move that arrives mid-animation.
type RestartPolicy int

const (
	// PolicyCancel snaps the running animation to its end state, then handles the new move.
	PolicyCancel RestartPolicy = iota
	// PolicyQueue holds the new move until the running animation completes.
	PolicyQueue
)

// MoveAnimation interpolates one piece from its start square to its target square.
type MoveAnimation struct {
	Move   board.Move
	From   board.Coord
	Start  Vec3
	Target Vec3

	board    board.Snapshot
	t        float64
	duration time.Duration
}

// PositionAt samples the interpolation: t=0 is the start square, t=1 the target.
func (a *MoveAnimation) PositionAt(t float64) Vec3 {
	return Lerp(a.Start, a.Target, t)
}

// Progress returns the interpolation parameter reached so far.
func (a *MoveAnimation) Progress() float64 {
	return a.t
}

type pendingMove struct {
	board   board.Snapshot
	move    board.Move
	animate bool
}

// OnMoveMade shows a move that the game layer has already applied to b.
// An invalid move resyncs the board without touching the last move.
func (v *BoardView) OnMoveMade(b board.Snapshot, m board.Move, animate bool) {
	if v.anim != nil {
		if v.policy == PolicyQueue {
			v.queue = append(v.queue, pendingMove{board: b, move: m, animate: animate})
			v.log.Sugar().Debugf("queued move %v behind %v", m, v.anim.Move)
			return
		}
		v.log.Sugar().Debugf("move %v cancels animation of %v", m, v.anim.Move)
		v.finishAnimation()
	}
	v.handleMove(pendingMove{board: b, move: m, animate: animate})
	v.drainQueue()
}

func (v *BoardView) handleMove(p pendingMove) {
	if p.move.IsInvalid() {
		v.SyncAll(p.board)
		v.ResetColours(true)
		return
	}

	v.lastMove = p.move
	if !p.animate {
		v.syncMove(p.board, p.move)
		v.ResetColours(true)
		return
	}
	v.startAnimation(p.board, p.move)
}

func (v *BoardView) startAnimation(b board.Snapshot, m board.Move) {
	from := board.CoordFromIndex(m.Start())
	to := board.CoordFromIndex(m.Target())
	v.anim = &MoveAnimation{
		Move:     m,
		From:     from,
		Start:    CoordPosition(from, v.whiteIsBottom, PieceDepth),
		Target:   CoordPosition(to, v.whiteIsBottom, PieceDepth),
		board:    b,
		duration: v.duration,
	}

	light, dark := v.colours.theme.ColorsFor(RoleMoveFromHighlight)
	v.ApplyOverlay(from, LayerMoveHighlight, light, dark)
	v.log.Sugar().Debugf("animating %v over %v", m, v.duration)
}

// Tick advances the animation by one frame. Non-positive deltas are ignored.
// It reports whether an animation completed, in which case square colours were reset
// and any selection overlay must be applied again.
func (v *BoardView) Tick(dt time.Duration) bool {
	a := v.anim
	if a == nil || dt <= 0 {
		return false
	}

	a.t += dt.Seconds() / a.duration.Seconds()
	v.square(a.From).PiecePosition = a.PositionAt(a.t)

	if a.t <= 1 {
		return false
	}
	v.finishAnimation()
	v.drainQueue()
	return true
}

// finishAnimation reconciles the grid with the animated move's board.
func (v *BoardView) finishAnimation() {
	a := v.anim
	if a == nil {
		return
	}
	v.anim = nil

	v.syncMove(a.board, a.Move)
	v.ResetColours(true)
	v.square(a.From).PiecePosition = a.Start
	v.log.Sugar().Debugf("animation of %v complete", a.Move)
}

// drainQueue starts queued moves until one of them animates.
func (v *BoardView) drainQueue() {
	for v.anim == nil && len(v.queue) > 0 {
		next := v.queue[0]
		v.queue = v.queue[1:]
		v.handleMove(next)
	}
}

// settle completes the running animation and applies every queued move without
// animating it.
func (v *BoardView) settle() {
	v.finishAnimation()
	for len(v.queue) > 0 {
		next := v.queue[0]
		v.queue = v.queue[1:]
		next.animate = false
		v.handleMove(next)
	}
}

// AnimationState reports whether a move is being animated.
func (v *BoardView) AnimationState() AnimState {
	if v.anim != nil {
		return AnimAnimating
	}
	return AnimIdle
}

// Animation returns the running animation, or nil.
func (v *BoardView) Animation() *MoveAnimation {
	return v.anim
}

// QueuedMoves returns how many moves wait behind the running animation.
func (v *BoardView) QueuedMoves() int {
	return len(v.queue)
}
