package view

import (
	"github.com/hailam/chessview/internal/board"
	"github.com/lucasb-eyer/go-colorful"
)

// LegalMoveDarken scales every channel of the gradient endpoints for legal move targets.
const LegalMoveDarken = 0.7

// maxFileRankSum is the file+rank sum of h8.
const maxFileRankSum = 14.0

// GradientFactor returns (file+rank)/14: 0 at a1, 1 at h8.
func GradientFactor(c board.Coord) float64 {
	return float64(c.File+c.Rank) / maxFileRankSum
}

// colourEngine computes square colours from a theme.
type colourEngine struct {
	theme BoardThemeLookup
	flat  bool // legal targets use the theme's legal_move colours instead of the gradient
}

func (e colourEngine) gradient(c board.Coord, scale float64) colorful.Color {
	lightStart, darkStart := e.theme.ColorsFor(RoleGradientStart)
	lightEnd, darkEnd := e.theme.ColorsFor(RoleGradientEnd)

	start, end := darkStart, darkEnd
	if c.IsLightSquare() {
		start, end = lightStart, lightEnd
	}
	if scale != 1 {
		start = darken(start, scale)
		end = darken(end, scale)
	}
	return start.BlendRgb(end, GradientFactor(c))
}

// baseColour is the gradient colour of the square's class.
func (e colourEngine) baseColour(c board.Coord) colorful.Color {
	return e.gradient(c, 1)
}

// legalMoveColour is the same gradient with darkened endpoints.
func (e colourEngine) legalMoveColour(c board.Coord) colorful.Color {
	if e.flat {
		light, dark := e.theme.ColorsFor(RoleLegalMoveTarget)
		return pick(c, light, dark)
	}
	return e.gradient(c, LegalMoveDarken)
}

func darken(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

func pick(c board.Coord, light, dark colorful.Color) colorful.Color {
	if c.IsLightSquare() {
		return light
	}
	return dark
}

// ApplyOverlay colours a single square, choosing the variant that matches the square's
// class. The write replaces whatever the square showed before.
func (v *BoardView) ApplyOverlay(c board.Coord, layer Layer, light, dark colorful.Color) {
	if !c.IsValid() || layer < LayerBase || layer >= numLayers {
		v.log.Sugar().Warnf("overlay ignored: square %v layer %d", c, layer)
		return
	}
	v.square(c).setLayer(layer, pick(c, light, dark))
}

// ResetColours drops every overlay and recomputes the base gradient. With
// highlightLastMove the last made move is highlighted again on top.
func (v *BoardView) ResetColours(highlightLastMove bool) {
	for i := range v.squares {
		sq := &v.squares[i]
		sq.clearOverlays(v.colours.baseColour(sq.Coord))
	}

	if highlightLastMove {
		v.highlightMove(v.lastMove)
	}
}

// highlightMove marks the start and target squares of m. The sentinel is ignored.
func (v *BoardView) highlightMove(m board.Move) {
	if m.IsInvalid() {
		return
	}
	fromLight, fromDark := v.colours.theme.ColorsFor(RoleMoveFromHighlight)
	toLight, toDark := v.colours.theme.ColorsFor(RoleMoveToHighlight)
	v.ApplyOverlay(board.CoordFromIndex(m.Start()), LayerMoveHighlight, fromLight, fromDark)
	v.ApplyOverlay(board.CoordFromIndex(m.Target()), LayerMoveHighlight, toLight, toDark)
}

// SelectSquare marks c as selected.
func (v *BoardView) SelectSquare(c board.Coord) {
	light, dark := v.colours.theme.ColorsFor(RoleSelected)
	v.ApplyOverlay(c, LayerSelection, light, dark)
}

// DeselectSquare clears the selection. Every transient overlay goes with it, so the
// argument only documents which square the caller had selected.
func (v *BoardView) DeselectSquare(c board.Coord) {
	v.log.Sugar().Debugf("deselect %v", c)
	v.ResetColours(true)
}
