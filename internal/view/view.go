// Package view keeps the render state of a chessboard: square colours, piece sprites and
// their world positions, the last move highlight and the move animation.
//
// All methods must be called from the same scheduling context (the game loop). Nothing
// in this package blocks or spawns goroutines; the only time-dependent state advances in
// BoardView.Tick.
package view

import (
	"image"

	"github.com/hailam/chessview/internal/board"
	"github.com/lucasb-eyer/go-colorful"
)

// Sprite is anything the frontend can draw for a piece. *ebiten.Image and *image.RGBA
// both satisfy it.
type Sprite interface {
	Bounds() image.Rectangle
}

// MoveGenerator is the rules engine. It returns every legal move for a snapshot.
type MoveGenerator interface {
	GenerateMoves(b board.Snapshot) []board.Move
}

// PieceThemeLookup resolves the sprite for a piece code. A nil Sprite renders nothing.
type PieceThemeLookup interface {
	SpriteFor(p board.Piece) Sprite
}

// BoardThemeLookup resolves a colour role into its light and dark square variants.
type BoardThemeLookup interface {
	ColorsFor(role ColourRole) (light, dark colorful.Color)
}

// CapturedPieceTray receives the sprite of every captured piece, in capture order.
type CapturedPieceTray interface {
	Add(s Sprite)
}

// Layer names what an overlay marks. It does not rank overlays: the latest write to a
// square decides its colour. Call sites follow the order base, selection, legal move
// target, move highlight, so within one refresh the later concern shows.
type Layer int

const (
	LayerBase Layer = iota
	LayerSelection
	LayerLegalMove
	LayerMoveHighlight
	numLayers
)

// VisualSquare is the render record of one board square.
type VisualSquare struct {
	Coord         board.Coord
	Position      Vec3 // square centre, depth 0
	PiecePosition Vec3
	Piece         board.Piece
	Sprite        Sprite

	base    colorful.Color
	overlay colorful.Color
	top     Layer
}

// Colour returns the effective display colour: the last overlay written, or the base.
func (s VisualSquare) Colour() colorful.Color {
	if s.top == LayerBase {
		return s.base
	}
	return s.overlay
}

// BaseColour returns the themed gradient colour beneath any overlay.
func (s VisualSquare) BaseColour() colorful.Color {
	return s.base
}

// TopLayer returns the layer of the last overlay written, or LayerBase.
func (s VisualSquare) TopLayer() Layer {
	return s.top
}

func (s *VisualSquare) setLayer(l Layer, c colorful.Color) {
	if l == LayerBase {
		s.base, s.top = c, LayerBase
		return
	}
	s.overlay, s.top = c, l
}

func (s *VisualSquare) clearOverlays(base colorful.Color) {
	s.base = base
	s.overlay = colorful.Color{}
	s.top = LayerBase
}
