package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/view"
)

// Background is the colour behind the board and the tray.
var Background = color.RGBA{40, 44, 52, 255}

// Renderer draws a BoardView.
type Renderer struct {
	theme view.BoardThemeLookup
	scale float64 // HiDPI scale factor
}

// NewRenderer creates a renderer that colours labels from theme.
func NewRenderer(theme view.BoardThemeLookup) *Renderer {
	return &Renderer{theme: theme, scale: 1.0}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// Viewport is the pixel mapping of the board at the current scale.
func (r *Renderer) Viewport() view.Viewport {
	return view.Viewport{Square: SquareSize * r.scale}
}

// DrawBoard fills every square with its current colour.
func (r *Renderer) DrawBoard(screen *ebiten.Image, v *view.BoardView) {
	vp := r.Viewport()
	side := float32(vp.Square)
	for _, sq := range v.Squares() {
		x, y := vp.SquareRect(sq.Position)
		vector.DrawFilledRect(screen, float32(x), float32(y), side, side, sq.Colour(), false)
	}
	r.drawCoordinates(screen, v)
}

// drawCoordinates labels the files along the bottom edge and the ranks along the left
// edge, in the normal colour of the opposite square class.
func (r *Renderer) drawCoordinates(screen *ebiten.Image, v *view.BoardView) {
	face := boldFace(labelFontSize * r.scale)
	if face == nil {
		return
	}
	vp := r.Viewport()
	pad := 3 * r.scale

	bottomRank, leftFile := 0, 0
	if !v.WhiteIsBottom() {
		bottomRank, leftFile = 7, 7
	}

	for i := 0; i < 8; i++ {
		fileSq, _ := v.Square(board.NewCoord(i, bottomRank))
		x, y := vp.SquareRect(fileSq.Position)
		label := string(rune('a' + i))
		w, h := MeasureText(label, face)
		r.drawLabel(screen, label, face, fileSq.Coord, x+vp.Square-w-pad, y+vp.Square-h-pad)

		rankSq, _ := v.Square(board.NewCoord(leftFile, i))
		x, y = vp.SquareRect(rankSq.Position)
		r.drawLabel(screen, strconv.Itoa(i+1), face, rankSq.Coord, x+pad, y+pad)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, c board.Coord, x, y float64) {
	light, dark := r.theme.ColorsFor(view.RoleNormal)
	col := light
	if c.IsLightSquare() {
		col = dark
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

// DrawPieces draws every sprite back to front, the moving piece last.
func (r *Renderer) DrawPieces(screen *ebiten.Image, v *view.BoardView) {
	vp := r.Viewport()
	for _, sq := range v.DrawOrder() {
		cx, cy := vp.ToScreen(sq.PiecePosition)
		DrawCentred(screen, sq.Sprite, cx, cy, vp.Square)
	}
}
