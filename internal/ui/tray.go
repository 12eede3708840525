package ui

import (
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessview/internal/view"
)

// CapturedTray shows captured pieces in a strip under the board. It implements
// view.CapturedPieceTray.
type CapturedTray struct {
	sprites []view.Sprite
	panel   *ebiten.Image
	panelW  int
	panelH  int
}

// NewCapturedTray creates an empty tray.
func NewCapturedTray() *CapturedTray {
	return &CapturedTray{}
}

// Add appends a captured piece.
func (t *CapturedTray) Add(s view.Sprite) {
	t.sprites = append(t.sprites, s)
}

// Reset empties the tray for a new game.
func (t *CapturedTray) Reset() {
	t.sprites = nil
}

// Len returns the number of captured pieces shown.
func (t *CapturedTray) Len() int {
	return len(t.sprites)
}

// panelImage renders the rounded background once per size.
func (t *CapturedTray) panelImage(w, h int, scale float64) *ebiten.Image {
	if t.panel != nil && t.panelW == w && t.panelH == h {
		return t.panel
	}
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(60, 64, 72, 255)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), 8*scale)
	dc.Fill()

	t.panel = ebiten.NewImageFromImage(dc.Image())
	t.panelW, t.panelH = w, h
	return t.panel
}

// Draw paints the tray into the rectangle at (x, y) of size w x h. Pieces wrap onto a
// second row when the first is full.
func (t *CapturedTray) Draw(screen *ebiten.Image, x, y, w, h, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(t.panelImage(int(w), int(h), scale), op)

	pad := 4 * scale
	size := (h - 3*pad) / 2
	perRow := int((w - pad) / (size + pad))
	if perRow < 1 {
		return
	}
	for i, s := range t.sprites {
		row, col := i/perRow, i%perRow
		if row > 1 {
			break
		}
		cx := x + pad + float64(col)*(size+pad) + size/2
		cy := y + pad + float64(row)*(size+pad) + size/2
		DrawCentred(screen, s, cx, cy, size)
	}
}
