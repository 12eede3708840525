// Package ui is the Ebitengine frontend of the board view.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessview/internal/assets"
	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/view"
	"go.uber.org/zap"
)

// SpriteManager holds the piece images. It implements view.PieceThemeLookup.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager rasterises every piece for the given display size.
func NewSpriteManager(size int, log *zap.Logger) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}

	renderSize := int(float64(size) * sm.renderScale)
	for _, p := range board.AllPieces {
		rgba, err := assets.Rasterize(p, renderSize)
		if err != nil {
			log.Warn("piece sprite unavailable", zap.Stringer("piece", p), zap.Error(err))
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(rgba)
	}
	return sm
}

// SpriteFor returns the image for p, or nil when there is none.
func (sm *SpriteManager) SpriteFor(p board.Piece) view.Sprite {
	img, ok := sm.pieces[p]
	if !ok {
		return nil
	}
	return img
}

// DrawCentred draws s scaled to size pixels with its centre at (cx, cy). Sprites that
// are not ebiten images are skipped.
func DrawCentred(screen *ebiten.Image, s view.Sprite, cx, cy, size float64) {
	img, ok := s.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	scale := size / w

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-size/2, cy-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
