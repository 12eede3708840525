// Package assets holds the embedded piece artwork and rasterises it.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/view"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed pieces/*.svg
var pieceAssets embed.FS

var pieceFiles = map[board.Piece]string{
	board.WhitePawn:   "pieces/wP.svg",
	board.WhiteKnight: "pieces/wN.svg",
	board.WhiteBishop: "pieces/wB.svg",
	board.WhiteRook:   "pieces/wR.svg",
	board.WhiteQueen:  "pieces/wQ.svg",
	board.WhiteKing:   "pieces/wK.svg",
	board.BlackPawn:   "pieces/bP.svg",
	board.BlackKnight: "pieces/bN.svg",
	board.BlackBishop: "pieces/bB.svg",
	board.BlackRook:   "pieces/bR.svg",
	board.BlackQueen:  "pieces/bQ.svg",
	board.BlackKing:   "pieces/bK.svg",
}

// Rasterize renders the artwork for p into a size x size image.
func Rasterize(p board.Piece, size int) (*image.RGBA, error) {
	path, ok := pieceFiles[p]
	if !ok {
		return nil, fmt.Errorf("no artwork for piece %q", p)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}

	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return rgba, nil
}

// Images is a rasterised piece set. It implements view.PieceThemeLookup.
type Images map[board.Piece]*image.RGBA

// LoadImages rasterises every piece at the given size.
func LoadImages(size int) (Images, error) {
	imgs := make(Images, len(pieceFiles))
	for p := range pieceFiles {
		img, err := Rasterize(p, size)
		if err != nil {
			return nil, err
		}
		imgs[p] = img
	}
	return imgs, nil
}

// SpriteFor returns the image for p, or nil for an empty square.
func (imgs Images) SpriteFor(p board.Piece) view.Sprite {
	img, ok := imgs[p]
	if !ok {
		return nil
	}
	return img
}
