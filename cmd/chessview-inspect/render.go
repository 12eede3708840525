package main

import (
	"image"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/view"
	"golang.org/x/image/font/gofont/gobold"
)

// render draws the view's current state into an image with square-pixel squares.
func render(v *view.BoardView, theme view.BoardThemeLookup, square int) (image.Image, error) {
	vp := view.Viewport{Square: float64(square)}
	size := int(vp.Size())
	dc := gg.NewContext(size, size)

	for _, sq := range v.Squares() {
		x, y := vp.SquareRect(sq.Position)
		dc.SetColor(sq.Colour())
		dc.DrawRectangle(x, y, vp.Square, vp.Square)
		dc.Fill()
	}

	if err := drawLabels(dc, v, theme, vp); err != nil {
		return nil, err
	}

	for _, sq := range v.DrawOrder() {
		img, ok := sq.Sprite.(image.Image)
		if !ok {
			continue
		}
		cx, cy := vp.ToScreen(sq.PiecePosition)
		dc.DrawImageAnchored(img, int(cx), int(cy), 0.5, 0.5)
	}
	return dc.Image(), nil
}

func drawLabels(dc *gg.Context, v *view.BoardView, theme view.BoardThemeLookup, vp view.Viewport) error {
	font, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return err
	}
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: vp.Square / 6}))

	light, dark := theme.ColorsFor(view.RoleNormal)
	pad := vp.Square / 20

	bottomRank, leftFile := 0, 0
	if !v.WhiteIsBottom() {
		bottomRank, leftFile = 7, 7
	}
	label := func(c board.Coord, s string, ax, ay float64) {
		sq, _ := v.Square(c)
		x, y := vp.SquareRect(sq.Position)
		if c.IsLightSquare() {
			dc.SetColor(dark)
		} else {
			dc.SetColor(light)
		}
		dc.DrawStringAnchored(s, x+pad+ax*(vp.Square-2*pad), y+pad+ay*(vp.Square-2*pad), ax, ay)
	}
	for i := 0; i < 8; i++ {
		label(board.NewCoord(i, bottomRank), string(rune('a'+i)), 1, 1)
		label(board.NewCoord(leftFile, i), strconv.Itoa(i+1), 0, 0)
	}
	return nil
}
