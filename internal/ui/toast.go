package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast is a short message over the board.
type Toast struct {
	Message  string
	Type     ToastType
	Age      time.Duration
	Duration time.Duration
}

// ToastManager keeps the most recent toasts.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{Message: message, Type: toastType, Duration: duration})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update ages every toast by dt and drops expired ones.
func (tm *ToastManager) Update(dt time.Duration) {
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		t.Age += dt
		if t.Age < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders the active toasts centred over a board of the given width.
func (tm *ToastManager) Draw(screen *ebiten.Image, boardWidth, scale float64) {
	face := regularFace(toastFontSize * scale)
	if face == nil {
		return
	}

	y := 40 * scale
	for _, t := range tm.toasts {
		alpha := 1.0
		const fade = 200 * time.Millisecond
		if t.Age < fade {
			alpha = float64(t.Age) / float64(fade)
		} else if remaining := t.Duration - t.Age; remaining < fade {
			alpha = float64(remaining) / float64(fade)
		}

		var bg color.RGBA
		switch t.Type {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bg = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12 * scale
		boxW, boxH := w+padding*2, h+padding*2
		x := boardWidth/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, uint8(255 * alpha)})
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8*scale
	}
}
