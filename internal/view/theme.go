package view

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrIncompleteTheme is returned when a theme lacks a colour the board needs.
var ErrIncompleteTheme = errors.New("incomplete board theme")

// ColourRole names one colour of a square class.
type ColourRole int

const (
	RoleNormal ColourRole = iota
	RoleSelected
	RoleLegalMoveTarget
	RoleMoveFromHighlight
	RoleMoveToHighlight
	// Gradient endpoints for the base layer, interpolated by (file+rank)/14.
	RoleGradientStart
	RoleGradientEnd
)

// AllRoles lists every role a complete theme defines for both square classes.
var AllRoles = []ColourRole{
	RoleNormal,
	RoleSelected,
	RoleLegalMoveTarget,
	RoleMoveFromHighlight,
	RoleMoveToHighlight,
	RoleGradientStart,
	RoleGradientEnd,
}

func (r ColourRole) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleSelected:
		return "selected"
	case RoleLegalMoveTarget:
		return "legal_move"
	case RoleMoveFromHighlight:
		return "move_from"
	case RoleMoveToHighlight:
		return "move_to"
	case RoleGradientStart:
		return "gradient_start"
	case RoleGradientEnd:
		return "gradient_end"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// SquareColours holds the colours of one square class.
type SquareColours map[ColourRole]colorful.Color

// Theme defines the colour scheme for the board.
type Theme struct {
	Name         string
	LightSquares SquareColours
	DarkSquares  SquareColours
}

// ColorsFor returns the light and dark variants of a role.
func (t *Theme) ColorsFor(role ColourRole) (light, dark colorful.Color) {
	return t.LightSquares[role], t.DarkSquares[role]
}

// Validate reports the first missing colour entry.
func (t *Theme) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: no theme", ErrIncompleteTheme)
	}
	for _, role := range AllRoles {
		if _, ok := t.LightSquares[role]; !ok {
			return fmt.Errorf("%w: %q has no light %s colour", ErrIncompleteTheme, t.Name, role)
		}
		if _, ok := t.DarkSquares[role]; !ok {
			return fmt.Errorf("%w: %q has no dark %s colour", ErrIncompleteTheme, t.Name, role)
		}
	}
	return nil
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// DefaultTheme returns the default pink-to-violet gradient theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "orchid",
		LightSquares: SquareColours{
			RoleNormal:            rgb255(238, 216, 192),
			RoleSelected:          rgb255(236, 197, 123),
			RoleLegalMoveTarget:   rgb255(89, 171, 221),
			RoleMoveFromHighlight: rgb255(207, 172, 106),
			RoleMoveToHighlight:   rgb255(221, 208, 124),
			RoleGradientStart:     rgb255(220, 92, 144),
			RoleGradientEnd:       rgb255(169, 91, 207),
		},
		DarkSquares: SquareColours{
			RoleNormal:            rgb255(171, 121, 101),
			RoleSelected:          rgb255(200, 158, 80),
			RoleLegalMoveTarget:   rgb255(62, 144, 195),
			RoleMoveFromHighlight: rgb255(197, 158, 54),
			RoleMoveToHighlight:   rgb255(197, 173, 96),
			RoleGradientStart:     rgb255(192, 84, 140),
			RoleGradientEnd:       rgb255(152, 85, 187),
		},
	}
}
