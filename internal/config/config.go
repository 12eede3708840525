// Package config loads the board colour theme from the user's config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/hailam/chessview/internal/view"
	"github.com/lucasb-eyer/go-colorful"
)

var themeFile = "chessview/theme.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// RoleColours is the pair of hex colours for one role, e.g. {"light": "#dc5c90"}.
type RoleColours struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// ThemeConfig is the on-disk form of a view.Theme. Colours are keyed by role name.
type ThemeConfig struct {
	Name    string                 `json:"name"`
	Colours map[string]RoleColours `json:"colours"`
}

// DefaultThemeConfig describes view.DefaultTheme.
func DefaultThemeConfig() ThemeConfig {
	return FromTheme(view.DefaultTheme())
}

// FromTheme converts a theme to its file form.
func FromTheme(t *view.Theme) ThemeConfig {
	cfg := ThemeConfig{Name: t.Name, Colours: make(map[string]RoleColours, len(view.AllRoles))}
	for _, role := range view.AllRoles {
		light, dark := t.ColorsFor(role)
		cfg.Colours[role.String()] = RoleColours{Light: light.Hex(), Dark: dark.Hex()}
	}
	return cfg
}

// Load reads theme.json from the XDG config directories. Without a file the default
// theme is returned; path is empty in that case.
func Load() (cfg *ThemeConfig, path string, err error) {
	path, err = xdg.SearchConfigFile(themeFile)
	if err != nil {
		def := DefaultThemeConfig()
		return &def, "", nil
	}
	cfg, err = LoadFile(path)
	return cfg, path, err
}

// LoadFile reads a theme file. Entries are not merged with the defaults.
func LoadFile(path string) (*ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var cfg ThemeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfig{fmt.Sprintf("%s: %v", path, err)}
	}
	return &cfg, nil
}

// Build parses every colour and checks the theme is complete.
func (c *ThemeConfig) Build() (*view.Theme, error) {
	t := &view.Theme{
		Name:         c.Name,
		LightSquares: make(view.SquareColours, len(view.AllRoles)),
		DarkSquares:  make(view.SquareColours, len(view.AllRoles)),
	}
	for _, role := range view.AllRoles {
		entry, ok := c.Colours[role.String()]
		if !ok {
			return nil, &InvalidConfig{fmt.Sprintf("theme %q has no %q colours", c.Name, role)}
		}
		light, err := parseHex(role, "light", entry.Light)
		if err != nil {
			return nil, err
		}
		dark, err := parseHex(role, "dark", entry.Dark)
		if err != nil {
			return nil, err
		}
		t.LightSquares[role] = light
		t.DarkSquares[role] = dark
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseHex(role view.ColourRole, class, s string) (colorful.Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, &InvalidConfig{fmt.Sprintf("%s %s colour %q: %v", class, role, s, err)}
	}
	return col, nil
}

// Save writes the theme to the user's XDG config directory and returns the path.
func (c *ThemeConfig) Save() (string, error) {
	path, err := xdg.ConfigFile(themeFile)
	if err != nil {
		return "", err
	}
	return path, c.SaveFile(path, 0o664)
}

// SaveFile writes the theme as indented JSON.
func (c *ThemeConfig) SaveFile(path string, perm fs.FileMode) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// IsInvalid reports whether err came from a malformed theme.
func IsInvalid(err error) bool {
	var invalid *InvalidConfig
	return errors.As(err, &invalid)
}
