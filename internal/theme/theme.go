// Package theme provides the selenized and solarized color themes.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Scheme is a color scheme family
type Scheme string

const (
	Selenized Scheme = "selenized"
	Solarized Scheme = "solarized"
)

// Mode is a brightness variant of a scheme
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
	White Mode = "white" // high contrast light
	Black Mode = "black" // high contrast dark
)

var (
	ErrUnrecognized = errors.New("unrecognized color theme")
	ErrNoHighMode   = errors.New("solarized scheme has no white or black mode")
)

// Theme is a scheme in one mode
type Theme struct {
	Scheme Scheme
	Mode   Mode
}

// Default is the theme used when nothing else is chosen
var Default = Theme{Scheme: Selenized, Mode: Light}

func (t Theme) String() string {
	return string(t.Scheme) + " " + string(t.Mode)
}

// Change parses a theme description such as "solarized dark", "dark" or
// "selenized". A missing scheme keeps the current one unless it cannot
// provide the mode; a missing mode means light.
func (t Theme) Change(to string) (Theme, error) {
	var scheme Scheme
	var mode Mode
	for _, w := range strings.Fields(strings.ToLower(to)) {
		switch {
		case scheme == "" && isScheme(w):
			scheme = Scheme(w)
		case mode == "" && isMode(w):
			mode = Mode(w)
		default:
			return t, fmt.Errorf("%w: %q", ErrUnrecognized, to)
		}
	}
	if scheme == "" && mode == "" {
		return t, fmt.Errorf("%w: %q", ErrUnrecognized, to)
	}
	if scheme == Solarized && mode.High() {
		return t, ErrNoHighMode
	}
	if scheme == "" {
		scheme = Selenized
		if t.Scheme == Solarized && !mode.High() {
			scheme = Solarized
		}
	} else if mode == "" {
		mode = Light
	}
	return Theme{Scheme: scheme, Mode: mode}, nil
}

// Parse reads a theme description relative to Default
func Parse(s string) (Theme, error) {
	return Default.Change(s)
}

func isScheme(w string) bool {
	return w == string(Selenized) || w == string(Solarized)
}

func isMode(w string) bool {
	switch Mode(w) {
	case Light, Dark, White, Black:
		return true
	}
	return false
}

// High reports whether the mode is a high contrast one
func (m Mode) High() bool {
	return m == White || m == Black
}

// IsDark reports whether the mode has a dark background
func (m Mode) IsDark() bool {
	return m == Dark || m == Black
}

// FromToggles maps the dark and high contrast switches to a mode
func FromToggles(dark, high bool) Mode {
	switch {
	case dark && high:
		return Black
	case dark:
		return Dark
	case high:
		return White
	default:
		return Light
	}
}

// Toggles is the inverse of FromToggles
func (m Mode) Toggles() (dark, high bool) {
	return m.IsDark(), m.High()
}

// All lists every theme in cycling order
var All = []Theme{
	{Selenized, Light},
	{Selenized, Dark},
	{Selenized, White},
	{Selenized, Black},
	{Solarized, Light},
	{Solarized, Dark},
}

// Next returns the theme after t in cycling order
func (t Theme) Next() Theme {
	for i, th := range All {
		if th == t {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// WithToggles switches the mode from the dark and high contrast switches,
// falling back to selenized when solarized cannot provide it.
func (t Theme) WithToggles(dark, high bool) Theme {
	next, err := t.Change(string(FromToggles(dark, high)))
	if err != nil {
		return Default
	}
	return next
}

// Palette is the set of named colors of a theme
type Palette struct {
	Bg0, Bg1, Bg2   colorful.Color
	Dim0, Fg0, Fg1  colorful.Color
	Red, Orange     colorful.Color
	Yellow, Green   colorful.Color
	Cyan, Blue      colorful.Color
	Violet, Magenta colorful.Color
}

// Palette returns the colors of t
func (t Theme) Palette() Palette {
	if t.Scheme == Solarized {
		return solarizedPalette(t.Mode.IsDark())
	}
	switch t.Mode {
	case Dark:
		return selenizedDark
	case White:
		return selenizedWhite
	case Black:
		return selenizedBlack
	default:
		return selenizedLight
	}
}

// Color converts a palette color for lipgloss
func Color(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// Blend mixes a toward b by t in [0,1], in Lab space
func Blend(a, b colorful.Color, t float64) lipgloss.Color {
	return Color(a.BlendLab(b, t))
}

// Faded is a color pushed most of the way into the background
func (p Palette) Faded(c colorful.Color) lipgloss.Color {
	return Blend(c, p.Bg0, 0.6)
}
