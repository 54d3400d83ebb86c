package frame

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB terminal color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	ColorBlack   = Color{0, 0, 0}
	ColorWhite   = Color{255, 255, 255}
	ColorRed     = Color{255, 0, 0}
	ColorGreen   = Color{0, 255, 0}
	ColorBlue    = Color{0, 0, 255}
	ColorYellow  = Color{255, 255, 0}
	ColorCyan    = Color{0, 255, 255}
	ColorMagenta = Color{255, 0, 255}
	ColorGray    = Color{128, 128, 128}
)

// Default frame colors: white on black, matching a plain terminal.
var (
	DefaultFg = ColorWhite
	DefaultBg = ColorBlack
)

func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// FromHex parses "#RRGGBB" (or "#RGB") into a Color.
func FromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Cell is one terminal character position: a glyph plus its colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// DefaultCell is the value every cell holds after New or Clear.
func DefaultCell() Cell {
	return Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}
}
