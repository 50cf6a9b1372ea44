package render

import (
	"fmt"
	"image/color"
	"strings"

	"toroid/pkg/sims/life"
)

// Palette maps every cell state to a display color.
type Palette struct {
	Dead   color.RGBA
	Living color.RGBA
	Dying  color.RGBA
	Live   color.RGBA
}

// DefaultPalette returns the stock colors: a dark background for dead
// cells, green for births, red for deaths and a light tone for live cells.
func DefaultPalette() Palette {
	return Palette{
		Dead:   color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
		Living: color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff},
		Dying:  color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff},
		Live:   color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff},
	}
}

// Color returns the color for s. Unknown states render as Dead.
func (p Palette) Color(s life.CellState) color.RGBA {
	switch s {
	case life.Living:
		return p.Living
	case life.Dying:
		return p.Dying
	case life.Live:
		return p.Live
	default:
		return p.Dead
	}
}

// ParseHex decodes "#rrggbb" or "#rrggbbaa" into an opaque or translucent
// color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.RGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.RGBA{}, fmt.Errorf("render: color %q: expected #rrggbb", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: color %q: %w", s, err)
	}
	return c, nil
}

// Hex formats c as "#rrggbb", appending alpha only when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
