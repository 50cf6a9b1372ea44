package render

import (
	"strings"

	"toroid/pkg/sims/life"
)

// Glyph returns the character used for s in plain-text snapshots.
func Glyph(s life.CellState) byte {
	switch s {
	case life.Living:
		return '+'
	case life.Dying:
		return '-'
	case life.Live:
		return 'O'
	default:
		return '.'
	}
}

// Text renders the grid one character per cell, one line per row.
func Text(g *life.Grid) string {
	w, h := g.Dimensions()
	var b strings.Builder
	b.Grow((w + 1) * h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s, _ := g.CellState(row, col)
			b.WriteByte(Glyph(s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
