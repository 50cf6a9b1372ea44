package render

import (
	"image"

	"toroid/pkg/core"
)

// Layout describes how a grid of square-ish tiles is fitted into a screen.
// Leftover pixels that do not fit a whole tile form a border split evenly
// between both sides.
type Layout struct {
	TileW, TileH int
	Line         int

	Cols, Rows       int
	BorderW, BorderH int
	ScreenW, ScreenH int
}

// NewLayout fits as many tiles as possible into a screenW x screenH area.
// Tiles are separated by grid lines of the given thickness. The result
// always has at least one row and one column.
func NewLayout(screenW, screenH, tileW, tileH, line int) Layout {
	tileW = max(tileW, 1)
	tileH = max(tileH, 1)
	line = max(line, 0)
	l := Layout{TileW: tileW, TileH: tileH, Line: line, ScreenW: screenW, ScreenH: screenH}
	l.Cols, l.BorderW = fit(screenW, tileW, line)
	l.Rows, l.BorderH = fit(screenH, tileH, line)
	return l
}

func fit(screen, tile, line int) (int, int) {
	avail := screen - line
	pitch := tile + line
	if avail < pitch {
		return 1, 0
	}
	return avail / pitch, avail % pitch
}

// Size returns the grid dimensions in cells.
func (l Layout) Size() core.Size { return core.Size{W: l.Cols, H: l.Rows} }

func (l Layout) origin() (int, int) {
	return l.Line + l.BorderW/2, l.Line + l.BorderH/2
}

// TileRect returns the pixel rectangle covered by the tile at (row, col).
func (l Layout) TileRect(row, col int) image.Rectangle {
	ox, oy := l.origin()
	x := ox + col*(l.TileW+l.Line)
	y := oy + row*(l.TileH+l.Line)
	return image.Rect(x, y, x+l.TileW, y+l.TileH)
}

// Bounds returns the rectangle spanned by all tiles and grid lines,
// including the outer frame.
func (l Layout) Bounds() image.Rectangle {
	first := l.TileRect(0, 0)
	last := l.TileRect(l.Rows-1, l.Cols-1)
	return image.Rectangle{Min: first.Min, Max: last.Max}.Inset(-l.Line)
}

// CellAt converts a pixel position into grid coordinates. ok is false when
// the position lies in the border or beyond the last tile. A grid line
// belongs to the tile before it.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	ox, oy := l.origin()
	dx, dy := x-ox, y-oy
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	col = dx / (l.TileW + l.Line)
	row = dy / (l.TileH + l.Line)
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}
