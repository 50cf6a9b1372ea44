// Package patterns holds a registry of well-known Life patterns and stamps
// them onto a grid.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"toroid/pkg/core"
	"toroid/pkg/sims/life"
)

// ErrTooLarge is returned when a pattern does not fit on the target grid.
var ErrTooLarge = errors.New("patterns: pattern larger than grid")

// Pattern is a named arrangement of live cells. Rows use 'O' for a live cell
// and '.' for a dead one.
type Pattern struct {
	Name        string
	Description string
	Rows        []string
}

// Size returns the bounding box of the pattern.
func (p Pattern) Size() core.Size {
	w := 0
	for _, r := range p.Rows {
		w = max(w, len(r))
	}
	return core.Size{W: w, H: len(p.Rows)}
}

// Cells returns the live cells relative to the top-left corner.
func (p Pattern) Cells() []core.Cell {
	var out []core.Cell
	for row, line := range p.Rows {
		for col, ch := range line {
			if ch == 'O' {
				out = append(out, core.Cell{Row: row, Col: col})
			}
		}
	}
	return out
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered pattern names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the live cells of p on g with the pattern's top-left corner at
// (row, col). Coordinates wrap around the grid edges. Nothing is written if
// the pattern is larger than the grid.
func Stamp(g *life.Grid, p Pattern, row, col int) error {
	size := g.Size()
	ps := p.Size()
	if ps.W > size.W || ps.H > size.H {
		return fmt.Errorf("%w: %q is %dx%d, grid is %dx%d", ErrTooLarge, p.Name, ps.W, ps.H, size.W, size.H)
	}
	for _, c := range p.Cells() {
		r, cc := size.Wrap(row+c.Row, col+c.Col)
		if err := g.SetAlive(r, cc); err != nil {
			return err
		}
	}
	return nil
}

// StampCentered places p in the middle of g.
func StampCentered(g *life.Grid, p Pattern) error {
	size := g.Size()
	ps := p.Size()
	return Stamp(g, p, (size.H-ps.H)/2, (size.W-ps.W)/2)
}
