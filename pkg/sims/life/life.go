// Package life implements Conway's Game of Life on a torus with a preview of
// the next generation.
//
// Every cell carries two flags: whether it is alive now and whether it will
// be alive after the next commit. Evolve recomputes the second flag from the
// first, Commit promotes it. Between the two a renderer can show which cells
// are about to be born or die.
package life

import (
	"toroid/pkg/core"
)

// Grid is the toroidal cell array together with its dirty-cell bookkeeping.
// A Grid is not safe for concurrent use.
type Grid struct {
	size       core.Size
	cells      []CellState
	dirty      CellSet
	generation uint64
}

// New returns an all-dead grid with every cell marked dirty.
func New(w, h int) (*Grid, error) {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return nil, dimensionsError(w, h)
	}
	return &Grid{
		size:  size,
		cells: make([]CellState, size.Area()),
		dirty: fullSet(size),
	}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Dimensions returns the width and height of the grid.
func (g *Grid) Dimensions() (int, int) { return g.size.W, g.size.H }

// Generation returns the number of commits since the grid was last cleared.
func (g *Grid) Generation() uint64 { return g.generation }

// Population counts the cells that are currently alive.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s.CurrentAlive() {
			n++
		}
	}
	return n
}

// CellState returns the state at (row, col).
func (g *Grid) CellState(row, col int) (CellState, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return g.cells[g.size.Index(row, col)], nil
}

// Evolve recomputes the pending flag of every cell from the current
// generation. Current flags and the dirty set are left untouched.
func (g *Grid) Evolve() {
	w, h := g.size.W, g.size.H
	for row := 0; row < h; row++ {
		up := ((row-1)%h + h) % h
		down := (row + 1) % h
		for col := 0; col < w; col++ {
			left := ((col-1)%w + w) % w
			right := (col + 1) % w

			// Inclusive 3x3 sum: the cell itself is counted too.
			count := g.alive(up, left) + g.alive(up, col) + g.alive(up, right) +
				g.alive(row, left) + g.alive(row, col) + g.alive(row, right) +
				g.alive(down, left) + g.alive(down, col) + g.alive(down, right)

			idx := row*w + col
			cur := g.cells[idx]
			pending := count == 3 || (count == 4 && cur.CurrentAlive())
			g.cells[idx] = cur.withPending(pending)
		}
	}
}

// Commit promotes every pending flag to current. Cells whose state changed
// are marked dirty together with their neighbors, whose preview the next
// Evolve may change.
func (g *Grid) Commit() {
	w := g.size.W
	for idx, s := range g.cells {
		next := s.committed()
		if next == s {
			continue
		}
		g.cells[idx] = next
		g.markAround(idx/w, idx%w)
	}
	g.generation++
}

// Step advances a running simulation by one frame: it commits the pending
// generation and then previews the one after it.
func (g *Grid) Step() {
	g.Commit()
	g.Evolve()
}

// SetAlive forces the cell at (row, col) to Live.
func (g *Grid) SetAlive(row, col int) error {
	return g.set(row, col, Live)
}

// SetDead forces the cell at (row, col) to Dead.
func (g *Grid) SetDead(row, col int) error {
	return g.set(row, col, Dead)
}

// Clear kills every cell and marks the whole grid dirty.
func (g *Grid) Clear() {
	clear(g.cells)
	g.dirty = fullSet(g.size)
	g.generation = 0
}

// Randomize fills the grid with a deterministic soup in which each cell is
// alive with the given probability, then previews the next generation.
func (g *Grid) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i := range g.cells {
		if rng.Chance(density) {
			g.cells[i] = Live
		} else {
			g.cells[i] = Dead
		}
	}
	g.dirty = fullSet(g.size)
	g.generation = 0
	g.Evolve()
}

// Resize changes the grid dimensions. Cells inside both the old and the new
// bounds keep their state, new cells start Dead and cells outside the new
// bounds are dropped. The whole new grid is marked dirty.
func (g *Grid) Resize(w, h int) error {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return dimensionsError(w, h)
	}
	cells := make([]CellState, size.Area())
	rows := min(h, g.size.H)
	cols := min(w, g.size.W)
	for row := 0; row < rows; row++ {
		copy(cells[size.Index(row, 0):size.Index(row, cols)], g.cells[g.size.Index(row, 0):g.size.Index(row, cols)])
	}
	g.size = size
	g.cells = cells
	g.dirty = fullSet(size)
	return nil
}

// ChangedCells returns the cells that need repainting and empties the set.
func (g *Grid) ChangedCells() CellSet {
	out := g.dirty
	g.dirty = make(CellSet)
	return out
}

// MarkAllChanged adds every cell to the changed set, for renderers that
// lost their previous frame.
func (g *Grid) MarkAllChanged() {
	g.dirty = fullSet(g.size)
}

func (g *Grid) set(row, col int, s CellState) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[g.size.Index(row, col)] = s
	g.markAround(row, col)
	return nil
}

// markAround marks (row, col) and its eight wrapped neighbors dirty. A change
// of the current flag alters the neighbor counts of all nine cells.
func (g *Grid) markAround(row, col int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			g.dirty.Add(g.size.Wrap(row+dr, col+dc))
		}
	}
}

func (g *Grid) alive(row, col int) int {
	if g.cells[row*g.size.W+col].CurrentAlive() {
		return 1
	}
	return 0
}

func (g *Grid) check(row, col int) error {
	if !g.size.Contains(row, col) {
		return &BoundsError{Row: row, Col: col, Width: g.size.W, Height: g.size.H}
	}
	return nil
}
