package life

import "toroid/pkg/core"

// CellSet is an unordered set of grid coordinates.
type CellSet map[core.Cell]struct{}

// Add inserts (row, col) into the set.
func (s CellSet) Add(row, col int) { s[core.Cell{Row: row, Col: col}] = struct{}{} }

// Has reports whether (row, col) is in the set.
func (s CellSet) Has(row, col int) bool {
	_, ok := s[core.Cell{Row: row, Col: col}]
	return ok
}

// Len returns the number of coordinates in the set.
func (s CellSet) Len() int { return len(s) }

func fullSet(size core.Size) CellSet {
	s := make(CellSet, size.Area())
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			s.Add(row, col)
		}
	}
	return s
}
