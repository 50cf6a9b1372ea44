package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")
)

// BoundsError records the rejected coordinate together with the grid size.
type BoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// Unwrap lets callers match with errors.Is(err, ErrOutOfBounds).
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

func dimensionsError(w, h int) error {
	return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
}
