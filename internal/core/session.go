package core

import (
	"time"

	"toroid/pkg/sims/life"
)

// Session holds the interactive state shared by the front ends: the grid,
// whether it is running and the generation pacing.
//
// Each frame the front end applies input, then calls Frame, then repaints
// the cells returned by the grid's ChangedCells.
type Session struct {
	grid     *life.Grid
	pacer    *Pacer
	paused   bool
	stepOnce bool
}

// NewSession wraps g and previews its next generation.
func NewSession(g *life.Grid, gps int, paused bool) *Session {
	g.Evolve()
	return &Session{grid: g, pacer: NewPacer(gps), paused: paused}
}

// Grid returns the underlying grid.
func (s *Session) Grid() *life.Grid { return s.grid }

// Paused reports whether generations only advance on request.
func (s *Session) Paused() bool { return s.paused }

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.stepOnce = false
	s.pacer.Reset()
}

// RequestStep commits one generation on the next frame. Ignored while
// running.
func (s *Session) RequestStep() {
	if s.paused {
		s.stepOnce = true
	}
}

// Reset clears the grid and pauses.
func (s *Session) Reset() {
	s.grid.Clear()
	s.grid.Evolve()
	s.paused = true
	s.stepOnce = false
}

// Paint sets the cell at (row, col) alive or dead. It reports false for
// coordinates outside the grid.
func (s *Session) Paint(row, col int, alive bool) bool {
	if !s.grid.Size().Contains(row, col) {
		return false
	}
	var err error
	if alive {
		err = s.grid.SetAlive(row, col)
	} else {
		err = s.grid.SetDead(row, col)
	}
	return err == nil
}

// Resize changes the grid dimensions unless they already match.
func (s *Session) Resize(w, h int) error {
	if cw, ch := s.grid.Dimensions(); cw == w && ch == h {
		return nil
	}
	if err := s.grid.Resize(w, h); err != nil {
		return err
	}
	s.grid.Evolve()
	return nil
}

// Frame commits a generation when one is due, then refreshes the preview.
// It reports whether a generation was committed.
func (s *Session) Frame(now time.Time) bool {
	commit := s.stepOnce
	if !s.paused && s.pacer.Ready(now) {
		commit = true
	}
	if commit {
		s.grid.Commit()
		s.stepOnce = false
	}
	s.grid.Evolve()
	return commit
}
