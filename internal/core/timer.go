package core

import "time"

// Pacer decides on which frames a running simulation should commit a new
// generation, so the generation rate is independent of the frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
// The first call to Ready always reports true.
func NewPacer(gps int) *Pacer {
	p := &Pacer{}
	p.SetRate(gps)
	p.accumulator = p.step
	return p
}

// SetRate changes the generation rate. Non-positive rates fall back to 10.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	p.step = time.Second / time.Duration(gps)
}

// Step returns the interval between generations.
func (p *Pacer) Step() time.Duration { return p.step }

// Ready reports whether a generation is due at now.
func (p *Pacer) Ready(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	if delta > 0 {
		p.accumulator += delta
	}
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		// Do not bank more than one generation after a stall.
		if p.accumulator > p.step {
			p.accumulator = p.step
		}
		return true
	}
	return false
}

// Reset forgets accumulated time; the next Ready call fires immediately.
func (p *Pacer) Reset() {
	p.last = time.Time{}
	p.accumulator = p.step
}
