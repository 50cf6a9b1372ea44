package life

// CellState is the combined current/pending status of a single cell.
//
// The current flag is what is on screen now; the pending flag is what the
// most recent Evolve decided the cell will be after the next Commit.
type CellState uint8

const (
	// Dead is not alive and will stay dead.
	Dead CellState = iota
	// Living is not alive yet but will be born on the next commit.
	Living
	// Dying is alive but will die on the next commit.
	Dying
	// Live is alive and will remain alive.
	Live
)

func stateOf(current, pending bool) CellState {
	switch {
	case current && pending:
		return Live
	case current:
		return Dying
	case pending:
		return Living
	default:
		return Dead
	}
}

// CurrentAlive reports whether the cell is alive in the displayed generation.
func (s CellState) CurrentAlive() bool { return s == Dying || s == Live }

// PendingAlive reports whether the cell will be alive after the next commit.
func (s CellState) PendingAlive() bool { return s == Living || s == Live }

// withPending returns the state with its pending flag replaced.
func (s CellState) withPending(pending bool) CellState {
	return stateOf(s.CurrentAlive(), pending)
}

// committed returns the state after the pending flag is promoted to current.
func (s CellState) committed() CellState {
	return stateOf(s.PendingAlive(), s.PendingAlive())
}

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Living:
		return "living"
	case Dying:
		return "dying"
	case Live:
		return "live"
	default:
		return "invalid"
	}
}

// States lists every valid cell state in encoding order.
func States() []CellState { return []CellState{Dead, Living, Dying, Live} }
