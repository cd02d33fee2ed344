package player

import (
	"sync"

	"chosenoffset.com/lifegrid/internal/core/grid"
)

// mailbox holds at most one pending move. A put overwrites whatever is
// there; a take empties it.
type mailbox struct {
	mu      sync.Mutex
	move    grid.Point
	pending bool
}

func (m *mailbox) put(p grid.Point) {
	m.mu.Lock()
	m.move = p
	m.pending = true
	m.mu.Unlock()
}

func (m *mailbox) take() (grid.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pending {
		return grid.Point{}, false
	}
	p := m.move
	m.move = grid.Point{}
	m.pending = false
	return p, true
}

func (m *mailbox) peek() (grid.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.move, m.pending
}
