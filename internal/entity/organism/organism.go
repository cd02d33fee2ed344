// Package organism provides the base model shared by everything that lives
// on the board: identity, position, age and death.
package organism

import (
	"sync"

	"github.com/google/uuid"

	"chosenoffset.com/lifegrid/internal/core/grid"
)

// Tick is a discrete unit of simulation time.
type Tick int

// Killable is anything an area effect can kill.
// Kill must be safe to call more than once.
type Killable interface {
	Kill()
}

// Organism is a live entity registered on the board.
type Organism interface {
	Killable
	ID() uuid.UUID
	Position() grid.Point
	Age() Tick
	Alive() bool
	Initiative() int
	Symbol() rune
}

// Base holds the state common to all organisms. It is safe for concurrent
// use so the UI can read positions while the turn goroutine moves things.
type Base struct {
	mu         sync.RWMutex
	id         uuid.UUID
	position   grid.Point
	age        Tick
	alive      bool
	initiative int
}

// NewBase creates a live organism at pos.
func NewBase(pos grid.Point, initiative int) Base {
	return Base{
		id:         uuid.New(),
		position:   pos,
		alive:      true,
		initiative: initiative,
	}
}

// ID returns the organism's unique identifier.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// Position returns the current cell.
func (b *Base) Position() grid.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.position
}

// SetPosition places the organism at p. Callers keep the Index in sync.
func (b *Base) SetPosition(p grid.Point) {
	b.mu.Lock()
	b.position = p
	b.mu.Unlock()
}

// Age returns how many ticks the organism has lived.
func (b *Base) Age() Tick {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.age
}

// Grow advances the organism's age by one tick.
func (b *Base) Grow() {
	b.mu.Lock()
	b.age++
	b.mu.Unlock()
}

// Alive reports whether the organism has not been killed.
func (b *Base) Alive() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.alive
}

// Kill marks the organism dead. Killing a dead organism does nothing.
func (b *Base) Kill() {
	b.mu.Lock()
	b.alive = false
	b.mu.Unlock()
}

// Initiative orders organisms within a tick; higher acts first.
func (b *Base) Initiative() int {
	return b.initiative
}
