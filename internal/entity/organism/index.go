package organism

import (
	"sync"

	"github.com/google/uuid"

	"chosenoffset.com/lifegrid/internal/core/grid"
)

// Index is the world's registry of organisms. It keeps registration order
// for the turn scheduler and a cell lookup for area effects.
type Index struct {
	mu    sync.RWMutex
	order []Organism
	cells map[grid.Point][]Organism
}

// NewIndex creates an empty registry.
func NewIndex() *Index {
	return &Index{
		order: make([]Organism, 0),
		cells: make(map[grid.Point][]Organism),
	}
}

// Add registers o at its current position.
func (ix *Index) Add(o Organism) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.order = append(ix.order, o)
	p := o.Position()
	ix.cells[p] = append(ix.cells[p], o)
}

// Remove unregisters o. Organisms are matched by ID; unknown ones are ignored.
func (ix *Index) Remove(o Organism) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.remove(o)
}

func (ix *Index) remove(o Organism) {
	for i, cur := range ix.order {
		if cur.ID() == o.ID() {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
	ix.detach(o.ID(), o.Position())
}

// detach drops the organism with id from cell p and returns it.
func (ix *Index) detach(id uuid.UUID, p grid.Point) Organism {
	list := ix.cells[p]
	var found Organism
	for i, cur := range list {
		if cur.ID() == id {
			found = cur
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(ix.cells, p)
	} else {
		ix.cells[p] = list
	}
	return found
}

// Move re-files the organism with id from one cell to another.
// Moving an organism that is not filed at from does nothing.
func (ix *Index) Move(id uuid.UUID, from, to grid.Point) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	o := ix.detach(id, from)
	if o == nil {
		return
	}
	ix.cells[to] = append(ix.cells[to], o)
}

// At returns the organisms registered at p. The slice is a copy.
func (ix *Index) At(p grid.Point) []Organism {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	list := ix.cells[p]
	if len(list) == 0 {
		return nil
	}
	out := make([]Organism, len(list))
	copy(out, list)
	return out
}

// All returns every registered organism in registration order.
func (ix *Index) All() []Organism {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]Organism, len(ix.order))
	copy(out, ix.order)
	return out
}

// Len returns the number of registered organisms.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.order)
}

// Reap unregisters dead organisms and returns them.
func (ix *Index) Reap() []Organism {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	var dead []Organism
	for _, o := range ix.order {
		if !o.Alive() {
			dead = append(dead, o)
		}
	}
	for _, o := range dead {
		ix.remove(o)
	}
	return dead
}
