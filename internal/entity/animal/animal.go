// Package animal adds generic movement on top of the organism base model.
package animal

import (
	"math/rand"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/organism"
	"chosenoffset.com/lifegrid/internal/world"
)

// Animal is an organism that can relocate itself.
type Animal struct {
	organism.Base
}

// New creates an animal at pos.
func New(pos grid.Point, initiative int) Animal {
	return Animal{Base: organism.NewBase(pos, initiative)}
}

// MoveTo relocates the animal to dest, keeping the world's registry in step.
// The destination is assumed to be legal already.
func (a *Animal) MoveTo(w *world.World, dest grid.Point) {
	from := a.Position()
	if from == dest {
		return
	}
	w.Organisms().Move(a.ID(), from, dest)
	a.SetPosition(dest)
}

// Stray wanders to a random free neighbouring cell every turn.
type Stray struct {
	Animal
	rng *rand.Rand
}

// NewStray creates a stray at pos drawing its moves from rng.
func NewStray(pos grid.Point, rng *rand.Rand) *Stray {
	return &Stray{Animal: New(pos, 1), rng: rng}
}

// Symbol returns the board glyph.
func (s *Stray) Symbol() rune {
	return 'S'
}

// Act moves the stray one cell, or leaves it in place when boxed in.
func (s *Stray) Act(w *world.World) {
	board := w.Board()
	pos := s.Position()

	var free []grid.Point
	for dir := 0; dir < board.NeighbourCount(); dir++ {
		n, ok := board.Neighbour(pos, dir)
		if !ok || !board.IsLegal(n) || w.Occupied(n) {
			continue
		}
		free = append(free, n)
	}
	if len(free) == 0 {
		return
	}
	s.MoveTo(w, free[s.rng.Intn(len(free))])
}
