// Package world ties the board, the organism registry and the board display
// together into the view every actor receives on its turn.
package world

import (
	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/organism"
)

// Display is a drawable board surface.
type Display interface {
	// Draw requests a redraw of the board.
	Draw()
}

// NopDisplay discards redraw requests.
type NopDisplay struct{}

// Draw does nothing.
func (NopDisplay) Draw() {}

// World is the shared simulation state.
type World struct {
	board     grid.Board
	organisms *organism.Index
	display   Display
}

// New creates a world. A nil display is replaced with NopDisplay.
func New(board grid.Board, organisms *organism.Index, display Display) *World {
	if organisms == nil {
		organisms = organism.NewIndex()
	}
	if display == nil {
		display = NopDisplay{}
	}
	return &World{
		board:     board,
		organisms: organisms,
		display:   display,
	}
}

// Board returns the board geometry.
func (w *World) Board() grid.Board {
	return w.board
}

// Organisms returns the organism registry.
func (w *World) Organisms() *organism.Index {
	return w.organisms
}

// Display returns the board display.
func (w *World) Display() Display {
	return w.display
}

// Occupied reports whether any live organism stands at p.
func (w *World) Occupied(p grid.Point) bool {
	for _, o := range w.organisms.At(p) {
		if o.Alive() {
			return true
		}
	}
	return false
}
