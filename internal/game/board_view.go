package game

import (
	"sync"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/organism"
)

// Glyph is one organism as drawn on the board.
type Glyph struct {
	Pos    grid.Point
	Symbol rune
}

// BoardView is the world's display. Draw captures what the board looks like
// now; the UI goroutine paints the latest capture every frame.
type BoardView struct {
	organisms *organism.Index

	mu      sync.Mutex
	glyphs  []Glyph
	redraws int
}

// NewBoardView creates a view over organisms.
func NewBoardView(organisms *organism.Index) *BoardView {
	return &BoardView{organisms: organisms}
}

// Draw captures the live organisms and their positions.
func (v *BoardView) Draw() {
	all := v.organisms.All()
	glyphs := make([]Glyph, 0, len(all))
	for _, o := range all {
		if !o.Alive() {
			continue
		}
		glyphs = append(glyphs, Glyph{Pos: o.Position(), Symbol: o.Symbol()})
	}

	v.mu.Lock()
	v.glyphs = glyphs
	v.redraws++
	v.mu.Unlock()
}

// Glyphs returns the latest capture.
func (v *BoardView) Glyphs() []Glyph {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Glyph, len(v.glyphs))
	copy(out, v.glyphs)
	return out
}

// Redraws returns how many captures have been taken.
func (v *BoardView) Redraws() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.redraws
}
