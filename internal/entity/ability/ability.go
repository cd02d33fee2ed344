// Package ability implements timed special abilities for player-controlled
// organisms.
//
// An ability moves through three states keyed by two timers relative to the
// owner's age: ready, active (its effect applies on Update) and cooling down.
// Calls that do not fit the current state are silently ignored; callers query
// Available and Active to learn what happened.
package ability

import (
	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/organism"
)

// Duration is how many ticks an activation lasts, and how long the
// cooldown following it lasts.
const Duration organism.Tick = 5

// Owner is the read-only view an ability has of the organism using it.
type Owner interface {
	Age() organism.Tick
	Position() grid.Point
}

// Surroundings is the part of the world an ability acts on.
type Surroundings interface {
	Board() grid.Board
	Organisms() *organism.Index
}

// Status is a snapshot for status displays.
type Status struct {
	Available         bool
	ActiveRemaining   organism.Tick
	CooldownRemaining organism.Tick
}

// Ability is a special ability owned by a player.
type Ability interface {
	// Available reports whether Activate would take effect now.
	Available() bool

	// Active reports whether the effect window is open.
	Active() bool

	// Activate opens the effect window. Ignored unless Available.
	Activate()

	// Update applies the effect to the surroundings while Active.
	Update(s Surroundings)

	// UpdateTimers derives the cooldown once the effect window has closed.
	// It runs once per tick before Update.
	UpdateTimers()

	// Status returns a snapshot of the timers relative to the owner's age.
	Status() Status
}
