// Package turn provides turn scheduling for the organism simulation.
// Each tick every live actor acts once, then every live organism ages.
package turn

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lifegrid/internal/entity/organism"
	"chosenoffset.com/lifegrid/internal/simulation"
	"chosenoffset.com/lifegrid/internal/world"
)

// Actor is an organism that takes a turn each tick.
type Actor interface {
	organism.Organism
	Act(w *world.World)
}

// Grower is an organism whose age the scheduler advances.
type Grower interface {
	Grow()
}

// Manager drives the simulation one tick at a time
type Manager struct {
	interrupt  *simulation.Interrupt
	turnNumber int
	delay      time.Duration
	log        logrus.FieldLogger

	// Callbacks
	OnTurnStart func(turnNumber int)
	OnTurnEnd   func(turnNumber int)
	OnDeath     func(o organism.Organism)
}

// NewManager creates a scheduler that stops when interrupt is raised.
// nil means simulation.Shutdown.
func NewManager(interrupt *simulation.Interrupt) *Manager {
	if interrupt == nil {
		interrupt = simulation.Shutdown
	}
	return &Manager{
		interrupt: interrupt,
		log:       logrus.StandardLogger(),
	}
}

// SetDelay sets the pause Run leaves between ticks
func (m *Manager) SetDelay(d time.Duration) {
	m.delay = d
}

// SetLogger replaces the logger
func (m *Manager) SetLogger(log logrus.FieldLogger) {
	m.log = log
}

// GetTurnNumber returns the number of ticks started so far
func (m *Manager) GetTurnNumber() int {
	return m.turnNumber
}

// Order returns the live actors of w in turn order: highest initiative
// first, older organisms first among equals, registration order otherwise.
func Order(w *world.World) []Actor {
	var actors []Actor
	for _, o := range w.Organisms().All() {
		if a, ok := o.(Actor); ok && a.Alive() {
			actors = append(actors, a)
		}
	}
	sort.SliceStable(actors, func(i, j int) bool {
		if actors[i].Initiative() != actors[j].Initiative() {
			return actors[i].Initiative() > actors[j].Initiative()
		}
		return actors[i].Age() > actors[j].Age()
	})
	return actors
}

// Step runs one tick. It reports false if the interrupt cut the tick short.
func (m *Manager) Step(w *world.World) bool {
	m.turnNumber++
	if m.OnTurnStart != nil {
		m.OnTurnStart(m.turnNumber)
	}

	for _, a := range Order(w) {
		// Killed earlier this tick
		if !a.Alive() {
			continue
		}
		a.Act(w)
		if m.interrupt.IsSet() {
			return false
		}
	}

	for _, o := range w.Organisms().All() {
		if g, ok := o.(Grower); ok && o.Alive() {
			g.Grow()
		}
	}

	for _, o := range w.Organisms().Reap() {
		m.log.WithField("organism", o.ID()).Debug("organism died")
		if m.OnDeath != nil {
			m.OnDeath(o)
		}
	}

	w.Display().Draw()
	if m.OnTurnEnd != nil {
		m.OnTurnEnd(m.turnNumber)
	}
	return true
}

// Run steps until the interrupt is raised.
func (m *Manager) Run(w *world.World) {
	m.log.Info("simulation started")
	for !m.interrupt.IsSet() {
		if !m.Step(w) {
			break
		}
		if m.delay > 0 {
			select {
			case <-time.After(m.delay):
			case <-m.interrupt.Done():
			}
		}
	}
	m.log.WithField("turns", m.turnNumber).Info("simulation stopped")
}
