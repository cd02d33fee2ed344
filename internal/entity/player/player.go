// Package player implements the player-controlled organism and its turn
// protocol.
//
// The turn goroutine calls Act once per tick. Act blocks, polling for a move
// supplied from another goroutine through RequestMove, until a move arrives
// or the interrupt is raised.
package player

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/ability"
	"chosenoffset.com/lifegrid/internal/entity/animal"
	"chosenoffset.com/lifegrid/internal/simulation"
	"chosenoffset.com/lifegrid/internal/world"
)

// DefaultPollInterval is how often a waiting player checks for input.
const DefaultPollInterval = 100 * time.Millisecond

// Initiative is the player's place in the turn order.
const Initiative = 4

// StatusSink presents ability status to the user.
type StatusSink interface {
	ShowAbility(s ability.Status)
}

type nopSink struct{}

func (nopSink) ShowAbility(ability.Status) {}

// Player is the organism driven by external input.
type Player struct {
	animal.Animal

	interrupt *simulation.Interrupt
	poll      time.Duration
	sink      StatusSink
	log       logrus.FieldLogger

	abilityMu sync.RWMutex
	ability   ability.Ability

	pending mailbox
	waiting atomic.Bool
}

// New creates a player at pos with a sweep ability. The player stops
// waiting for input when interrupt is raised; nil means simulation.Shutdown.
func New(pos grid.Point, interrupt *simulation.Interrupt) *Player {
	if interrupt == nil {
		interrupt = simulation.Shutdown
	}
	p := &Player{
		Animal:    animal.New(pos, Initiative),
		interrupt: interrupt,
		poll:      DefaultPollInterval,
		sink:      nopSink{},
	}
	p.log = logrus.WithField("organism", p.ID())
	sweep := ability.NewSweep(p)
	sweep.SetLogger(p.log)
	p.ability = sweep
	return p
}

// SetPollInterval changes how often Act checks for input.
func (p *Player) SetPollInterval(d time.Duration) {
	if d > 0 {
		p.poll = d
	}
}

// SetStatusSink sets where ability status is published. nil discards it.
func (p *Player) SetStatusSink(sink StatusSink) {
	if sink == nil {
		sink = nopSink{}
	}
	p.sink = sink
}

// SetLogger replaces the logger.
func (p *Player) SetLogger(log logrus.FieldLogger) {
	p.log = log
}

// Symbol returns the board glyph.
func (p *Player) Symbol() rune {
	return 'P'
}

// Ability returns the current ability.
func (p *Player) Ability() ability.Ability {
	p.abilityMu.RLock()
	defer p.abilityMu.RUnlock()
	return p.ability
}

// SetAbility replaces the ability. It takes effect from the next call that
// uses it.
func (p *Player) SetAbility(a ability.Ability) {
	p.abilityMu.Lock()
	p.ability = a
	p.abilityMu.Unlock()
}

// ShowAbility publishes the current ability status.
func (p *Player) ShowAbility() {
	p.sink.ShowAbility(p.Ability().Status())
}

// Act runs one turn. It returns without moving if the interrupt is raised
// while waiting; the player then stays marked as waiting.
func (p *Player) Act(w *world.World) {
	p.Ability().UpdateTimers()
	p.ShowAbility()
	p.waiting.Store(true)
	w.Display().Draw()

	move, ok := p.awaitMove()
	if !ok {
		p.log.Debug("turn abandoned")
		return
	}

	p.waiting.Store(false)
	p.MoveTo(w, move)
	p.Ability().Update(w)
}

// awaitMove polls the mailbox, then the interrupt, once per poll interval.
func (p *Player) awaitMove() (grid.Point, bool) {
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()
	for {
		if move, ok := p.pending.take(); ok {
			return move, true
		}
		if p.interrupt.IsSet() {
			return grid.Point{}, false
		}
		select {
		case <-ticker.C:
		case <-p.interrupt.Done():
		}
	}
}

// ActivateAbility activates the ability if it is available.
func (p *Player) ActivateAbility() {
	a := p.Ability()
	if !a.Available() {
		return
	}
	a.Activate()
	p.ShowAbility()
}

// RequestMove queues a move one cell in direction dir. Moves that leave the
// board or land on an illegal cell are ignored and any queued move is kept.
func (p *Player) RequestMove(w *world.World, dir int) {
	board := w.Board()
	dest, ok := board.Neighbour(p.Position(), dir)
	if !ok || !board.IsLegal(dest) {
		return
	}
	p.pending.put(dest)
}

// PendingMove returns the queued move, if any.
func (p *Player) PendingMove() (grid.Point, bool) {
	return p.pending.peek()
}

// Waiting reports whether the player is blocked waiting for input.
func (p *Player) Waiting() bool {
	return p.waiting.Load()
}
