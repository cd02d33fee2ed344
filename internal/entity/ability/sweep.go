package ability

import (
	"sync"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lifegrid/internal/entity/organism"
)

// Sweep kills every organism in the cells around its owner for each tick it
// is active.
type Sweep struct {
	owner    Owner
	duration organism.Tick
	log      logrus.FieldLogger

	mu sync.Mutex
	// availableUntil is zero until the first activation
	availableUntil organism.Tick
	// cooldownUntil is zero until the first cooldown is derived
	cooldownUntil organism.Tick
}

// NewSweep creates a sweep lasting Duration ticks.
func NewSweep(owner Owner) *Sweep {
	return NewSweepWithDuration(owner, Duration)
}

// NewSweepWithDuration creates a sweep whose active window and cooldown
// last d ticks each.
func NewSweepWithDuration(owner Owner, d organism.Tick) *Sweep {
	if d <= 0 {
		d = Duration
	}
	return &Sweep{
		owner:    owner,
		duration: d,
		log:      logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger.
func (s *Sweep) SetLogger(log logrus.FieldLogger) {
	s.log = log
}

// Available reports whether both the active window and the cooldown have passed.
func (s *Sweep) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available(s.owner.Age())
}

func (s *Sweep) available(age organism.Tick) bool {
	return s.availableUntil <= age && s.cooldownUntil <= age
}

// Active reports whether the effect window is open.
func (s *Sweep) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableUntil > s.owner.Age()
}

// Activate opens the effect window for the configured duration.
func (s *Sweep) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.owner.Age()
	if !s.available(age) {
		return
	}
	s.availableUntil = age + s.duration
	s.log.WithFields(logrus.Fields{
		"age":   age,
		"until": s.availableUntil,
	}).Info("ability activated")
}

// Update kills the organisms around the owner while the sweep is active.
// The sweep stops at the first direction that does not resolve to a cell;
// directions after it are left alone.
func (s *Sweep) Update(sur Surroundings) {
	if !s.Active() {
		return
	}
	board := sur.Board()
	organisms := sur.Organisms()
	pos := s.owner.Position()
	for dir := 0; dir < board.NeighbourCount(); dir++ {
		cell, ok := board.Neighbour(pos, dir)
		if !ok {
			return
		}
		for _, o := range organisms.At(cell) {
			o.Kill()
			s.log.WithFields(logrus.Fields{
				"organism": o.ID(),
				"cell":     cell,
			}).Debug("ability killed organism")
		}
	}
}

// UpdateTimers starts the cooldown once per activation, as soon as the
// active window has elapsed.
func (s *Sweep) UpdateTimers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.owner.Age()
	if s.availableUntil != 0 && s.availableUntil <= age && s.availableUntil > s.cooldownUntil {
		s.cooldownUntil = s.availableUntil + s.duration
		s.log.WithFields(logrus.Fields{
			"age":   age,
			"until": s.cooldownUntil,
		}).Debug("ability cooling down")
	}
}

// Status returns the remaining active and cooldown ticks.
func (s *Sweep) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	age := s.owner.Age()
	st := Status{Available: s.available(age)}
	if s.availableUntil > age {
		st.ActiveRemaining = s.availableUntil - age
	} else if s.cooldownUntil > age {
		st.CooldownRemaining = s.cooldownUntil - age
	}
	return st
}

// Timers returns the raw active-until and cooldown-until ticks.
func (s *Sweep) Timers() (availableUntil, cooldownUntil organism.Tick) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableUntil, s.cooldownUntil
}
