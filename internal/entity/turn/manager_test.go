package turn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/organism"
	"chosenoffset.com/lifegrid/internal/entity/player"
	"chosenoffset.com/lifegrid/internal/simulation"
	"chosenoffset.com/lifegrid/internal/world"
)

// critter records the tick it acted on.
type critter struct {
	organism.Base
	name  string
	log   *[]string
	onAct func(w *world.World)
}

func (c *critter) Symbol() rune { return 'c' }

func (c *critter) Act(w *world.World) {
	*c.log = append(*c.log, c.name)
	if c.onAct != nil {
		c.onAct(w)
	}
}

func newCritter(name string, initiative int, log *[]string) *critter {
	return &critter{
		Base: organism.NewBase(grid.Point{}, initiative),
		name: name,
		log:  log,
	}
}

type plant struct {
	organism.Base
}

func (p *plant) Symbol() rune { return '*' }

func TestOrderByInitiativeThenAge(t *testing.T) {
	var log []string
	w := world.New(grid.NewSquare(3, 3, false), nil, nil)
	slow := newCritter("slow", 1, &log)
	young := newCritter("young", 4, &log)
	old := newCritter("old", 4, &log)
	old.Grow()
	w.Organisms().Add(slow)
	w.Organisms().Add(young)
	w.Organisms().Add(old)
	w.Organisms().Add(&plant{Base: organism.NewBase(grid.Point{}, 9)})

	actors := Order(w)
	require.Len(t, actors, 3, "organisms that do not act are not scheduled")
	assert.Equal(t, []Actor{old, young, slow}, actors)
}

func TestStepActsGrowsAndReaps(t *testing.T) {
	var log []string
	w := world.New(grid.NewSquare(3, 3, false), nil, nil)
	first := newCritter("first", 2, &log)
	second := newCritter("second", 1, &log)
	victim := newCritter("victim", 0, &log)
	first.onAct = func(*world.World) { victim.Kill() }
	w.Organisms().Add(first)
	w.Organisms().Add(second)
	w.Organisms().Add(victim)

	var died []organism.Organism
	m := NewManager(simulation.NewInterrupt())
	m.OnDeath = func(o organism.Organism) { died = append(died, o) }

	require.True(t, m.Step(w))

	assert.Equal(t, []string{"first", "second"}, log, "organisms killed mid-tick do not act")
	assert.Equal(t, organism.Tick(1), first.Age())
	assert.Equal(t, organism.Tick(1), second.Age())
	assert.Equal(t, []organism.Organism{victim}, died)
	assert.Equal(t, 2, w.Organisms().Len())
	assert.Equal(t, 1, m.GetTurnNumber())
}

func TestRunStopsOnInterrupt(t *testing.T) {
	stop := simulation.NewInterrupt()
	w := world.New(grid.NewSquare(3, 3, false), nil, nil)
	p := player.New(grid.Point{X: 1, Y: 1}, stop)
	p.SetPollInterval(time.Millisecond)
	w.Organisms().Add(p)

	m := NewManager(stop)
	done := make(chan struct{})
	go func() {
		m.Run(w)
		close(done)
	}()

	require.Eventually(t, p.Waiting, time.Second, time.Millisecond)
	stop.Set()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should stop once interrupted")
	}
	assert.Equal(t, organism.Tick(0), p.Age(), "an abandoned tick does not age anyone")
}

func TestPlayerAbilityCycleOverTicks(t *testing.T) {
	stop := simulation.NewInterrupt()
	w := world.New(grid.NewSquare(9, 1, false), nil, nil)
	p := player.New(grid.Point{X: 0, Y: 0}, stop)
	p.SetPollInterval(time.Millisecond)
	w.Organisms().Add(p)
	m := NewManager(stop)

	p.ActivateAbility()
	for tick := 0; tick < 5; tick++ {
		assert.True(t, p.Ability().Active(), "tick %d", tick)
		p.RequestMove(w, grid.East)
		require.True(t, m.Step(w))
	}

	for tick := 5; tick < 9; tick++ {
		p.RequestMove(w, grid.West)
		require.True(t, m.Step(w))
		assert.False(t, p.Ability().Available(), "cooling down after tick %d", tick)
		assert.False(t, p.Ability().Active(), "cooling down after tick %d", tick)
	}

	p.RequestMove(w, grid.West)
	require.True(t, m.Step(w))
	assert.Equal(t, organism.Tick(10), p.Age())
	assert.True(t, p.Ability().Available(), "the cooldown ends at age 10")
}
