package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/lifegrid/internal/entity/ability"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		status ability.Status
		want   string
	}{
		{"ready", ability.Status{Available: true}, "ready"},
		{"active", ability.Status{ActiveRemaining: 3}, "active 3"},
		{"cooldown", ability.Status{CooldownRemaining: 2}, "cooldown 2"},
		{"zero", ability.Status{}, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.status))
		})
	}
}

func TestLines(t *testing.T) {
	h := New(nil, 640, 480)
	h.ShowAbility(ability.Status{ActiveRemaining: 4})
	h.SetTurnNumber(12)
	h.SetPopulation(9)

	assert.Equal(t, []string{"Ability: active 4", "Turn: 12", "Organisms: 9"}, h.Lines())

	h = New(&HUDConfig{Position: "top-right"}, 640, 480)
	assert.Equal(t, []string{"Ability: unavailable"}, h.Lines())
}

func TestCalculatePosition(t *testing.T) {
	h := New(&HUDConfig{Position: "bottom-right"}, 640, 480)
	h.panelHeight = 40
	x, y := h.calculatePosition()
	assert.Equal(t, 640-180-10, x)
	assert.Equal(t, 480-40-10, y)

	h.config.Position = ""
	x, y = h.calculatePosition()
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
}
