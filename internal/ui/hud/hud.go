// Package hud provides the heads-up display showing the player's ability
// status, turn number and population during the simulation.
package hud

import (
	"fmt"
	"image/color"
	"sync"

	"chosenoffset.com/lifegrid/internal/entity/ability"
	"chosenoffset.com/lifegrid/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowTurnInfo   bool    `json:"show_turn_info"`  // Show turn number
	ShowPopulation bool    `json:"show_population"` // Show live organism count
	Position       string  `json:"position"`        // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity        float64 `json:"opacity"`         // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowTurnInfo:   true,
		ShowPopulation: true,
		Position:       "top-left",
		Opacity:        0.7,
	}
}

// HUD manages the heads-up display. Setters are called from the turn
// goroutine while Draw runs on the UI goroutine.
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int
	panelWidth   int
	panelHeight  int

	mu         sync.Mutex
	status     ability.Status
	turnNumber int
	population int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   180,
	}
}

// ShowAbility records the latest ability status for display
func (h *HUD) ShowAbility(s ability.Status) {
	h.mu.Lock()
	h.status = s
	h.mu.Unlock()
}

// SetTurnNumber updates the displayed turn number
func (h *HUD) SetTurnNumber(turn int) {
	h.mu.Lock()
	h.turnNumber = turn
	h.mu.Unlock()
}

// SetPopulation updates the displayed organism count
func (h *HUD) SetPopulation(n int) {
	h.mu.Lock()
	h.population = n
	h.mu.Unlock()
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Describe renders an ability status as a short label
func Describe(s ability.Status) string {
	switch {
	case s.ActiveRemaining > 0:
		return fmt.Sprintf("active %d", s.ActiveRemaining)
	case s.CooldownRemaining > 0:
		return fmt.Sprintf("cooldown %d", s.CooldownRemaining)
	case s.Available:
		return "ready"
	default:
		return "unavailable"
	}
}

// Lines returns the text rows the HUD shows, top to bottom
func (h *HUD) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	lines := []string{"Ability: " + Describe(h.status)}
	if h.config.ShowTurnInfo {
		lines = append(lines, fmt.Sprintf("Turn: %d", h.turnNumber))
	}
	if h.config.ShowPopulation {
		lines = append(lines, fmt.Sprintf("Organisms: %d", h.population))
	}
	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	lines := h.Lines()
	h.panelHeight = 16 + len(lines)*16
	for _, line := range lines {
		if w, _ := r.MeasureText(line, 1.0); w+16 > h.panelWidth {
			h.panelWidth = w + 16
		}
	}

	x, y := h.calculatePosition()

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(h.panelHeight), color.RGBA{20, 20, 30, alpha})

	currentY := y + 8
	for _, line := range lines {
		r.DrawText(screen, line, x+8, currentY, color.RGBA{255, 255, 200, 255}, 1.0)
		currentY += 16
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}
