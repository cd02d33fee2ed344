// Package game is the UI side of the simulation: it turns key presses into
// player requests and paints the board.
package game

import (
	"image/color"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/player"
	"chosenoffset.com/lifegrid/internal/render"
	"chosenoffset.com/lifegrid/internal/simulation"
	"chosenoffset.com/lifegrid/internal/ui/hud"
	"chosenoffset.com/lifegrid/internal/world"
)

// keyDirections maps movement keys to board directions
var keyDirections = []struct {
	key render.Key
	dir int
}{
	{render.KeyW, grid.North},
	{render.KeyUp, grid.North},
	{render.KeyD, grid.East},
	{render.KeyRight, grid.East},
	{render.KeyS, grid.South},
	{render.KeyDown, grid.South},
	{render.KeyA, grid.West},
	{render.KeyLeft, grid.West},
	{render.KeyE, grid.NorthEast},
	{render.KeyC, grid.SouthEast},
	{render.KeyZ, grid.SouthWest},
	{render.KeyQ, grid.NorthWest},
}

// Game holds the UI state.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	TileSize     int

	Renderer  render.Renderer
	InputMgr  render.InputManager
	World     *world.World
	Player    *player.Player
	View      *BoardView
	HUD       *hud.HUD
	Interrupt *simulation.Interrupt
}

// Update handles input. The simulation itself runs on its own goroutine.
func (g *Game) Update() error {
	if g.Interrupt.IsSet() {
		return render.ErrTerminated
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Interrupt.Set()
		return render.ErrTerminated
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Player.ActivateAbility()
	}

	for _, kd := range keyDirections {
		if kd.dir >= g.World.Board().NeighbourCount() {
			continue
		}
		if g.InputMgr.IsKeyJustPressed(kd.key) {
			g.Player.RequestMove(g.World, kd.dir)
			break
		}
	}
	return nil
}

// Draw paints the board, the organisms and the HUD.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.RGBA{12, 12, 18, 255})
	g.drawTiles(screen)
	g.drawOrganisms(screen)
	if g.HUD != nil {
		g.HUD.Draw(screen, g.Renderer)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) drawTiles(screen render.Image) {
	board := g.World.Board()
	sq, ok := board.(*grid.Square)
	if !ok {
		return
	}
	width, height := sq.Size()
	ts := float32(g.TileSize)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			shade := color.RGBA{34, 38, 30, 255}
			if (x+y)%2 == 0 {
				shade = color.RGBA{40, 44, 34, 255}
			}
			g.Renderer.FillRect(screen, float32(x)*ts, float32(y)*ts, ts, ts, shade)
		}
	}
}

func (g *Game) drawOrganisms(screen render.Image) {
	ts := float32(g.TileSize)
	active := g.Player.Ability().Active()
	for _, gl := range g.View.Glyphs() {
		cx := float32(gl.Pos.X)*ts + ts/2
		cy := float32(gl.Pos.Y)*ts + ts/2
		g.Renderer.FillCircle(screen, cx, cy, ts/2-3, glyphColor(gl.Symbol))
		if gl.Symbol == g.Player.Symbol() {
			ring := color.RGBA{200, 200, 50, 255}
			if active {
				ring = color.RGBA{255, 60, 60, 255}
			}
			g.Renderer.StrokeCircle(screen, cx, cy, ts/2-2, 2, ring)
		}
		g.Renderer.DrawText(screen, string(gl.Symbol), int(cx)-3, int(cy)-7, color.White, 1.0)
	}
}

// glyphColor picks the fill colour for an organism symbol
func glyphColor(symbol rune) color.Color {
	switch symbol {
	case 'P':
		return color.RGBA{255, 255, 100, 255}
	case 'S':
		return color.RGBA{120, 170, 255, 255}
	default:
		return color.RGBA{180, 180, 180, 255}
	}
}
