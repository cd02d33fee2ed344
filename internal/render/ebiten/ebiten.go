package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/lifegrid/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledRect(ebitenImg, x, y, width, height, clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// DrawText draws text on the destination image using the debug font.
// The debug font is always white at a fixed size; clr and scale are ignored.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenImg := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
}

// MeasureText measures the width and height of text with the given scale.
// This is an approximation based on the debug font's character size.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	// Debug font is approximately 6x13 pixels per character
	charWidth := 6.0
	charHeight := 13.0
	return int(float64(len(str)) * charWidth * scale), int(charHeight * scale)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyQ:
		return ebiten.KeyQ
	case render.KeyE:
		return ebiten.KeyE
	case render.KeyZ:
		return ebiten.KeyZ
	case render.KeyC:
		return ebiten.KeyC
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyDown:
		return ebiten.KeyArrowDown
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
