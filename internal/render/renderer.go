package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop normally.
var ErrTerminated = errors.New("render: game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Resource management
	Dispose()
}

// InputManager handles input from the user (keyboard).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyZ
	KeyC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminated ends the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
