// Package render defines the boundary between the raycasting game and the
// graphics engine. The core only ever emits primitive rectangles, lines,
// circles, and debug text, so the interfaces here stay small and the
// backend can be swapped without touching game logic.
package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to ask the engine to shut the game
// loop down cleanly.
var ErrQuit = errors.New("render: quit requested")

// Image represents a drawable surface.
type Image interface {
	// Size returns the width and height of the surface in pixels.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)
}

// Renderer draws primitives onto an Image.
type Renderer interface {
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(dst Image, x, y, w, h float32, clr color.Color)

	// StrokeLine draws a line of the given width between two points.
	StrokeLine(dst Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// DebugText draws small fixed-size text, used for the FPS overlay.
	DebugText(dst Image, text string, x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demo binds.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyF // Fisheye toggle key
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// InputManager handles keyboard input from the user.
type InputManager interface {
	// IsKeyPressed reports whether the key is currently held down.
	IsKeyPressed(key Key) bool

	// IsKeyJustPressed reports whether the key went down this tick.
	IsKeyJustPressed(key Key) bool
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances game logic by one tick.
	Update() error

	// Draw renders one frame onto the screen surface.
	Draw(screen Image)

	// Layout accepts the outside (window) size and returns the logical
	// screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game. Blocks until the
	// game returns ErrQuit or the window is closed; ErrQuit itself is not
	// reported as an error.
	RunGame(game Game) error
}
