// Package renderer abstracts the underlying graphics engine so the
// simulation, HUD, and UI widgets can be exercised without a display. The
// concrete backend lives in the ebiten subpackage.
package renderer

import (
	"image"
	"image/color"
)

// Renderer draws shapes and text onto images.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable image surface.
type Image interface {
	Bounds() image.Rectangle
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, text entry).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	AppendInputChars(runes []rune) []rune
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key identifies a keyboard key.
type Key int

const (
	KeyEscape Key = iota
	KeyDelete
	KeyEnter
	KeyBackspace
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Game is the frame-driven application run by an Engine: Update once per
// tick, Draw once per rendered frame.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Engine owns the window and the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// SetTPS sets the ticks-per-second ceiling. A value of zero or less
	// removes the fixed ceiling and syncs updates with the display rate.
	SetTPS(tps int)
	ActualTPS() float64
	ActualFPS() float64

	RunGame(game Game) error
}
