// Package ui provides the two widgets the simulator shows: updatable info
// labels and a click-to-focus text input box.
package ui

import (
	"image/color"

	"chosenoffset.com/buffon/renderer"
)

// InfoText is a positioned, updatable display text.
type InfoText struct {
	X     int
	Y     int
	Color color.Color
}

// Draw draws text at the label's position.
func (t *InfoText) Draw(r renderer.Renderer, dst renderer.Image, text string) {
	r.DrawText(dst, text, t.X, t.Y, t.Color)
}

// InputBox is a single-line text input. Clicking inside it toggles focus,
// clicking elsewhere removes focus. While focused it consumes typed
// characters and backspace; Enter submits the current text and clears the
// box. The placeholder is shown while the box is empty.
type InputBox struct {
	X, Y          int
	Width, Height int
	Placeholder   string

	ActiveColor   color.Color
	InactiveColor color.Color
	BorderWidth   float32

	focused bool
	text    string
}

// NewInputBox creates an input box with the default focus colors.
func NewInputBox(x, y, width, height int, placeholder string) *InputBox {
	return &InputBox{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Placeholder: placeholder,
		// lightskyblue3 / dodgerblue2
		InactiveColor: color.RGBA{141, 182, 205, 255},
		ActiveColor:   color.RGBA{28, 134, 238, 255},
		BorderWidth:   3,
	}
}

// Focused reports whether the box currently has keyboard focus.
func (b *InputBox) Focused() bool {
	return b.focused
}

// Text returns the current (unsubmitted) contents of the box.
func (b *InputBox) Text() string {
	return b.text
}

// Update handles one tick of input. It returns the submitted text and true
// when Enter is pressed while focused; the box is cleared on submit.
func (b *InputBox) Update(in renderer.InputManager) (string, bool) {
	if in.IsMouseButtonJustPressed(renderer.MouseButtonLeft) {
		x, y := in.CursorPosition()
		if x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height {
			b.focused = !b.focused
		} else {
			b.focused = false
		}
	}

	if !b.focused {
		return "", false
	}

	if in.IsKeyJustPressed(renderer.KeyEnter) {
		submitted := b.text
		b.text = ""
		return submitted, true
	}
	if in.IsKeyJustPressed(renderer.KeyBackspace) && len(b.text) > 0 {
		b.text = b.text[:len(b.text)-1]
	}
	for _, c := range in.AppendInputChars(nil) {
		b.text += string(c)
	}

	return "", false
}

// Draw draws the box, its border, and its text or placeholder. A trailing
// cursor glyph is drawn while the box is focused.
func (b *InputBox) Draw(r renderer.Renderer, dst renderer.Image) {
	clr := b.InactiveColor
	if b.focused {
		clr = b.ActiveColor
	}

	text := b.text
	if text == "" {
		text = b.Placeholder
	}
	textY := b.Y + (b.Height-13)/2
	r.DrawText(dst, text, b.X+5, textY, clr)

	if b.focused {
		w, _ := r.MeasureText(b.text)
		r.DrawText(dst, "_", b.X+5+w, textY, clr)
	}

	r.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), b.BorderWidth, clr)
}
