// Package hud draws the information sidebar: the FPS, drop, hit, and pi
// counters, plus the drop-count input box.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/buffon/renderer"
	"chosenoffset.com/buffon/ui"
)

// lineHeight is the vertical spacing between counter rows.
const lineHeight = 16

// Stats is the set of values the sidebar displays each frame.
type Stats struct {
	FPS   float64
	Drops int
	Hits  int
	Pi    float64
}

// HUD manages the sidebar panel.
type HUD struct {
	width  int
	height int

	background color.Color
	textColor  color.Color

	fpsCounter   *ui.InfoText
	dropsCounter *ui.InfoText
	hitsCounter  *ui.InfoText
	piCounter    *ui.InfoText

	// DropsInput is owned here for layout but updated by the game loop,
	// which handles the submitted values.
	DropsInput *ui.InputBox
}

// New creates a sidebar HUD of the given size.
func New(width, height int, background, textColor color.Color) *HUD {
	return &HUD{
		width:        width,
		height:       height,
		background:   background,
		textColor:    textColor,
		fpsCounter:   &ui.InfoText{X: 5, Y: 0, Color: textColor},
		dropsCounter: &ui.InfoText{X: 5, Y: lineHeight, Color: textColor},
		hitsCounter:  &ui.InfoText{X: 5, Y: lineHeight * 2, Color: textColor},
		piCounter:    &ui.InfoText{X: 5, Y: lineHeight * 3, Color: textColor},
		DropsInput:   ui.NewInputBox(5, lineHeight*4+5, width-25, 22, "Enter drop count:"),
	}
}

// Draw renders the sidebar background, the counters, and the input box.
func (h *HUD) Draw(r renderer.Renderer, dst renderer.Image, stats Stats) {
	r.FillRect(dst, 0, 0, float32(h.width-2), float32(h.height), h.background)

	h.fpsCounter.Draw(r, dst, fmt.Sprintf("FPS: %.1f", stats.FPS))
	h.dropsCounter.Draw(r, dst, fmt.Sprintf("Drops: %d", stats.Drops))
	h.hitsCounter.Draw(r, dst, fmt.Sprintf("Hits: %d", stats.Hits))
	h.piCounter.Draw(r, dst, fmt.Sprintf("Pi: %.5f", stats.Pi))

	h.DropsInput.Draw(r, dst)
}
