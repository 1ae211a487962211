package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/buffon/renderer"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() renderer.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) renderer.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst renderer.Image, x, y, width, height float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledRect(ebitenImg, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst renderer.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeRect(ebitenImg, x, y, width, height, strokeWidth, clr, false)
}

// StrokeLine draws a line segment on the destination image.
func (r *EbitenRenderer) StrokeLine(dst renderer.Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeLine(ebitenImg, x1, y1, x2, y2, strokeWidth, clr, true)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst renderer.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// DrawText draws text on the destination image using the debug font.
// Note: the color parameter is currently ignored, text is always white.
func (r *EbitenRenderer) DrawText(dst renderer.Image, str string, x, y int, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
}

// MeasureText measures the width and height of text. This is an
// approximation based on the debug font's character size.
func (r *EbitenRenderer) MeasureText(str string) (width, height int) {
	// Debug font is approximately 6x13 pixels per character
	return len(str) * 6, 13
}

// EbitenImage wraps an ebiten.Image to implement the renderer.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// WrapEbitenImage wraps an existing ebiten.Image as a renderer.Image.
func WrapEbitenImage(img *ebiten.Image) renderer.Image {
	return &EbitenImage{img: img}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() renderer.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was pressed this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key renderer.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// AppendInputChars appends the characters typed this tick to runes.
func (m *EbitenInputManager) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

// CursorPosition returns the current cursor position.
func (m *EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the specified mouse button was
// pressed this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button renderer.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKey converts a renderer.Key to an ebiten.Key.
func keyToEbitenKey(key renderer.Key) ebiten.Key {
	switch key {
	case renderer.KeyEscape:
		return ebiten.KeyEscape
	case renderer.KeyDelete:
		return ebiten.KeyDelete
	case renderer.KeyEnter:
		return ebiten.KeyEnter
	case renderer.KeyBackspace:
		return ebiten.KeyBackspace
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a renderer.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button renderer.MouseButton) ebiten.MouseButton {
	switch button {
	case renderer.MouseButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() renderer.Engine {
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

// maxTPS is the highest fixed tick rate handed to ebiten; anything above it
// is indistinguishable from uncapped, so updates sync with the display rate
// instead.
const maxTPS = 1000

// SetTPS sets the ticks-per-second ceiling. Zero or less removes the fixed
// ceiling.
func (e *EbitenEngine) SetTPS(tps int) {
	if tps <= 0 || tps > maxTPS {
		ebiten.SetTPS(ebiten.SyncWithFPS)
		return
	}
	ebiten.SetTPS(tps)
}

// ActualTPS returns the current ticks per second.
func (e *EbitenEngine) ActualTPS() float64 {
	return ebiten.ActualTPS()
}

// ActualFPS returns the current frames per second.
func (e *EbitenEngine) ActualFPS() float64 {
	return ebiten.ActualFPS()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game renderer.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a renderer.Game to ebiten.Game interface.
type gameAdapter struct {
	game renderer.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
