package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/splitview"
)

// Input is what the game polls each frame: the cursor for the controllers and
// key press edges for the actions.
type Input interface {
	splitview.Window
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenInput reads the live Ebitengine input state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// keyBindings maps keys to actions, checked in order.
var keyBindings = [...]struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyArrowUp, ActionSplit},
	{ebiten.KeyArrowDown, ActionMerge},
	{ebiten.KeyTab, ActionToggleView},
	{ebiten.KeyF12, ActionScreenshot},
	{ebiten.KeyEscape, ActionQuit},
}
