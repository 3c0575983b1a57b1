package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter measures frames per second over windows of at least one second
// and publishes each result through a title setter.
type FPSCounter struct {
	title    string
	setTitle func(string)

	reference float64
	frames    int
	fps       float64
}

// NewFPSCounter starts counting at time start (seconds). setTitle receives
// "<title> [<fps> fps]" once per window; nil uses ebiten.SetWindowTitle.
func NewFPSCounter(title string, start float64, setTitle func(string)) *FPSCounter {
	if setTitle == nil {
		setTitle = ebiten.SetWindowTitle
	}
	return &FPSCounter{title: title, setTitle: setTitle, reference: start}
}

// Tick records a frame at time now. It reports true when a window closed and
// the title was updated.
func (c *FPSCounter) Tick(now float64) bool {
	delta := now - c.reference
	if delta < 1 {
		c.frames++
		return false
	}
	c.fps = float64(c.frames) / delta
	c.reference = now
	c.frames = 0
	c.setTitle(fmt.Sprintf("%s [%.2f fps]", c.title, c.fps))
	return true
}

// FPS returns the rate measured in the last closed window.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// drawOverlay prints Ebitengine's own FPS/TPS and the viewport count on a
// translucent panel in the top-left corner.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	if g.overlay == nil {
		g.overlay = ebiten.NewImage(140, 48)
	}
	g.overlay.Clear()
	g.overlay.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.overlay, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nViews: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.leaves)))
	screen.DrawImage(g.overlay, nil)
}
