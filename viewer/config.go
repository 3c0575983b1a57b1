package viewer

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/splitview/scene"
)

// ClearColor fills the window before any viewport is drawn.
var ClearColor = color.RGBA{R: 51, G: 77, B: 77, A: 255}

// Config holds the window and scene settings for Run and NewGame.
type Config struct {
	// Title is the window title. The FPS counter appends " [<fps> fps]".
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// Start is the position of the root first-person camera.
	Start mgl32.Vec3
	Scene scene.Config
	// ScreenshotDir is where F12 and scripted screenshots are written.
	ScreenshotDir string
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-second render stats.
	Debug bool
	// RunID tags logs and screenshot names. Empty generates one.
	RunID string
}

// DefaultConfig returns a 1280x720 window with the standard room.
func DefaultConfig() Config {
	return Config{
		Title:         "splitview",
		Width:         1280,
		Height:        720,
		Start:         mgl32.Vec3{0, 0.2, 0.8},
		Scene:         scene.DefaultConfig(),
		ScreenshotDir: "screenshots",
	}
}
