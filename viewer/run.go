// Package viewer runs the split-view window on Ebitengine: keyboard actions,
// per-frame controller updates, rendering, the FPS title, screenshots,
// scripted test runs and Prometheus metrics.
package viewer

import (
	"context"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window and blocks until it is closed, Escape is pressed, ctx
// is done or a frame fails. The cursor is captured so mouse movement steers
// the cameras without leaving the window.
func Run(ctx context.Context, cfg Config, runner *TestRunner) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	g := NewGame(cfg, ebitenInput{})
	g.SetTestRunner(runner)
	g.done = ctx.Done()

	if err := ebiten.RunGame(g); err != nil {
		return errors.New("running viewer failed").
			WithTag("run_id", g.runID).
			Wrap(err)
	}
	return nil
}
