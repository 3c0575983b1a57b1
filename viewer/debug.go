package viewer

import "github.com/aukilabs/go-tooling/pkg/logs"

// debugLog logs the last frame's render stats. Only active with
// Config.Debug; called once per FPS window.
func (g *Game) debugLog() {
	if !g.cfg.Debug {
		return
	}
	logs.WithTag("run_id", g.runID).
		WithTag("fps", g.fps.FPS()).
		WithTag("render_time", g.renderTime.String()).
		WithTag("frames", len(g.frames)).
		WithTag("entities", g.stats.Entities).
		WithTag("triangles", g.stats.Triangles).
		WithTag("culled", g.stats.Culled).
		WithTag("draw_calls", g.stats.DrawCalls).
		Info("frame stats")
}
