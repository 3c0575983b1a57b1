package viewer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	viewportsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "splitview_viewports",
		Help: "The number of viewports on screen.",
	})

	controllersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "splitview_controllers",
		Help: "The number of distinct first-person controllers.",
	})

	treeDepthGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "splitview_tree_depth",
		Help: "The depth of the deepest region.",
	})

	fpsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "splitview_fps",
		Help: "The frame rate measured over the last second.",
	})

	splitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitview_splits_total",
		Help: "The number of viewport splits.",
	})

	mergesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitview_merges_total",
		Help: "The number of viewport merges.",
	})

	frameTriangles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "splitview_frame_triangles",
		Help: "The number of triangles submitted in the last frame.",
	})
)

// observeTree publishes the tree shape gauges.
func (g *Game) observeTree() {
	viewportsGauge.Set(float64(len(g.leaves)))
	controllersGauge.Set(float64(len(g.tree.Controllers())))
	treeDepthGauge.Set(float64(g.tree.Depth()))
}
