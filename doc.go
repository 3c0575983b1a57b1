// Package splitview partitions a window into first-person viewports that
// split and merge on demand.
//
// The window is described by a [Tree]: an implicit complete binary tree of
// [Region]s stored in breadth-first order. The root covers the whole window;
// every [Tree.Split] bisects the next parent region, alternating between
// vertical and horizontal cuts by depth, and [Tree.Merge] undoes the most
// recent split. The current viewports are [Tree.Leaves].
//
// # Controllers
//
// Each region is bound to a [Controller], a first-person camera steered by
// cursor movement. A split either shares the parent's controller
// ([Inherit]) or binds a new one at a given position ([Fresh]):
//
//	tree := splitview.NewTree(splitview.NewController(win, start))
//	tree.Split(win, splitview.Inherit(), splitview.Fresh(spawn))
//
// Controllers are reference counted by the tree and released when their last
// region is removed; register [Tree.OnRelease] to observe it.
//
// # Frames
//
// A frame has two phases. [UpdateControllers] samples input once per
// distinct controller, then [Layout] resolves each leaf to a pixel
// [Viewport] that is rendered with its controller's view matrix:
//
//	leaves := tree.Leaves()
//	splitview.UpdateControllers(leaves)
//	viewports, err := splitview.Layout(leaves, w, h)
//
// The scene package renders viewports and the viewer package runs the whole
// loop on [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
package splitview
