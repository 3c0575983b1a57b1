package splitview

import "math/bits"

// Region is one node of a Tree: a rectangle in normalized window coordinates
// bound to a Controller that may be shared with other regions.
type Region struct {
	X, Y, Width, Height float32

	controller *Controller
}

// Rect returns the region's rectangle.
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Controller returns the controller bound to the region.
func (r Region) Controller() *Controller {
	return r.controller
}

// Tree is an implicit complete binary tree of screen regions stored in
// breadth-first order. Index 0 is the full-window root; the children of p are
// 2p+1 and 2p+2 and always bisect p's rectangle.
//
// The sequence only grows by appending the next breadth-first index and only
// shrinks from the end, so it is always a prefix of a complete binary tree.
// While growth happens in pairs (Split), the leaves are exactly the back half
// of the sequence.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	regions   []Region
	ids       idPool
	onRelease func(*Controller)
}

// NewTree creates a tree holding a single full-window root region bound to
// root.
func NewTree(root *Controller) *Tree {
	t := &Tree{}
	t.regions = append(t.regions, Region{
		X: FullWindow.X, Y: FullWindow.Y,
		Width: FullWindow.Width, Height: FullWindow.Height,
		controller: root,
	})
	t.retain(root)
	return t
}

// OnRelease registers fn to be called when a controller loses its last
// region. Passing nil removes the hook.
func (t *Tree) OnRelease(fn func(*Controller)) {
	t.onRelease = fn
}

// Len returns the number of regions, internal nodes included.
func (t *Tree) Len() int {
	return len(t.regions)
}

// At returns the region at breadth-first index i. It panics if i is out of
// range.
func (t *Tree) At(i int) Region {
	return t.regions[i]
}

// Root returns the full-window root region.
func (t *Tree) Root() Region {
	return t.regions[0]
}

// Depth returns the depth of the deepest region; a root-only tree has depth 0.
func (t *Tree) Depth() int {
	if len(t.regions) == 0 {
		return 0
	}
	return depthOf(len(t.regions) - 1)
}

// Split bisects the next parent region by appending two children: first takes
// the odd index and second the even index. It is the only exported way to
// grow the tree, which keeps every internal node at exactly two children.
func (t *Tree) Split(window Window, first, second Growth) {
	t.grow(window, first)
	t.grow(window, second)
}

// Shrink removes the most recently appended region and releases its
// controller reference. It returns false, leaving the tree unchanged, when
// only the root remains.
func (t *Tree) Shrink() bool {
	n := len(t.regions)
	if n <= 1 {
		return false
	}
	last := t.regions[n-1]
	t.regions[n-1] = Region{}
	t.regions = t.regions[:n-1]
	t.release(last.controller)
	return true
}

// Merge undoes the most recent Split by removing its two children. It returns
// false, leaving the tree unchanged, when there is no split to undo.
func (t *Tree) Merge() bool {
	if len(t.regions) < 3 {
		return false
	}
	return t.Shrink() && t.Shrink()
}

// Leaves returns the regions at indices [n/2, n), in index order. These are
// the regions with no children when the tree was grown with Split.
func (t *Tree) Leaves() []Region {
	return t.AppendLeaves(nil)
}

// AppendLeaves appends the leaf regions to dst and returns the extended
// slice.
func (t *Tree) AppendLeaves(dst []Region) []Region {
	n := len(t.regions)
	return append(dst, t.regions[n/2:]...)
}

// Controllers returns every distinct controller bound to a region, in order
// of first appearance.
func (t *Tree) Controllers() []*Controller {
	return distinctControllers(t.regions, nil)
}

// grow appends one child region to the parent of the next breadth-first
// index. Odd depths halve the parent's width, even depths its height; the odd
// index keeps the parent's origin and the even index takes the far half.
// grow is a no-op on an empty tree.
func (t *Tree) grow(window Window, g Growth) {
	if len(t.regions) == 0 {
		return
	}

	idx := len(t.regions)
	parent := t.regions[parentOf(idx)]

	var controller *Controller
	switch g.Mode {
	case GrowFresh:
		controller = NewController(window, g.Position)
	default:
		controller = parent.controller
	}

	child := Region{
		X: parent.X, Y: parent.Y,
		Width: parent.Width, Height: parent.Height,
		controller: controller,
	}
	if depthOf(idx)%2 != 0 {
		child.Width = parent.Width / 2
		if idx%2 == 0 {
			child.X = parent.X + parent.Width/2
		}
	} else {
		child.Height = parent.Height / 2
		if idx%2 == 0 {
			child.Y = parent.Y + parent.Height/2
		}
	}

	t.regions = append(t.regions, child)
	t.retain(controller)
}

// retain records a new region reference to c, assigning an id on the first.
func (t *Tree) retain(c *Controller) {
	if c == nil {
		return
	}
	if c.refs == 0 {
		c.id = t.ids.New()
	}
	c.refs++
}

// release drops one region reference to c. When none remain the id is
// recycled and the release hook runs.
func (t *Tree) release(c *Controller) {
	if c == nil || c.refs == 0 {
		return
	}
	c.refs--
	if c.refs > 0 {
		return
	}
	t.ids.Reuse(c.id)
	if t.onRelease != nil {
		t.onRelease(c)
	}
	c.id = 0
}

// parentOf returns (i+1)/2 - 1, the breadth-first parent index of i > 0.
func parentOf(i int) int {
	return (i+1)/2 - 1
}

// depthOf returns ⌊log2(i+1)⌋, the depth of breadth-first index i.
func depthOf(i int) int {
	return bits.Len(uint(i+1)) - 1
}
