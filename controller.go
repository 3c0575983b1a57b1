package splitview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MouseSpeed is the look rotation in radians per pixel of cursor travel.
	MouseSpeed = 0.005

	maxVerticalAngle = 80.0 * math.Pi / 180.0
	minVerticalAngle = -70.0 * math.Pi / 180.0
)

// Window is the input surface a Controller samples. Implementations report
// the cursor position in window pixels; with a captured cursor the position
// is unbounded and only its movement matters.
type Window interface {
	CursorPosition() (x, y float64)
}

// Controller is a first-person camera: a fixed world position and a look
// direction steered by cursor movement.
//
// A Controller may be shared by several regions. UpdateView consumes the
// cursor movement since the previous sample, so it must run once per frame
// per Controller, not once per region. See UpdateControllers.
type Controller struct {
	window   Window
	position mgl32.Vec3
	view     mgl32.Mat4

	horizontal float64
	vertical   float64

	lastX, lastY float64
	sampled      bool

	id   uint32
	refs int
}

// NewController creates a controller bound to window at position. The
// initial look direction faces -Z, and View is valid before the first
// UpdateView.
func NewController(window Window, position mgl32.Vec3) *Controller {
	c := &Controller{
		window:     window,
		position:   position,
		horizontal: math.Pi,
	}
	c.computeView()
	return c
}

// View returns the view matrix computed by the last UpdateView.
func (c *Controller) View() mgl32.Mat4 {
	return c.view
}

// Position returns the controller's world position.
func (c *Controller) Position() mgl32.Vec3 {
	return c.position
}

// HorizontalAngle returns the yaw in radians.
func (c *Controller) HorizontalAngle() float64 {
	return c.horizontal
}

// VerticalAngle returns the pitch in radians, within [-70°, 80°].
func (c *Controller) VerticalAngle() float64 {
	return c.vertical
}

// ID returns the id assigned when a Tree first took a reference to the
// controller, or 0 if no tree holds it.
func (c *Controller) ID() uint32 {
	return c.id
}

// Refs returns the number of regions currently bound to the controller.
func (c *Controller) Refs() int {
	return c.refs
}

// UpdateView samples the cursor, applies the movement since the previous
// sample to the look angles and recomputes the view matrix. The first call
// only records the cursor baseline.
func (c *Controller) UpdateView() {
	x, y := c.window.CursorPosition()
	if c.sampled {
		c.horizontal -= MouseSpeed * (x - c.lastX)
		c.vertical -= MouseSpeed * (y - c.lastY)
	}
	c.lastX, c.lastY = x, y
	c.sampled = true

	c.vertical = math.Max(minVerticalAngle, math.Min(c.vertical, maxVerticalAngle))
	c.computeView()
}

// Direction returns the unit look direction for the current angles.
func (c *Controller) Direction() mgl32.Vec3 {
	return lookDirection(c.horizontal, c.vertical)
}

func lookDirection(h, v float64) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(v) * math.Sin(h)),
		float32(math.Sin(v)),
		float32(math.Cos(v) * math.Cos(h)),
	}
}

// computeView rebuilds the view matrix from position and angles.
//
// right = (sin(h - π/2), 0, cos(h - π/2)), up = right × direction.
func (c *Controller) computeView() {
	dir := lookDirection(c.horizontal, c.vertical)
	right := mgl32.Vec3{
		float32(math.Sin(c.horizontal - math.Pi/2)),
		0,
		float32(math.Cos(c.horizontal - math.Pi/2)),
	}
	up := right.Cross(dir)
	c.view = mgl32.LookAtV(c.position, c.position.Add(dir), up)
}
