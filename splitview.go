package splitview

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in normalized window coordinates, where
// the full window is {0, 0, 1, 1}.
type Rect struct {
	X, Y, Width, Height float32
}

// FullWindow is the rectangle covered by the root region.
var FullWindow = Rect{X: 0, Y: 0, Width: 1, Height: 1}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Area returns Width * Height.
func (r Rect) Area() float32 {
	return r.Width * r.Height
}

// Overlaps reports whether r and other share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// GrowMode selects how a newly appended region obtains its controller.
type GrowMode uint8

const (
	GrowInherit GrowMode = iota // share the parent's controller
	GrowFresh                   // construct a new controller at Growth.Position
)

// String returns the mode name used in logs.
func (m GrowMode) String() string {
	switch m {
	case GrowInherit:
		return "inherit"
	case GrowFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// Growth describes one appended region: its controller mode and, for
// GrowFresh, the starting position of the new controller.
type Growth struct {
	Mode     GrowMode
	Position mgl32.Vec3
}

// Inherit returns a Growth that shares the parent's controller.
func Inherit() Growth {
	return Growth{Mode: GrowInherit}
}

// Fresh returns a Growth that binds a new controller at position.
func Fresh(position mgl32.Vec3) Growth {
	return Growth{Mode: GrowFresh, Position: position}
}
