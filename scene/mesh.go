package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is one flat-shaded face in model space. Normal points out of the
// mesh.
type Triangle struct {
	A, B, C mgl32.Vec3
	Normal  mgl32.Vec3
}

// Centroid returns the mean of the three corners.
func (t Triangle) Centroid() mgl32.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Mesh is an immutable triangle list shared by every entity that draws it.
type Mesh struct {
	Name      string
	Triangles []Triangle
	// TwoSided meshes are open and skip back-face culling.
	TwoSided bool
}

// quad appends the two triangles of the quad a-b-c-d with normal n.
func quad(dst []Triangle, a, b, c, d, n mgl32.Vec3) []Triangle {
	return append(dst,
		Triangle{A: a, B: b, C: c, Normal: n},
		Triangle{A: a, B: c, C: d, Normal: n},
	)
}

// box appends the six faces of an axis-aligned box centered on the origin with
// half-extent h.
func box(dst []Triangle, h float32) []Triangle {
	v := func(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x * h, y * h, z * h} }

	dst = quad(dst, v(-1, -1, 1), v(-1, 1, 1), v(1, 1, 1), v(1, -1, 1), mgl32.Vec3{0, 0, 1})
	dst = quad(dst, v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1), mgl32.Vec3{0, 0, -1})
	dst = quad(dst, v(1, 1, -1), v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), mgl32.Vec3{0, 1, 0})
	dst = quad(dst, v(-1, -1, 1), v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), mgl32.Vec3{0, -1, 0})
	dst = quad(dst, v(1, -1, -1), v(1, -1, 1), v(1, 1, 1), v(1, 1, -1), mgl32.Vec3{1, 0, 0})
	dst = quad(dst, v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1), mgl32.Vec3{-1, 0, 0})
	return dst
}

// Cube returns a unit cube spanning [-0.5, 0.5] on every axis. Walls and floor
// tiles are scaled cubes.
func Cube() *Mesh {
	return &Mesh{Name: "cube", Triangles: box(make([]Triangle, 0, 12), 0.5)}
}

// Sphere returns a unit sphere built by subdividing the faces of a triangular
// bipyramid detail times and pushing every new vertex onto the sphere. It has
// 6 * 4^detail triangles.
func Sphere(detail int) *Mesh {
	if detail < 0 {
		detail = 0
	}
	base := [5]mgl32.Vec3{
		{1, 0, 0},
		{float32(math.Cos(2 * math.Pi / 3)), float32(math.Sin(2 * math.Pi / 3)), 0},
		{float32(math.Cos(4 * math.Pi / 3)), float32(math.Sin(4 * math.Pi / 3)), 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	faces := [6][3]int{
		{0, 1, 3}, {0, 2, 3}, {1, 2, 3},
		{0, 1, 4}, {0, 2, 4}, {1, 2, 4},
	}

	tris := make([]Triangle, 0, 6<<(2*detail))
	for _, f := range faces {
		tris = subdivide(tris, base[f[0]], base[f[1]], base[f[2]], detail)
	}
	return &Mesh{Name: "sphere", Triangles: tris}
}

func subdivide(dst []Triangle, a, b, c mgl32.Vec3, step int) []Triangle {
	if step == 0 {
		return append(dst, Triangle{A: a, B: b, C: c, Normal: a.Add(b).Add(c).Normalize()})
	}
	ab := a.Add(b).Normalize()
	bc := b.Add(c).Normalize()
	ca := c.Add(a).Normalize()

	dst = subdivide(dst, a, ab, ca, step-1)
	dst = subdivide(dst, ab, b, bc, step-1)
	dst = subdivide(dst, ca, bc, c, step-1)
	return subdivide(dst, ab, bc, ca, step-1)
}

// CameraMarker returns the bird's-eye stand-in for a first-person camera: a
// body box spanning [-1, 1] with an open lens hood flaring toward +Z.
func CameraMarker() *Mesh {
	tris := box(make([]Triangle, 0, 20), 1)
	tris = quad(tris,
		mgl32.Vec3{0.5, 0.5, 1}, mgl32.Vec3{-0.5, 0.5, 1},
		mgl32.Vec3{-1, 1, 3}, mgl32.Vec3{1, 1, 3}, mgl32.Vec3{0, 1, 0})
	tris = quad(tris,
		mgl32.Vec3{-1, -1, 3}, mgl32.Vec3{-0.5, -0.5, 1},
		mgl32.Vec3{0.5, -0.5, 1}, mgl32.Vec3{1, -1, 3}, mgl32.Vec3{0, -1, 0})
	tris = quad(tris,
		mgl32.Vec3{0.5, -0.5, 1}, mgl32.Vec3{1, -1, 3},
		mgl32.Vec3{1, 1, 3}, mgl32.Vec3{0.5, 0.5, 1}, mgl32.Vec3{1, 0, 0})
	tris = quad(tris,
		mgl32.Vec3{-0.5, -0.5, 1}, mgl32.Vec3{-1, -1, 3},
		mgl32.Vec3{-1, 1, 3}, mgl32.Vec3{-0.5, 0.5, 1}, mgl32.Vec3{-1, 0, 0})
	return &Mesh{Name: "camera", Triangles: tris, TwoSided: true}
}
