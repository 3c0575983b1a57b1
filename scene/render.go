package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/splitview"
	"github.com/yohamta/donburi"
)

// Perspective parameters shared by every viewport.
const (
	FieldOfView = 45 // degrees
	Near        = 0.01
	Far         = 100
)

// Phong terms. The light is white with unit diffuse and specular intensity.
const (
	ambient   = 0.2
	specular  = 0.5
	shininess = 32
)

// Projection returns the perspective projection for a viewport aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
}

// Frame describes one viewport render.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	// Eye is the viewer position used for specular shading.
	Eye mgl32.Vec3
	// Bounds is the destination rectangle in dst pixels.
	Bounds image.Rectangle
	// Leaves are the current viewports; in bird's-eye mode their controllers'
	// markers are highlighted.
	Leaves   []splitview.Region
	BirdsEye bool
}

// RenderStats summarizes one Render call.
type RenderStats struct {
	Entities  int
	Triangles int
	Culled    int
	DrawCalls int
}

// Add accumulates other into s.
func (s *RenderStats) Add(other RenderStats) {
	s.Entities += other.Entities
	s.Triangles += other.Triangles
	s.Culled += other.Culled
	s.DrawCalls += other.DrawCalls
}

// face is a projected, shaded triangle waiting to be sorted and submitted.
type face struct {
	pts   [3]mgl32.Vec2
	depth float32
	color mgl32.Vec3
}

// renderer owns the per-frame buffers. They grow to a high-water mark and are
// reused across frames.
type renderer struct {
	faces    []face
	sortBuf  []face
	vertices []ebiten.Vertex
	indices  []uint32
	white    *ebiten.Image
}

// whitePixel returns a lazily created 1x1 white source image.
func (r *renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}
	return r.white
}

// collect projects every visible drawable of w into r.faces.
func (r *renderer) collect(w donburi.World, f Frame) RenderStats {
	var stats RenderStats
	r.faces = r.faces[:0]

	viewProj := f.Projection.Mul4(f.View)
	camera := f.View.Inv().Col(3).Vec3()
	bounds := f.Bounds

	var active [16]*splitview.Controller
	highlighted := active[:0]
	if f.BirdsEye {
		for _, leaf := range f.Leaves {
			highlighted = append(highlighted, leaf.Controller())
		}
	}

	drawables.Each(w, func(entry *donburi.Entry) {
		if f.BirdsEye && entry.HasComponent(Ceiling) {
			return
		}
		isMarker := entry.HasComponent(MarkerComponent)
		if isMarker && !f.BirdsEye {
			return
		}

		tr := TransformComponent.Get(entry)
		mat := MaterialComponent.Get(entry)
		mesh := ShapeComponent.Get(entry).Mesh

		base := mat.Color
		if isMarker && contains(highlighted, MarkerComponent.Get(entry).Controller) {
			base = activeColor
		}

		before := len(r.faces)
		for _, tri := range mesh.Triangles {
			wa := tr.Model.Mul4x1(tri.A.Vec4(1)).Vec3()
			wb := tr.Model.Mul4x1(tri.B.Vec4(1)).Vec3()
			wc := tr.Model.Mul4x1(tri.C.Vec4(1)).Vec3()

			n := tr.Normal.Mul3x1(tri.Normal).Normalize()
			if n.Dot(camera.Sub(wa)) <= 0 {
				if !mesh.TwoSided {
					stats.Culled++
					continue
				}
				n = n.Mul(-1)
			}

			fc, ok := project(viewProj, bounds, wa, wb, wc)
			if !ok {
				stats.Culled++
				continue
			}
			if mat.Unlit {
				fc.color = base
			} else {
				fc.color = shade(base, n, wa.Add(wb).Add(wc).Mul(1.0/3.0), f.Eye)
			}
			r.faces = append(r.faces, fc)
		}
		if len(r.faces) > before {
			stats.Entities++
		}
	})

	stats.Triangles = len(r.faces)
	return stats
}

func contains(cs []*splitview.Controller, c *splitview.Controller) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// project maps a world-space triangle to pixels in bounds. It reports false
// for triangles crossing the near plane or entirely outside one side of the
// view volume.
func project(viewProj mgl32.Mat4, bounds image.Rectangle, a, b, c mgl32.Vec3) (face, bool) {
	var fc face
	var ndc [3]mgl32.Vec3
	for i, p := range [3]mgl32.Vec3{a, b, c} {
		clip := viewProj.Mul4x1(p.Vec4(1))
		if clip.W() < Near {
			return fc, false
		}
		ndc[i] = clip.Vec3().Mul(1 / clip.W())
		fc.depth += clip.W()
	}
	fc.depth /= 3

	for axis := 0; axis < 3; axis++ {
		if ndc[0][axis] > 1 && ndc[1][axis] > 1 && ndc[2][axis] > 1 {
			return fc, false
		}
		if ndc[0][axis] < -1 && ndc[1][axis] < -1 && ndc[2][axis] < -1 {
			return fc, false
		}
	}

	bx, by := float32(bounds.Min.X), float32(bounds.Min.Y)
	bw, bh := float32(bounds.Dx()), float32(bounds.Dy())
	for i, p := range ndc {
		fc.pts[i] = mgl32.Vec2{
			bx + (p.X()+1)/2*bw,
			by + (1-p.Y())/2*bh,
		}
	}
	return fc, true
}

// shade applies flat Phong lighting at point p with normal n.
func shade(base, n, p, eye mgl32.Vec3) mgl32.Vec3 {
	l := LightPosition.Sub(p).Normalize()
	diffuse := n.Dot(l)

	var spec float32
	if diffuse > 0 {
		v := eye.Sub(p).Normalize()
		reflected := n.Mul(2 * diffuse).Sub(l)
		spec = specular * float32(math.Pow(float64(max(v.Dot(reflected), 0)), shininess))
	} else {
		diffuse = 0
	}

	k := ambient + diffuse
	return mgl32.Vec3{
		min(base.X()*k+spec, 1),
		min(base.Y()*k+spec, 1),
		min(base.Z()*k+spec, 1),
	}
}

// faceFartherOrEqual orders faces back to front; <= keeps the sort stable.
func faceFartherOrEqual(a, b face) bool {
	return a.depth >= b.depth
}

// sortFaces sorts r.faces back to front in place using r.sortBuf as scratch.
// Bottom-up merge sort: no allocations once sortBuf reaches its high-water
// mark.
func (r *renderer) sortFaces() {
	n := len(r.faces)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]face, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.faces
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeFaces(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.faces, r.sortBuf)
	}
}

// mergeFaces merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
func mergeFaces(src, dst []face, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if faceFartherOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

// buildVertices converts the sorted faces into one indexed triangle list.
func (r *renderer) buildVertices() {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, fc := range r.faces {
		base := uint32(len(r.vertices))
		for _, p := range fc.pts {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: fc.color.X(),
				ColorG: fc.color.Y(),
				ColorB: fc.color.Z(),
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
}

// render draws w into the f.Bounds region of dst.
func (r *renderer) render(dst *ebiten.Image, w donburi.World, f Frame) RenderStats {
	stats := r.collect(w, f)
	if len(r.faces) == 0 {
		return stats
	}
	r.sortFaces()
	r.buildVertices()

	target := dst.SubImage(f.Bounds).(*ebiten.Image)
	var op ebiten.DrawTrianglesOptions
	target.DrawTriangles32(r.vertices, r.indices, r.whitePixel(), &op)
	stats.DrawCalls = 1
	return stats
}
