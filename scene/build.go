package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
)

// Room layout.
const (
	wallPanelsAcross = 10
	wallPanelsHigh   = 3
	tilesPerSide     = 10
	ceilingHeight    = 1.2
	sphereScale      = 0.05
	lightScale       = 0.01
	markerScale      = 0.05
)

// LightPosition is where the single point light sits.
var LightPosition = mgl32.Vec3{0.3, 0.99, 0.8}

var (
	wallColor    = mgl32.Vec3{0.62, 0.56, 0.5}
	floorColor   = mgl32.Vec3{0.45, 0.42, 0.4}
	ceilingColor = mgl32.Vec3{0.75, 0.75, 0.78}
	lightColor   = mgl32.Vec3{1, 1, 1}
	markerColor  = mgl32.Vec3{0.2, 0.2, 0.2}
	activeColor  = mgl32.Vec3{0.95, 0.55, 0.15}
)

// meshes holds the shared meshes of one scene.
type meshes struct {
	cube   *Mesh
	sphere *Mesh
	marker *Mesh
}

func newMeshes(detail int) meshes {
	return meshes{cube: Cube(), sphere: Sphere(detail), marker: CameraMarker()}
}

func createStatic(w donburi.World, mesh *Mesh, model mgl32.Mat4, color mgl32.Vec3, tags ...component.IComponentType) donburi.Entity {
	components := append([]component.IComponentType{TransformComponent, MaterialComponent, ShapeComponent}, tags...)
	e := w.Create(components...)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(model))
	MaterialComponent.SetValue(entry, Material{Color: color})
	ShapeComponent.SetValue(entry, Shape{Mesh: mesh})
	return e
}

// addWalls builds four walls of 0.2 x 0.4 panels at x = ±1 and z = ±1. The
// panels of the x walls are turned 90° about Y.
func addWalls(w donburi.World, m meshes) {
	size := mgl32.Scale3D(0.2, 0.4, 0.01)
	turn := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	for i := 0; i < wallPanelsHigh; i++ {
		y := float32(0.2 + 0.4*float64(i))
		for j := 0; j < wallPanelsAcross; j++ {
			a := float32(-0.9 + 0.2*float64(j))
			for _, side := range [2]float32{-1, 1} {
				createStatic(w, m.cube, mgl32.Translate3D(a, y, side).Mul4(size), wallColor)
				createStatic(w, m.cube, mgl32.Translate3D(side, y, a).Mul4(turn).Mul4(size), wallColor)
			}
		}
	}
}

// addTiles builds a 10 x 10 grid of 0.2 x 0.01 x 0.2 tiles at height y.
func addTiles(w donburi.World, m meshes, y float32, color mgl32.Vec3, tags ...component.IComponentType) {
	size := mgl32.Scale3D(0.2, 0.01, 0.2)
	for i := 0; i < tilesPerSide; i++ {
		for j := 0; j < tilesPerSide; j++ {
			x := float32(-0.9 + 0.2*float64(i))
			z := float32(-0.9 + 0.2*float64(j))
			createStatic(w, m.cube, mgl32.Translate3D(x, y, z).Mul4(size), color, tags...)
		}
	}
}

func addLight(w donburi.World, m meshes) {
	e := createStatic(w, m.sphere,
		mgl32.Translate3D(LightPosition.X(), LightPosition.Y(), LightPosition.Z()).
			Mul4(mgl32.Scale3D(lightScale, lightScale, lightScale)),
		lightColor, Light)
	MaterialComponent.SetValue(w.Entry(e), Material{Color: lightColor, Unlit: true})
}

// addSpheres creates n animated spheres with random origins, ranges, phases
// and colors drawn from rng.
func addSpheres(w donburi.World, m meshes, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		motion := randomMotion(rng)
		color := mgl32.Vec3{randRange(rng, 0.4, 0.95), randRange(rng, 0.4, 0.95), randRange(rng, 0.4, 0.95)}

		e := createStatic(w, m.sphere, sphereModel(motion.Origin), color, MotionComponent)
		MotionComponent.SetValue(w.Entry(e), motion)
	}
}

func randomMotion(rng *rand.Rand) Motion {
	x := randRange(rng, -0.75, 0.75)
	z := randRange(rng, -0.75, 0.75)
	return Motion{
		Origin: mgl32.Vec3{x, sphereScale, z},
		Scale: mgl32.Vec3{
			randRange(rng, 0.05, 0.9-float32(math.Abs(float64(x)))),
			0,
			randRange(rng, 0.05, 0.9-float32(math.Abs(float64(z)))),
		},
		Offset: randRange(rng, 0, 360),
	}
}

func sphereModel(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(sphereScale, sphereScale, sphereScale))
}

func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
