package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/splitview"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Transform places a mesh in the world.
type Transform struct {
	Model mgl32.Mat4
	// Normal is the inverse transpose of Model's upper 3x3.
	Normal mgl32.Mat3
}

// NewTransform returns a Transform for model with its normal matrix.
func NewTransform(model mgl32.Mat4) Transform {
	return Transform{Model: model, Normal: model.Mat3().Inv().Transpose()}
}

// Material is the flat color of an entity. Unlit entities ignore the light.
type Material struct {
	Color mgl32.Vec3
	Unlit bool
}

// Shape references the mesh an entity draws.
type Shape struct {
	Mesh *Mesh
}

// Motion animates a sphere around its origin on the XZ plane.
type Motion struct {
	Origin mgl32.Vec3
	Scale  mgl32.Vec3
	// Offset is the phase in degrees.
	Offset float32
}

// Marker binds a camera marker entity to the controller it represents.
type Marker struct {
	Controller *splitview.Controller
}

var (
	TransformComponent = donburi.NewComponentType[Transform]()
	MaterialComponent  = donburi.NewComponentType[Material]()
	ShapeComponent     = donburi.NewComponentType[Shape]()
	MotionComponent    = donburi.NewComponentType[Motion]()
	MarkerComponent    = donburi.NewComponentType[Marker]()

	// Ceiling entities are hidden from the bird's-eye camera.
	Ceiling = donburi.NewTag()
	// Light marks the light source entity.
	Light = donburi.NewTag()
)

var (
	drawables = donburi.NewQuery(filter.Contains(TransformComponent, MaterialComponent, ShapeComponent))
	movers    = donburi.NewQuery(filter.Contains(TransformComponent, MotionComponent))
	markers   = donburi.NewQuery(filter.Contains(TransformComponent, MarkerComponent))
)

// CameraSpawned is published when a new controller joins the tree.
type CameraSpawned struct {
	Controller *splitview.Controller
}

// CameraReleased is published when a controller loses its last region.
type CameraReleased struct {
	Controller *splitview.Controller
}

// Camera lifecycle events. They are queued on Publish and delivered to
// subscribers by Scene.Update.
var (
	CameraSpawnedEvent  = events.NewEventType[CameraSpawned]()
	CameraReleasedEvent = events.NewEventType[CameraReleased]()
)
