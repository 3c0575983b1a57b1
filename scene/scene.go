// Package scene holds the room rendered into every viewport: walls, floor,
// ceiling, animated spheres, a light and one marker per first-person camera.
//
// Entities live in a donburi world. Meshes are projected on the CPU, sorted
// back to front and submitted to Ebitengine as a single triangle list per
// viewport.
package scene

import (
	"math/rand/v2"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/splitview"
	"github.com/yohamta/donburi"
)

// Config sets up the scene content.
type Config struct {
	Spheres int
	// SphereDetail is the subdivision depth of the sphere mesh.
	SphereDetail int
	// Seed drives sphere placement. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the standard room with 100 spheres.
func DefaultConfig() Config {
	return Config{Spheres: 100, SphereDetail: 2}
}

// Scene is the shared 3D world. It is not safe for concurrent use.
type Scene struct {
	world    donburi.World
	meshes   meshes
	renderer renderer
	markers  map[*splitview.Controller]donburi.Entity
}

// New builds the room described by cfg.
func New(cfg Config) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := &Scene{
		world:   donburi.NewWorld(),
		meshes:  newMeshes(cfg.SphereDetail),
		markers: make(map[*splitview.Controller]donburi.Entity),
	}

	addWalls(s.world, s.meshes)
	addTiles(s.world, s.meshes, 0, floorColor)
	addTiles(s.world, s.meshes, ceilingHeight, ceilingColor, Ceiling)
	addLight(s.world, s.meshes)
	addSpheres(s.world, s.meshes, cfg.Spheres, rng)

	CameraSpawnedEvent.Subscribe(s.world, s.onCameraSpawned)
	CameraReleasedEvent.Subscribe(s.world, s.onCameraReleased)

	logs.WithTag("entities", s.world.Len()).
		WithTag("spheres", cfg.Spheres).
		WithTag("seed", seed).
		Info("scene created")
	return s
}

// World returns the underlying donburi world.
func (s *Scene) World() donburi.World {
	return s.world
}

// Markers returns the number of camera markers in the world.
func (s *Scene) Markers() int {
	return len(s.markers)
}

// SpawnCamera queues a marker for c. It appears on the next Update.
func (s *Scene) SpawnCamera(c *splitview.Controller) {
	CameraSpawnedEvent.Publish(s.world, CameraSpawned{Controller: c})
}

// ReleaseCamera queues removal of c's marker. It disappears on the next
// Update.
func (s *Scene) ReleaseCamera(c *splitview.Controller) {
	CameraReleasedEvent.Publish(s.world, CameraReleased{Controller: c})
}

// Update delivers pending camera events, moves the spheres to their positions
// at seconds since start and aims the markers.
func (s *Scene) Update(seconds float64) {
	CameraSpawnedEvent.ProcessEvents(s.world)
	CameraReleasedEvent.ProcessEvents(s.world)
	animateSpheres(s.world, seconds)
	aimMarkers(s.world)
}

// Render draws the scene into f.Bounds of dst.
func (s *Scene) Render(dst *ebiten.Image, f Frame) RenderStats {
	return s.renderer.render(dst, s.world, f)
}

func (s *Scene) onCameraSpawned(w donburi.World, e CameraSpawned) {
	if e.Controller == nil {
		return
	}
	if _, ok := s.markers[e.Controller]; ok {
		return
	}
	c := e.Controller
	ent := createStatic(w, s.meshes.marker,
		markerModel(c.Position(), c.HorizontalAngle(), c.VerticalAngle()),
		markerColor, MarkerComponent)
	MarkerComponent.SetValue(w.Entry(ent), Marker{Controller: c})
	s.markers[c] = ent
}

func (s *Scene) onCameraReleased(w donburi.World, e CameraReleased) {
	ent, ok := s.markers[e.Controller]
	if !ok {
		return
	}
	if w.Valid(ent) {
		w.Remove(ent)
	}
	delete(s.markers, e.Controller)
}
