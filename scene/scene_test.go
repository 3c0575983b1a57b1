package scene

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/splitview"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type stillWindow struct{}

func (stillWindow) CursorPosition() (float64, float64) { return 0, 0 }

func newTestScene(spheres int) *Scene {
	return New(Config{Spheres: spheres, SphereDetail: 0, Seed: 7})
}

func TestNewSceneContent(t *testing.T) {
	s := newTestScene(5)
	w := s.World()

	require.Equal(t, 120+100+100+1+5, drawables.Count(w))
	require.Equal(t, 100, donburi.NewQuery(filter.Contains(Ceiling)).Count(w))
	require.Equal(t, 1, donburi.NewQuery(filter.Contains(Light)).Count(w))
	require.Equal(t, 5, movers.Count(w))
	require.Zero(t, markers.Count(w))

	light, ok := donburi.NewQuery(filter.Contains(Light)).First(w)
	require.True(t, ok)
	require.True(t, MaterialComponent.Get(light).Unlit)
}

func TestSceneSeedIsDeterministic(t *testing.T) {
	motions := func() []Motion {
		var out []Motion
		movers.Each(newTestScene(10).World(), func(e *donburi.Entry) {
			out = append(out, *MotionComponent.Get(e))
		})
		return out
	}
	require.Equal(t, motions(), motions())
}

func TestRandomMotionStaysInsideRoom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		m := randomMotion(rng)
		require.Equal(t, float32(sphereScale), m.Origin.Y())
		require.LessOrEqual(t, abs32(m.Origin.X()), float32(0.75))
		require.LessOrEqual(t, abs32(m.Origin.Z()), float32(0.75))
		require.GreaterOrEqual(t, m.Offset, float32(0))
		require.Less(t, m.Offset, float32(360))

		// The farthest point of the orbit stays inside the walls.
		require.LessOrEqual(t, abs32(m.Origin.X())+m.Scale.X(), float32(0.9)+1e-6)
		require.LessOrEqual(t, abs32(m.Origin.Z())+m.Scale.Z(), float32(0.9)+1e-6)
		require.GreaterOrEqual(t, m.Scale.X(), float32(0.05))
	}
}

func TestCycle(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float32
	}{
		{0, 0},
		{1, 50},
		{7, 350},
		{7.3, 5},
		{72, 0},
	}
	for _, tt := range tests {
		if got := Cycle(tt.seconds); math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("Cycle(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestMotionPosition(t *testing.T) {
	m := Motion{Origin: mgl32.Vec3{0.1, 0.05, -0.2}, Scale: mgl32.Vec3{0.3, 0, 0.4}, Offset: 30}

	p := m.Position(60) // 90°: full X swing, no Z swing
	require.InDelta(t, 0.4, p.X(), 1e-5)
	require.InDelta(t, 0.05, p.Y(), 1e-5)
	require.InDelta(t, -0.2, p.Z(), 1e-5)

	p = m.Position(330) // 0°: full Z swing
	require.InDelta(t, 0.1, p.X(), 1e-5)
	require.InDelta(t, 0.2, p.Z(), 1e-5)
}

func TestUpdateMovesSpheres(t *testing.T) {
	s := newTestScene(3)
	s.Update(2)

	require.Equal(t, 3, movers.Count(s.World()))
	movers.Each(s.World(), func(e *donburi.Entry) {
		want := sphereModel(MotionComponent.Get(e).Position(Cycle(2)))
		require.True(t, want.ApproxEqual(TransformComponent.Get(e).Model))
	})
}

func TestCameraMarkersFollowEvents(t *testing.T) {
	s := newTestScene(0)
	c := splitview.NewController(stillWindow{}, mgl32.Vec3{0.5, 0.5, 0.5})

	s.SpawnCamera(c)
	require.Zero(t, s.Markers(), "events are delivered on Update")
	s.Update(0)
	require.Equal(t, 1, s.Markers())
	require.Equal(t, 1, markers.Count(s.World()))

	// Spawning twice keeps one marker.
	s.SpawnCamera(c)
	s.Update(0)
	require.Equal(t, 1, s.Markers())

	s.ReleaseCamera(c)
	s.Update(0)
	require.Zero(t, s.Markers())
	require.Zero(t, markers.Count(s.World()))

	// Unknown controllers are ignored.
	s.ReleaseCamera(c)
	s.Update(0)
	require.Zero(t, s.Markers())
}

func TestMarkerFollowsControllerAngles(t *testing.T) {
	s := newTestScene(0)
	c := splitview.NewController(stillWindow{}, mgl32.Vec3{0.2, 0.3, 0.4})
	s.SpawnCamera(c)
	s.Update(0)

	entry, ok := markers.First(s.World())
	require.True(t, ok)

	// The marker's +Z axis is the controller's look direction.
	forward := TransformComponent.Get(entry).Model.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
	dir := c.Direction()
	require.InDelta(t, dir.X(), forward.X(), 1e-5)
	require.InDelta(t, dir.Y(), forward.Y(), 1e-5)
	require.InDelta(t, dir.Z(), forward.Z(), 1e-5)
}

func TestOverviewFlyIn(t *testing.T) {
	o := NewOverview()
	require.True(t, o.Done())
	require.Equal(t, OverviewPosition, o.Eye())

	from := mgl32.Vec3{0, 0.2, 0.8}
	o.Start(from)
	require.False(t, o.Done())
	require.Equal(t, from, o.Eye())

	o.Update(FlyInDuration / 2)
	mid := o.Eye()
	require.False(t, o.Done())
	require.Greater(t, mid.Y(), from.Y())
	require.Less(t, mid.Y(), OverviewPosition.Y())

	o.Update(FlyInDuration)
	require.True(t, o.Done())
	require.True(t, OverviewPosition.ApproxEqualThreshold(o.Eye(), 1e-5))
}
