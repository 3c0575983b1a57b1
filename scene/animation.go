package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// degreesPerSecond is the angular speed shared by every sphere.
const degreesPerSecond = 50

// Cycle returns the shared animation phase in degrees for a time in seconds.
func Cycle(seconds float64) float32 {
	return float32(math.Mod(seconds*degreesPerSecond, 360))
}

// Position returns where m places its sphere at phase cycle.
func (m Motion) Position(cycle float32) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(cycle + m.Offset))
	return mgl32.Vec3{
		m.Origin.X() + float32(math.Sin(rad))*m.Scale.X(),
		m.Origin.Y(),
		m.Origin.Z() + float32(math.Cos(rad))*m.Scale.Z(),
	}
}

// animateSpheres moves every sphere to its position at time seconds.
func animateSpheres(w donburi.World, seconds float64) {
	cycle := Cycle(seconds)
	movers.Each(w, func(entry *donburi.Entry) {
		motion := MotionComponent.Get(entry)
		TransformComponent.SetValue(entry, NewTransform(sphereModel(motion.Position(cycle))))
	})
}

// markerModel orients the camera marker like its controller: yaw about +Y,
// then pitch about -X.
func markerModel(pos mgl32.Vec3, horizontal, vertical float64) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(markerScale, markerScale, markerScale)).
		Mul4(mgl32.HomogRotate3DY(float32(horizontal))).
		Mul4(mgl32.HomogRotate3DX(float32(-vertical)))
}

// aimMarkers copies the live controller angles onto their markers.
func aimMarkers(w donburi.World) {
	markers.Each(w, func(entry *donburi.Entry) {
		c := MarkerComponent.Get(entry).Controller
		if c == nil {
			return
		}
		TransformComponent.SetValue(entry, NewTransform(
			markerModel(c.Position(), c.HorizontalAngle(), c.VerticalAngle())))
	})
}
