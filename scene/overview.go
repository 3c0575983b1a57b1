package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	// OverviewPosition is where the bird's-eye camera settles.
	OverviewPosition = mgl32.Vec3{1.25, 4, 1.25}
	// OverviewShadingEye is the viewer position used for specular shading in
	// bird's-eye mode.
	OverviewShadingEye = mgl32.Vec3{1.5, 1.5, 1.5}
)

// FlyInDuration is how long the overview camera takes to reach
// OverviewPosition, in seconds.
const FlyInDuration = 0.6

// Overview is the bird's-eye camera. Start flies it in from a first-person
// position; Update advances the flight by frame time.
type Overview struct {
	tweens [3]*gween.Tween
	eye    mgl32.Vec3
	done   bool
}

// NewOverview returns an overview camera already at OverviewPosition.
func NewOverview() *Overview {
	return &Overview{eye: OverviewPosition, done: true}
}

// Start restarts the flight from from.
func (o *Overview) Start(from mgl32.Vec3) {
	for i := range o.tweens {
		o.tweens[i] = gween.New(from[i], OverviewPosition[i], FlyInDuration, ease.OutCubic)
	}
	o.eye = from
	o.done = false
}

// Update advances the flight by dt seconds.
func (o *Overview) Update(dt float32) {
	if o.done {
		return
	}
	done := true
	for i, tw := range o.tweens {
		val, finished := tw.Update(dt)
		o.eye[i] = val
		if !finished {
			done = false
		}
	}
	o.done = done
}

// Done reports whether the camera has arrived.
func (o *Overview) Done() bool {
	return o.done
}

// Eye returns the current camera position.
func (o *Overview) Eye() mgl32.Vec3 {
	return o.eye
}

// View returns a view matrix looking from Eye at the room center.
func (o *Overview) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}
