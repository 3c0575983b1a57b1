package splitview

import (
	"image"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/go-gl/mathgl/mgl32"
)

func TestUpdateControllersOncePerInstance(t *testing.T) {
	tree, win := newTestTree()
	tree.Split(win, Inherit(), Inherit())

	leaves := tree.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("len(leaves) = %d, want 2", len(leaves))
	}
	if leaves[0].Controller() != leaves[1].Controller() {
		t.Fatal("inherited leaves should share the root controller")
	}

	if got := UpdateControllers(leaves); got != 1 {
		t.Errorf("UpdateControllers = %d, want 1", got)
	}
	if win.samples != 1 {
		t.Errorf("cursor sampled %d times, want 1", win.samples)
	}
}

func TestUpdateControllersSharedDeltaAppliedOnce(t *testing.T) {
	tree, win := newTestTree()
	tree.Split(win, Inherit(), Inherit())
	leaves := tree.Leaves()

	UpdateControllers(leaves)
	win.x += 100
	UpdateControllers(leaves)

	got := leaves[0].Controller().HorizontalAngle()
	want := 3.14159265 - MouseSpeed*100
	if !approxEqual(got, want, 1e-4) {
		t.Errorf("HorizontalAngle = %f, want %f", got, want)
	}
}

func TestUpdateControllersDistinct(t *testing.T) {
	tree, win := newTestTree()
	splitN(tree, win, 3)

	leaves := tree.Leaves()
	if len(leaves) != 4 {
		t.Fatalf("len(leaves) = %d, want 4", len(leaves))
	}
	if got := UpdateControllers(leaves); got != 4 {
		t.Errorf("UpdateControllers = %d, want 4", got)
	}
	if win.samples != 4 {
		t.Errorf("cursor sampled %d times, want 4", win.samples)
	}
}

func TestLayoutPixels(t *testing.T) {
	tree, win := newTestTree()
	splitN(tree, win, 2)

	viewports, err := Layout(tree.Leaves(), 720, 480)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Index 2 (right half), then 3 and 4 (left half cut horizontally).
	want := []struct {
		bounds image.Rectangle
		aspect float64
	}{
		{image.Rect(360, 0, 720, 480), 0.75},
		{image.Rect(0, 0, 360, 240), 1.5},
		{image.Rect(0, 240, 360, 480), 1.5},
	}
	if len(viewports) != len(want) {
		t.Fatalf("len(viewports) = %d, want %d", len(viewports), len(want))
	}
	for i, w := range want {
		if viewports[i].Bounds != w.bounds {
			t.Errorf("viewports[%d].Bounds = %v, want %v", i, viewports[i].Bounds, w.bounds)
		}
		if !approxEqual(float64(viewports[i].Aspect), w.aspect, epsilon) {
			t.Errorf("viewports[%d].Aspect = %f, want %f", i, viewports[i].Aspect, w.aspect)
		}
	}
}

func TestLayoutOneViewportPerLeaf(t *testing.T) {
	tree, win := newTestTree()
	tree.Split(win, Inherit(), Inherit())

	viewports, err := Layout(tree.Leaves(), 100, 100)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(viewports) != 2 {
		t.Fatalf("len(viewports) = %d, want 2", len(viewports))
	}
	if viewports[0].Region.Controller() != viewports[1].Region.Controller() {
		t.Error("viewports of a shared controller should not be merged")
	}
}

func TestLayoutZeroSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero height", 640, 0},
		{"zero width", 0, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := newTestTree()
			_, err := Layout(tree.Leaves(), tt.width, tt.height)
			if !errors.IsType(err, ErrTypeDegenerateAspect) {
				t.Errorf("Layout(%d, %d) error = %v, want type %s", tt.width, tt.height, err, ErrTypeDegenerateAspect)
			}
		})
	}
}

func TestLayoutDegenerateAfterDeepSplit(t *testing.T) {
	tree, win := newTestTree()
	splitN(tree, win, 31)

	// Depth-5 leaves have a quarter of the window height: 3 / 4 truncates to 0.
	_, err := Layout(tree.Leaves(), 64, 3)
	if !errors.IsType(err, ErrTypeDegenerateAspect) {
		t.Errorf("Layout error = %v, want type %s", err, ErrTypeDegenerateAspect)
	}
}

func TestLayoutDegenerateAfterDeepVerticalSplit(t *testing.T) {
	tree, win := newTestTree()
	splitN(tree, win, 15)

	// Depth-4 leaves have a quarter of the window width: 3 / 4 truncates to 0.
	_, err := Layout(tree.Leaves(), 3, 64)
	if !errors.IsType(err, ErrTypeDegenerateAspect) {
		t.Errorf("Layout error = %v, want type %s", err, ErrTypeDegenerateAspect)
	}

	// The same tree on a wide enough window is fine.
	viewports, err := Layout(tree.Leaves(), 64, 64)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	for i, vp := range viewports {
		if vp.Aspect <= 0 {
			t.Errorf("viewports[%d].Aspect = %f, want > 0", i, vp.Aspect)
		}
	}
}

func TestAspectRatio(t *testing.T) {
	a, err := AspectRatio(1280, 720)
	if err != nil {
		t.Fatalf("AspectRatio(1280, 720): %v", err)
	}
	if !approxEqual(float64(a), 16.0/9.0, epsilon) {
		t.Errorf("AspectRatio(1280, 720) = %f, want %f", a, 16.0/9.0)
	}

	for _, size := range [][2]int{{0, 10}, {10, 0}, {0, 0}} {
		if _, err := AspectRatio(size[0], size[1]); !errors.IsType(err, ErrTypeDegenerateAspect) {
			t.Errorf("AspectRatio(%d, %d) error = %v, want type %s", size[0], size[1], err, ErrTypeDegenerateAspect)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 0.5, Height: 1}
	b := Rect{X: 0.5, Y: 0, Width: 0.5, Height: 1}
	c := Rect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}

	if a.Overlaps(b) {
		t.Error("edge-sharing rects should not overlap")
	}
	if !a.Overlaps(c) || !b.Overlaps(c) {
		t.Error("rects sharing interior area should overlap")
	}
}

func TestGrowthConstructors(t *testing.T) {
	if m := Inherit().Mode; m != GrowInherit {
		t.Errorf("Inherit().Mode = %v, want %v", m, GrowInherit)
	}
	g := Fresh(mgl32.Vec3{1, 2, 3})
	if g.Mode != GrowFresh {
		t.Errorf("Fresh().Mode = %v, want %v", g.Mode, GrowFresh)
	}
	if g.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Fresh().Position = %v, want (1, 2, 3)", g.Position)
	}
	if GrowInherit.String() != "inherit" || GrowFresh.String() != "fresh" {
		t.Errorf("GrowMode names = %q, %q", GrowInherit.String(), GrowFresh.String())
	}
}
