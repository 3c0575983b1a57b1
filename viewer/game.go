package viewer

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/splitview"
	"github.com/phanxgames/splitview/scene"
)

// Game drives the split-view loop as an ebiten.Game: it applies actions,
// updates controllers once per frame and renders one scene frame per leaf, or
// a single bird's-eye frame.
type Game struct {
	cfg   Config
	input Input
	runID string

	tree     *splitview.Tree
	scene    *scene.Scene
	overview *scene.Overview
	birdsEye bool
	rng      *rand.Rand

	timer *Timer
	fps   *FPSCounter

	runner      *TestRunner
	queue       []Action
	screenshots []string
	quit        bool
	done        <-chan struct{}

	width, height int
	leaves        []splitview.Region
	frames        []scene.Frame
	stats         scene.RenderStats
	renderTime    time.Duration
	overlay       *ebiten.Image
}

// NewGame builds the scene and a single full-window viewport at cfg.Start.
func NewGame(cfg Config, input Input) *Game {
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = rand.Uint64()
		cfg.Scene.Seed = seed
	}

	g := &Game{
		cfg:      cfg,
		input:    input,
		runID:    runID,
		scene:    scene.New(cfg.Scene),
		overview: scene.NewOverview(),
		rng:      rand.New(rand.NewPCG(seed, ^seed)),
		timer:    NewTimer(nil),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	g.fps = NewFPSCounter(cfg.Title, 0, nil)

	root := splitview.NewController(input, cfg.Start)
	g.tree = splitview.NewTree(root)
	g.tree.OnRelease(g.scene.ReleaseCamera)
	g.scene.SpawnCamera(root)
	g.leaves = g.tree.AppendLeaves(g.leaves[:0])

	logs.WithTag("run_id", runID).
		WithTag("width", cfg.Width).
		WithTag("height", cfg.Height).
		Info("viewer created")
	return g
}

// Tree returns the region tree.
func (g *Game) Tree() *splitview.Tree {
	return g.tree
}

// Scene returns the rendered scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// BirdsEye reports whether the overview camera is active.
func (g *Game) BirdsEye() bool {
	return g.birdsEye
}

// Frames returns the scene frames computed by the last Update.
func (g *Game) Frames() []scene.Frame {
	return g.frames
}

// RunID returns the id tagging this run's logs and screenshots.
func (g *Game) RunID() string {
	return g.runID
}

// Apply performs a single action.
func (g *Game) Apply(a Action) {
	switch a {
	case ActionSplit:
		g.split()
	case ActionMerge:
		g.merge()
	case ActionToggleView:
		g.toggleView()
	case ActionScreenshot:
		g.Screenshot("screenshot")
	case ActionQuit:
		g.quit = true
	}
}

func (g *Game) split() {
	pos := randomSpawn(g.rng)
	g.tree.Split(g.input, splitview.Inherit(), splitview.Fresh(pos))
	fresh := g.tree.At(g.tree.Len() - 1).Controller()
	g.scene.SpawnCamera(fresh)
	splitsTotal.Inc()

	logs.WithTag("run_id", g.runID).
		WithTag("controller_id", fresh.ID()).
		WithTag("viewports", g.tree.Len()-g.tree.Len()/2).
		WithTag("depth", g.tree.Depth()).
		Info("viewport split")
}

func (g *Game) merge() {
	if !g.tree.Merge() {
		return
	}
	mergesTotal.Inc()

	logs.WithTag("run_id", g.runID).
		WithTag("viewports", g.tree.Len()-g.tree.Len()/2).
		WithTag("depth", g.tree.Depth()).
		Info("viewports merged")
}

func (g *Game) toggleView() {
	g.birdsEye = !g.birdsEye
	if g.birdsEye {
		g.overview.Start(g.tree.Root().Controller().Position())
	}
	logs.WithTag("run_id", g.runID).
		WithTag("birds_eye", g.birdsEye).
		Info("view mode toggled")
}

// randomSpawn returns a camera position inside the room: x, z in [-0.9, 0.9]
// and y in [0.2, 0.9].
func randomSpawn(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		-0.9 + 1.8*rng.Float32(),
		0.2 + 0.7*rng.Float32(),
		-0.9 + 1.8*rng.Float32(),
	}
}

// Update applies at most one queued action, or the keys pressed this frame,
// then updates controllers, the scene and the viewport layout. A degenerate
// viewport is returned as an error and ends the game.
func (g *Game) Update() error {
	seconds, dt := g.timer.Tick()

	if g.runner != nil {
		g.runner.step(g)
	}
	if a, ok := g.popAction(); ok {
		g.Apply(a)
	} else {
		for _, b := range keyBindings {
			if g.input.IsKeyJustPressed(b.key) {
				g.Apply(b.action)
			}
		}
	}
	if g.quit || g.closed() {
		logs.WithTag("run_id", g.runID).Info("closing viewer")
		return ebiten.Termination
	}

	g.leaves = g.tree.AppendLeaves(g.leaves[:0])
	splitview.UpdateControllers(g.leaves)

	g.scene.Update(seconds)
	g.overview.Update(float32(dt))

	if err := g.layoutFrames(); err != nil {
		return err
	}

	g.observeTree()
	if g.fps.Tick(seconds) {
		fpsGauge.Set(g.fps.FPS())
		g.debugLog()
	}
	return nil
}

func (g *Game) closed() bool {
	if g.done == nil {
		return false
	}
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// layoutFrames resolves the current leaves, or the overview, to scene
// frames for the current window size.
func (g *Game) layoutFrames() error {
	g.frames = g.frames[:0]

	if g.birdsEye {
		aspect, err := splitview.AspectRatio(g.width, g.height)
		if err != nil {
			return err
		}
		g.frames = append(g.frames, scene.Frame{
			View:       g.overview.View(),
			Projection: scene.Projection(aspect),
			Eye:        scene.OverviewShadingEye,
			Bounds:     image.Rect(0, 0, g.width, g.height),
			Leaves:     g.leaves,
			BirdsEye:   true,
		})
		return nil
	}

	viewports, err := splitview.Layout(g.leaves, g.width, g.height)
	if err != nil {
		return err
	}
	for _, vp := range viewports {
		c := vp.Region.Controller()
		g.frames = append(g.frames, scene.Frame{
			View:       c.View(),
			Projection: scene.Projection(vp.Aspect),
			Eye:        c.Position(),
			Bounds:     vp.Bounds,
			Leaves:     g.leaves,
		})
	}
	return nil
}

// Draw renders every frame computed by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ClearColor)

	start := time.Now()
	var stats scene.RenderStats
	for _, f := range g.frames {
		stats.Add(g.scene.Render(screen, f))
	}
	g.stats = stats
	g.renderTime = time.Since(start)
	frameTriangles.Set(float64(stats.Triangles))

	if g.cfg.ShowFPS {
		g.drawOverlay(screen)
	}
	g.flushScreenshots(screen)
}

// Layout uses the window size as the screen size, so viewports map one to
// one onto window pixels. A zero-sized window is kept for the next Update to
// reject; Ebitengine itself always gets at least one pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
