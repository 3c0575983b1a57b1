package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/phanxgames/splitview/viewer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/encoding/json"
)

var (
	// The splitview version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "splitview_info",
		Help:        "Splitview information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

// Keeps the config field names intact under obfuscating builds so the cli
// package generates readable options.
var _ = reflect.TypeOf(config{})

type config struct {
	Title         string  `cli:""        env:"SPLITVIEW_TITLE"          help:"Window title."`
	Width         int     `cli:""        env:"SPLITVIEW_WIDTH"          help:"Initial window width in pixels."`
	Height        int     `cli:""        env:"SPLITVIEW_HEIGHT"         help:"Initial window height in pixels."`
	StartX        float64 `cli:",hidden" env:"SPLITVIEW_START_X"        help:"Root camera x position."`
	StartY        float64 `cli:",hidden" env:"SPLITVIEW_START_Y"        help:"Root camera y position."`
	StartZ        float64 `cli:",hidden" env:"SPLITVIEW_START_Z"        help:"Root camera z position."`
	Spheres       int     `cli:""        env:"SPLITVIEW_SPHERES"        help:"Number of animated spheres."`
	SphereDetail  int     `cli:",hidden" env:"SPLITVIEW_SPHERE_DETAIL"  help:"Sphere subdivision level."`
	Seed          int     `cli:""        env:"SPLITVIEW_SEED"           help:"Random seed for spheres and camera spawns. 0 picks one."`
	ScreenshotDir string  `cli:""        env:"SPLITVIEW_SCREENSHOT_DIR" help:"Directory screenshots are written to."`
	TestScript    string  `cli:""        env:"SPLITVIEW_TEST_SCRIPT"    help:"JSON script of actions to play on startup."`
	MetricsAddr   string  `cli:""        env:"SPLITVIEW_METRICS_ADDR"   help:"Listening address for /metrics and /health. Empty disables it."`
	LogLevel      string  `cli:""        env:"SPLITVIEW_LOG_LEVEL"      help:"Log level (debug|info|warning|error)."`
	LogIndent     bool    `cli:""        env:"SPLITVIEW_LOG_INDENT"     help:"Indent logs."`
	Debug         bool    `cli:""        env:"SPLITVIEW_DEBUG"          help:"Log render stats every second."`
	ShowFPS       bool    `cli:""        env:"SPLITVIEW_SHOW_FPS"       help:"Draw the FPS overlay."`
	Version       bool    `cli:""        env:"-"                        help:"Show version."`
	Help          bool    `cli:""        env:"-"                        help:"Show help."`
}

func main() {
	defaults := viewer.DefaultConfig()
	conf := config{
		Title:         defaults.Title,
		Width:         defaults.Width,
		Height:        defaults.Height,
		StartX:        float64(defaults.Start.X()),
		StartY:        float64(defaults.Start.Y()),
		StartZ:        float64(defaults.Start.Z()),
		Spheres:       defaults.Scene.Spheres,
		SphereDetail:  defaults.Scene.SphereDetail,
		ScreenshotDir: defaults.ScreenshotDir,
		LogLevel:      logs.InfoLevel.String(),
	}

	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Opens the split-view room viewer.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	cfg := defaults
	cfg.Title = conf.Title
	cfg.Width = conf.Width
	cfg.Height = conf.Height
	cfg.Start = mgl32.Vec3{float32(conf.StartX), float32(conf.StartY), float32(conf.StartZ)}
	cfg.Scene.Spheres = conf.Spheres
	cfg.Scene.SphereDetail = conf.SphereDetail
	cfg.Scene.Seed = uint64(conf.Seed)
	cfg.ScreenshotDir = conf.ScreenshotDir
	cfg.Debug = conf.Debug
	cfg.ShowFPS = conf.ShowFPS
	cfg.RunID = uuid.NewString()

	runner, err := loadTestScript(conf.TestScript)
	if err != nil {
		logs.Warn(err)
	}

	if conf.MetricsAddr != "" {
		go viewer.ListenAndServe(ctx,
			&http.Server{Addr: conf.MetricsAddr, Handler: viewer.AdminHandler()},
		)
	}

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("run_id", cfg.RunID).
		WithTag("metrics_addr", conf.MetricsAddr).
		Info("starting splitview")

	if err := viewer.Run(ctx, cfg, runner); err != nil {
		logs.Fatal(err)
	}
	cancel()
}

// loadTestScript reads the script at path. An empty path means no script.
func loadTestScript(path string) (*viewer.TestRunner, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading test script failed").
			WithTag("file_name", path).
			Wrap(err)
	}
	runner, err := viewer.LoadTestScript(data)
	if err != nil {
		return nil, errors.New("loading test script failed").
			WithTag("file_name", path).
			Wrap(err)
	}
	return runner, nil
}
