package viewer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the current frame. It is written to
// Config.ScreenshotDir at the end of the next Draw.
func (g *Game) Screenshot(label string) {
	g.screenshots = append(g.screenshots, label)
}

// flushScreenshots writes one PNG per queued label from the rendered screen.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshots) == 0 {
		return
	}
	defer func() { g.screenshots = g.screenshots[:0] }()

	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		logs.Warn(errors.New("creating screenshot dir failed").
			WithTag("dir", g.cfg.ScreenshotDir).
			Wrap(err))
		return
	}

	bounds := screen.Bounds()
	pixels := make([]byte, 4*bounds.Dx()*bounds.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, bounds.Dx(), bounds.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshots {
		path := screenshotPath(g.cfg.ScreenshotDir, stamp, g.runID, label)
		if err := writePNG(path, img); err != nil {
			logs.Warn(err)
			continue
		}
		logs.WithTag("run_id", g.runID).
			WithTag("path", path).
			Info("screenshot saved")
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// screenshotPath builds <dir>/<stamp>_<run>_<label>.png using the first
// segment of the run id.
func screenshotPath(dir, stamp, runID, label string) string {
	run, _, _ := strings.Cut(runID, "-")
	if run == "" {
		run = "run"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.png", stamp, run, sanitizeLabel(label)))
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating screenshot failed").
			WithTag("path", path).
			Wrap(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.New("encoding screenshot failed").
			WithTag("path", path).
			Wrap(err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
