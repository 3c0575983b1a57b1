package splitview

import (
	"image"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// ErrTypeDegenerateAspect is the error type returned when a viewport
// resolves to a zero pixel width or height.
const ErrTypeDegenerateAspect = "degenerate_aspect"

// Viewport is a leaf region resolved to window pixels.
type Viewport struct {
	Region Region
	// Bounds is the pixel rectangle, origin at the window's top-left.
	Bounds image.Rectangle
	// Aspect is Bounds width over height.
	Aspect float32
}

// UpdateControllers calls UpdateView exactly once for every distinct
// controller bound to leaves, compared by identity, and returns how many
// controllers were updated.
func UpdateControllers(leaves []Region) int {
	var buf [16]*Controller
	distinct := distinctControllers(leaves, buf[:0])
	for _, c := range distinct {
		c.UpdateView()
	}
	return len(distinct)
}

// Layout maps every leaf to a pixel viewport of a width x height window. The
// result has one entry per leaf, in leaf order; shared controllers are not
// deduplicated. A leaf with a zero pixel width or height is a configuration
// error.
func Layout(leaves []Region, width, height int) ([]Viewport, error) {
	viewports := make([]Viewport, 0, len(leaves))
	for _, leaf := range leaves {
		x := int(leaf.X * float32(width))
		y := int(leaf.Y * float32(height))
		w := int(leaf.Width * float32(width))
		h := int(leaf.Height * float32(height))

		aspect, err := AspectRatio(w, h)
		if err != nil {
			return nil, errors.New("invalid viewport").
				WithType(ErrTypeDegenerateAspect).
				WithTag("controller_id", leaf.Controller().ID()).
				WithTag("window_width", width).
				WithTag("window_height", height).
				Wrap(err)
		}

		viewports = append(viewports, Viewport{
			Region: leaf,
			Bounds: image.Rect(x, y, x+w, y+h),
			Aspect: aspect,
		})
	}
	return viewports, nil
}

// AspectRatio returns width / height. A zero width or height is reported as
// an error of type ErrTypeDegenerateAspect rather than producing a projection
// with Inf or NaN terms.
func AspectRatio(width, height int) (float32, error) {
	if width == 0 || height == 0 {
		return 0, errors.New("viewport has a zero pixel size").
			WithType(ErrTypeDegenerateAspect).
			WithTag("width", width).
			WithTag("height", height)
	}
	return float32(width) / float32(height), nil
}

// distinctControllers appends the distinct non-nil controllers of regions to
// dst in order of first appearance.
func distinctControllers(regions []Region, dst []*Controller) []*Controller {
outer:
	for _, r := range regions {
		if r.controller == nil {
			continue
		}
		for _, seen := range dst {
			if seen == r.controller {
				continue outer
			}
		}
		dst = append(dst, r.controller)
	}
	return dst
}
