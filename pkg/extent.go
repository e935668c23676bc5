package svgkt

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ rasterx.Scanner = &extentScanner{}

// extentScanner is a rasterx.Scanner that paints nothing. It records the
// extent of every point the rasterizer feeds it, after transforms and
// curve flattening, so fills and stroke outlines are both covered.
type extentScanner struct {
	path, total fixed.Rectangle26_6
	hasPath     bool
	hasTotal    bool
}

func (s *extentScanner) add(p fixed.Point26_6) {
	s.path, s.hasPath = grow(s.path, s.hasPath, p), true
	s.total, s.hasTotal = grow(s.total, s.hasTotal, p), true
}

func grow(r fixed.Rectangle26_6, ok bool, p fixed.Point26_6) fixed.Rectangle26_6 {
	if !ok {
		return fixed.Rectangle26_6{Min: p, Max: p}
	}

	if p.X < r.Min.X {
		r.Min.X = p.X
	}

	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}

	if p.X > r.Max.X {
		r.Max.X = p.X
	}

	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}

	return r
}

func (s *extentScanner) Start(a fixed.Point26_6) { s.add(a) }

func (s *extentScanner) Line(b fixed.Point26_6) { s.add(b) }

func (s *extentScanner) Draw() {}

// GetPathExtent is used by object bounding box gradients.
func (s *extentScanner) GetPathExtent() fixed.Rectangle26_6 { return s.path }

func (s *extentScanner) SetBounds(int, int) {}

func (s *extentScanner) SetColor(interface{}) {}

func (s *extentScanner) SetWinding(bool) {}

func (s *extentScanner) Clear() {
	s.path, s.hasPath = fixed.Rectangle26_6{}, false
}

func (s *extentScanner) SetClip(image.Rectangle) {}

// extent returns the distance from the origin to the right and bottom edges
// of everything drawn; content left of or above the origin does not count.
func (s *extentScanner) extent() (w, h float64) {
	if !s.hasTotal {
		return 0, 0
	}

	w, h = float64(s.total.Max.X)/64, float64(s.total.Max.Y)/64
	if w < 0 {
		w = 0
	}

	if h < 0 {
		h = 0
	}

	return w, h
}
