// Package svgkt turns SVG documents into immutable scene trees that can be
// measured and rasterized. Parsing and scanline conversion are done by
// oksvg and rasterx; this package resolves the document size the way the
// usvg engine does and hands out pixels in BGRA order.
package svgkt

import (
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Size is the intrinsic size of a Tree in pixels.
type Size struct {
	Width, Height float32
}

// Tree is a parsed SVG document. It is never modified after Parse returns,
// so a Tree may be measured and rendered from several goroutines.
type Tree struct {
	icon      *oksvg.SvgIcon
	size      Size
	transform rasterx.Matrix2D
}

// Size returns the size resolved at parse time.
func (t *Tree) Size() Size {
	return t.size
}

// PixelSize returns Size truncated toward zero.
func (t *Tree) PixelSize() (width, height uint32) {
	return uint32(t.size.Width), uint32(t.size.Height)
}

// draw feeds every path to r. Paths are drawn through copies, so the icon
// itself is left untouched.
func (t *Tree) draw(r *rasterx.Dasher, m rasterx.Matrix2D) {
	for _, path := range t.icon.SVGPaths {
		path.DrawTransformed(r, 1.0, m)
	}
}

// Rasterize draws the tree at its pixel size without any additional
// transform. The result is premultiplied RGBA, the engine's native layout.
func (t *Tree) Rasterize() (*image.RGBA, error) {
	w, h := t.PixelSize()
	if err := checkPixmapSize(w, h); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), img, img.Bounds())
	t.draw(rasterx.NewDasher(int(w), int(h), scanner), t.transform)

	return img, nil
}

// Render rasterizes the tree and converts the pixels to BGRA.
func (t *Tree) Render() (*Pixmap, error) {
	img, err := t.Rasterize()
	if err != nil {
		return nil, err
	}

	SwapRedBlue(img.Pix, img.Pix)

	return &Pixmap{
		Width:  uint32(img.Rect.Dx()),
		Height: uint32(img.Rect.Dy()),
		Pix:    img.Pix,
	}, nil
}
