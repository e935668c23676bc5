package svgkt

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Parse builds a Tree from an SVG document using default options:
// elements the engine does not know are skipped.
func Parse(data []byte) (result *Tree, err error) {
	// 0.0: the document must be utf-8
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	// 1.0: read the outer <svg> element
	r, err := readRoot(data)
	if err != nil {
		return nil, err
	}

	// 2.0: hand the whole document to the engine
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// 3.0: resolve size and root transform
	result = &Tree{icon: icon}
	w, h := r.size(result.contentExtent)
	result.size = Size{Width: float32(w), Height: float32(h)}
	result.transform = r.transform(w, h)

	// N.N: return
	return result, nil
}

// contentExtent measures the untransformed content of the tree.
func (t *Tree) contentExtent() (w, h float64) {
	scanner := &extentScanner{}
	t.draw(rasterx.NewDasher(1, 1, scanner), rasterx.Identity)

	return scanner.extent()
}
