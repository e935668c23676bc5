package svgkt

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// user units per unit, 96 dpi and a 12px font
var units = []struct {
	suffix string
	scale  float64
}{
	{"px", 1},
	{"pt", 4.0 / 3.0},
	{"pc", 16},
	{"mm", 96 / 25.4},
	{"cm", 96 / 2.54},
	{"in", 96},
	{"em", 12},
	{"ex", 6},
}

// length is a resolved absolute length or a percentage.
type length struct {
	value   float64
	percent bool
}

// a missing width or height means 100%
var fullLength = length{value: 100, percent: true}

func parseLength(s string) (length, error) {
	s = strings.TrimSpace(s)
	scale, percent := 1.0, false

	if strings.HasSuffix(s, "%") {
		s, percent = strings.TrimSuffix(s, "%"), true
	} else {
		for _, u := range units {
			if strings.HasSuffix(s, u.suffix) {
				s, scale = strings.TrimSuffix(s, u.suffix), u.scale
				break
			}
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}

	return length{value: v * scale, percent: percent}, nil
}

// resolve returns l in user units; percentages are taken of base.
func (l length) resolve(base float64) float64 {
	if l.percent {
		return base * l.value / 100
	}

	return l.value
}

type viewBox struct {
	x, y, w, h float64
}

// parseViewBox returns nil for anything that is not four numbers with a
// positive width and height; such a viewBox is ignored.
func parseViewBox(s string) *viewBox {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return nil
	}

	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}

		v[i] = n
	}

	if v[2] <= 0 || v[3] <= 0 {
		return nil
	}

	return &viewBox{v[0], v[1], v[2], v[3]}
}

// aspectRatio is a parsed preserveAspectRatio attribute.
type aspectRatio struct {
	align string
	slice bool
}

var defaultAspectRatio = aspectRatio{align: "xMidYMid"}

func parseAspectRatio(s string) aspectRatio {
	result := defaultAspectRatio
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}

	if len(fields) > 0 {
		switch fields[0] {
		case "none",
			"xMinYMin", "xMidYMin", "xMaxYMin",
			"xMinYMid", "xMidYMid", "xMaxYMid",
			"xMinYMax", "xMidYMax", "xMaxYMax":
			result.align = fields[0]
		}
	}

	if len(fields) > 1 && fields[1] == "slice" {
		result.slice = true
	}

	return result
}

// transform maps vb onto a w x h viewport.
func (a aspectRatio) transform(vb viewBox, w, h float64) rasterx.Matrix2D {
	sx, sy := w/vb.w, h/vb.h
	if a.align == "none" {
		return rasterx.Identity.Scale(sx, sy).Translate(-vb.x, -vb.y)
	}

	s := math.Min(sx, sy)
	if a.slice {
		s = math.Max(sx, sy)
	}

	dx, dy := w-vb.w*s, h-vb.h*s
	var tx, ty float64
	switch a.align[1:4] {
	case "Mid":
		tx = dx / 2
	case "Max":
		tx = dx
	}

	switch a.align[5:8] {
	case "Mid":
		ty = dy / 2
	case "Max":
		ty = dy
	}

	return rasterx.Identity.Translate(tx, ty).Scale(s, s).Translate(-vb.x, -vb.y)
}

// root holds the attributes of the outermost <svg> element that decide the
// size of a tree.
type root struct {
	width, height length
	viewBox       *viewBox
	aspect        aspectRatio
}

func readRoot(data []byte) (*root, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		t, err := decoder.Token()
		if err == io.EOF {
			return nil, ErrNotSVG
		} else if err != nil {
			return nil, err
		}

		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}

		if se.Name.Local != "svg" {
			return nil, fmt.Errorf("%w: got <%s>", ErrNotSVG, se.Name.Local)
		}

		return newRoot(se.Attr)
	}
}

func newRoot(attrs []xml.Attr) (*root, error) {
	result := &root{
		width:  fullLength,
		height: fullLength,
		aspect: defaultAspectRatio,
	}

	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			result.width, err = parseLength(attr.Value)
		case "height":
			result.height, err = parseLength(attr.Value)
		case "viewBox":
			result.viewBox = parseViewBox(attr.Value)
		case "preserveAspectRatio":
			result.aspect = parseAspectRatio(attr.Value)
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", attr.Name.Local, err)
		}
	}

	return result, nil
}

// size resolves the root width and height. Percentages are taken of the
// viewBox, or of the content extent when there is no viewBox; extent is
// only called in that case.
func (r *root) size(extent func() (float64, float64)) (w, h float64) {
	if r.viewBox != nil {
		return r.width.resolve(r.viewBox.w), r.height.resolve(r.viewBox.h)
	}

	var ew, eh float64
	if r.width.percent || r.height.percent {
		ew, eh = extent()
	}

	return r.width.resolve(ew), r.height.resolve(eh)
}

// transform maps user space onto the resolved w x h viewport.
func (r *root) transform(w, h float64) rasterx.Matrix2D {
	if r.viewBox == nil {
		return rasterx.Identity
	}

	return r.aspect.transform(*r.viewBox, w, h)
}
