package svgb

// Factory creates elements of a single tag.
type Factory func(attrs ...Attr) *Element

// Tag returns a Factory for name.
func Tag(name string) Factory {
	return func(attrs ...Attr) *Element {
		return New(name, attrs...)
	}
}

// factories for the elements in common use. See https://www.w3.org/TR/SVG11/eltindex.html
// for the rest; Tag covers them.
var (
	Circle         = Tag("circle")
	ClipPath       = Tag("clipPath")
	Defs           = Tag("defs")
	Desc           = Tag("desc")
	Ellipse        = Tag("ellipse")
	G              = Tag("g")
	Image          = Tag("image")
	Line           = Tag("line")
	LinearGradient = Tag("linearGradient")
	Marker         = Tag("marker")
	Mask           = Tag("mask")
	Path           = Tag("path")
	Pattern        = Tag("pattern")
	Polygon        = Tag("polygon")
	Polyline       = Tag("polyline")
	RadialGradient = Tag("radialGradient")
	Rect           = Tag("rect")
	Stop           = Tag("stop")
	Style          = Tag("style")
	SVG            = Tag("svg")
	Symbol         = Tag("symbol")
	Text           = Tag("text")
	TextPath       = Tag("textPath")
	Title          = Tag("title")
	TSpan          = Tag("tspan")
	Use            = Tag("use")
)
