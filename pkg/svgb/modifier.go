package svgb

import (
	"fmt"
	"strconv"
)

// Modifier transforms an element, usually by wrapping it.
type Modifier func(*Element) *Element

// Then returns a modifier applying m first and other second.
func (m Modifier) Then(other Modifier) Modifier {
	switch {
	case m == nil:
		return other
	case other == nil:
		return m
	}

	return func(e *Element) *Element {
		return other(m(e))
	}
}

// Wrap returns a modifier that puts the element in a <g> with attrs.
func Wrap(attrs ...Attr) Modifier {
	return func(e *Element) *Element {
		return G(attrs...).Child(e)
	}
}

// Translate moves the element by (x, y).
func Translate(x, y float32) Modifier {
	return Wrap(A("transform", fmt.Sprintf("translate(%s,%s)", num(x), num(y))))
}

// Rotate rotates the element by degrees around the origin.
func Rotate(degrees float32) Modifier {
	return Wrap(A("transform", fmt.Sprintf("rotate(%s)", num(degrees))))
}

// RotateAround rotates the element by degrees around (cx, cy).
func RotateAround(degrees, cx, cy float32) Modifier {
	return Wrap(A("transform", fmt.Sprintf("rotate(%s,%s,%s)", num(degrees), num(cx), num(cy))))
}

// Opacity sets the group opacity of the element.
func Opacity(opacity float32) Modifier {
	return Wrap(A("opacity", num(opacity)))
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
