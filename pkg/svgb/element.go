// Package svgb builds SVG markup from Go values.
package svgb

import (
	"strings"
)

// Namespace is the SVG namespace set on documents created by Document.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single attribute.
type Attr struct {
	Name, Value string
}

// A creates an Attr.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Element is a node of an SVG document. An element with an empty Tag is a
// fragment: it renders only its children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// New creates an element with the given tag and attributes.
func New(tag string, attrs ...Attr) *Element {
	return &Element{
		Tag:   tag,
		Attrs: attrs,
	}
}

// Attr appends an attribute.
func (e *Element) Attr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{name, value})
	return e
}

// Child appends children.
func (e *Element) Child(c ...*Element) *Element {
	e.Children = append(e.Children, c...)
	return e
}

// Modify returns the element produced by applying m to e.
func (e *Element) Modify(m Modifier) *Element {
	if m == nil {
		return e
	}

	return m(e)
}

// Fragment groups children. A single child is returned unchanged, more than
// one are wrapped in a <g>.
func Fragment(children ...*Element) *Element {
	if len(children) == 1 {
		return children[0]
	}

	return G().Child(children...)
}

// Document returns e if it already is an <svg> element and otherwise wraps
// it in one.
func Document(e *Element) *Element {
	if e.Tag == "svg" {
		return e
	}

	return SVG(A("xmlns", Namespace)).Child(e)
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// String renders e as markup.
func (e *Element) String() string {
	sb := &strings.Builder{}
	e.write(sb)

	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	if e.Tag == "" {
		for _, c := range e.Children {
			c.write(sb)
		}

		return
	}

	sb.WriteString("<")
	sb.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		attrEscaper.WriteString(sb, attr.Value)
		sb.WriteString(`"`)
	}

	sb.WriteString(">")
	for _, c := range e.Children {
		c.write(sb)
	}

	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteString(">")
}
