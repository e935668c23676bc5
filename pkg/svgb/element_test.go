package svgb

import (
	"testing"
)

func TestElement_String(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "empty element",
			el:   Rect(),
			want: `<rect></rect>`,
		},
		{
			name: "attributes keep order",
			el:   Rect(A("width", "10"), A("height", "5")).Attr("fill", "red"),
			want: `<rect width="10" height="5" fill="red"></rect>`,
		},
		{
			name: "escaped attribute",
			el:   Text(A("data-x", `a<b & "c">`)),
			want: `<text data-x="a&lt;b &amp; &quot;c&quot;&gt;"></text>`,
		},
		{
			name: "nested",
			el:   G().Child(Circle(A("r", "1")), Path(A("d", "M0 0L1 1"))),
			want: `<g><circle r="1"></circle><path d="M0 0L1 1"></path></g>`,
		},
		{
			name: "fragment renders children only",
			el:   &Element{Children: []*Element{Line(), Line()}},
			want: `<line></line><line></line>`,
		},
		{
			name: "custom tag",
			el:   Tag("feBlend")(A("mode", "multiply")),
			want: `<feBlend mode="multiply"></feBlend>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	single := Rect()
	if got := Fragment(single); got != single {
		t.Errorf("Fragment(single) = %v, want the child itself", got)
	}

	want := `<g><rect></rect><circle></circle></g>`
	if got := Fragment(Rect(), Circle()).String(); got != want {
		t.Errorf("Fragment() = %s, want %s", got, want)
	}

	if got := Fragment().String(); got != `<g></g>` {
		t.Errorf("Fragment() = %s, want <g></g>", got)
	}
}

func TestDocument(t *testing.T) {
	want := `<svg xmlns="http://www.w3.org/2000/svg"><rect></rect></svg>`
	if got := Document(Rect()).String(); got != want {
		t.Errorf("Document() = %s, want %s", got, want)
	}

	doc := SVG(A("width", "1"))
	if got := Document(doc); got != doc {
		t.Errorf("Document(svg) = %v, want the element itself", got)
	}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		name string
		m    Modifier
		want string
	}{
		{"translate", Translate(10, -2.5), `<g transform="translate(10,-2.5)"><rect></rect></g>`},
		{"rotate", Rotate(45), `<g transform="rotate(45)"><rect></rect></g>`},
		{"opacity", Opacity(0.5), `<g opacity="0.5"><rect></rect></g>`},
		{"nil", nil, `<rect></rect>`},
		{
			"then applies in order",
			Translate(1, 2).Then(Opacity(0.25)),
			`<g opacity="0.25"><g transform="translate(1,2)"><rect></rect></g></g>`,
		},
		{"then nil", Rotate(90).Then(nil), `<g transform="rotate(90)"><rect></rect></g>`},
		{"nil then", Modifier(nil).Then(Rotate(90)), `<g transform="rotate(90)"><rect></rect></g>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rect().Modify(tt.m).String(); got != tt.want {
				t.Errorf("Modify() = %s, want %s", got, tt.want)
			}
		})
	}
}
