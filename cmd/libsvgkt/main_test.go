package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rand0m-cloud/svgkt/pkg/handle"
)

const orange = `<svg xmlns="http://www.w3.org/2000/svg" width="6.7" height="3">` +
	`<rect width="6.7" height="3" fill="#ff8000"/></svg>`

func TestReadSvgToTree_Invalid(t *testing.T) {
	before := handle.Live()

	if got := read_svg_to_tree(nil); got != 0 {
		t.Errorf("read_svg_to_tree(NULL) = %d, want 0", got)
	}

	for _, doc := range []string{"", "<svg", "not a document", "\xff\xfe"} {
		withCString(doc, func(s *cChar) {
			if got := read_svg_to_tree(s); got != 0 {
				t.Errorf("read_svg_to_tree(%q) = %d, want 0", doc, got)
			}
		})
	}

	if got := handle.Live(); got != before {
		t.Errorf("Live() = %d, want %d", got, before)
	}
}

func TestTreeLifecycle(t *testing.T) {
	before := handle.Live()

	var tree svgTree
	withCString(orange, func(s *cChar) {
		tree = read_svg_to_tree(s)
	})

	if tree == 0 {
		t.Fatal("read_svg_to_tree() returned NULL")
	}

	if w, h := boundingBox(tree); w != 6.7 || h != 3 {
		t.Errorf("get_bounding_box() = %vx%v, want 6.7x3", w, h)
	}

	render_tree(tree, recordingSink())

	want := render{Calls: 1, Width: 6, Height: 3, First: [4]byte{0, 128, 255, 255}}
	if diff := cmp.Diff(want, recorded()); diff != "" {
		t.Errorf("render_tree() mismatch (-want +got):\n%s", diff)
	}

	// the tree stays usable after rendering
	if w, _ := boundingBox(tree); w != 6.7 {
		t.Errorf("get_bounding_box() after render_tree() = %v, want 6.7", w)
	}

	free_tree(tree)
	if got := handle.Live(); got != before {
		t.Errorf("Live() after free_tree() = %d, want %d", got, before)
	}

	// misuse is logged and never crosses the boundary
	free_tree(tree)
	render_tree(tree, recordingSink())
	if got := recorded().Calls; got != 0 {
		t.Errorf("render_tree() on a freed tree called the sink %d times", got)
	}

	if w, h := boundingBox(tree); w != 0 || h != 0 {
		t.Errorf("get_bounding_box() on a freed tree = %vx%v, want 0x0", w, h)
	}
}

func TestRenderTree_Empty(t *testing.T) {
	var tree svgTree
	withCString(`<svg xmlns="http://www.w3.org/2000/svg"/>`, func(s *cChar) {
		tree = read_svg_to_tree(s)
	})

	if tree == 0 {
		t.Fatal("read_svg_to_tree() returned NULL")
	}

	defer free_tree(tree)

	render_tree(tree, recordingSink())
	if got := recorded().Calls; got != 0 {
		t.Errorf("sink called %d times for an empty tree, want 0", got)
	}
}
