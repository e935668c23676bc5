package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef uintptr_t svg_tree_t;

typedef void (*RenderTreeCall)(uint32_t width, uint32_t height, const uint8_t *pixels);

static int recorded_calls;
static uint32_t recorded_width, recorded_height;
static uint8_t recorded_first[4];

static void record_render(uint32_t width, uint32_t height, const uint8_t *pixels) {
	recorded_calls++;
	recorded_width = width;
	recorded_height = height;
	memcpy(recorded_first, pixels, sizeof(recorded_first));
}

static void reset_recorder(void) {
	recorded_calls = 0;
	recorded_width = recorded_height = 0;
	memset(recorded_first, 0, sizeof(recorded_first));
}
*/
import "C"

import (
	"unsafe"
)

// This file lets the package tests drive the exported functions the way a
// C host does; _test.go files cannot use cgo.

type (
	cChar   = C.char
	svgTree = C.svg_tree_t
)

// render is a recorded render_tree call.
type render struct {
	Calls         int
	Width, Height uint32
	First         [4]byte
}

// recordingSink returns a RenderTreeCall that remembers its last call.
func recordingSink() C.RenderTreeCall {
	C.reset_recorder()
	return C.RenderTreeCall(C.record_render)
}

func recorded() render {
	r := render{
		Calls:  int(C.recorded_calls),
		Width:  uint32(C.recorded_width),
		Height: uint32(C.recorded_height),
	}

	for i := range r.First {
		r.First[i] = byte(C.recorded_first[i])
	}

	return r
}

// withCString calls fn with a NUL-terminated copy of s.
func withCString(s string, fn func(*cChar)) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	fn(cs)
}

// boundingBox calls get_bounding_box and returns the fields as Go values.
func boundingBox(tree svgTree) (width, height float32) {
	box := get_bounding_box(tree)
	return float32(box.width), float32(box.height)
}
