// Command libsvgkt is the C interface of svgkt. Build it with
//
//	go build -buildmode=c-shared -o libsvgkt.so ./cmd/libsvgkt
//
// which also writes libsvgkt.h. A tree obtained from read_svg_to_tree must be
// released with free_tree exactly once and not used afterwards.
package main

/*
#include <stdint.h>
#include <string.h>

typedef uintptr_t svg_tree_t;

typedef struct {
	float width;
	float height;
} BoundingBox;

typedef void (*RenderTreeCall)(uint32_t width, uint32_t height, const uint8_t *pixels);

static inline void call_render_tree(RenderTreeCall f, uint32_t width, uint32_t height, const uint8_t *pixels) {
	f(width, height, pixels);
}
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/kpango/glg"

	"github.com/rand0m-cloud/svgkt/pkg/handle"
)

func init() {
	glg.Get().SetMode(glg.WRITER).SetWriter(os.Stderr)
}

// recoverPanic keeps Go panics from unwinding into the caller.
func recoverPanic(name string) {
	if r := recover(); r != nil {
		glg.Errorf("%s: %v", name, r)
	}
}

//export read_svg_to_tree
func read_svg_to_tree(utf8String *C.char) (result C.svg_tree_t) {
	defer recoverPanic("read_svg_to_tree")

	if utf8String == nil {
		glg.Error("read_svg_to_tree: NULL document")
		return 0
	}

	src := C.GoBytes(unsafe.Pointer(utf8String), C.int(C.strlen(utf8String)))

	return C.svg_tree_t(handle.Construct(src))
}

//export get_bounding_box
func get_bounding_box(tree C.svg_tree_t) (result C.BoundingBox) {
	defer recoverPanic("get_bounding_box")

	size := handle.Handle(tree).Size()
	result.width = C.float(size.Width)
	result.height = C.float(size.Height)

	return result
}

//export render_tree
func render_tree(tree C.svg_tree_t, drawToCanvas C.RenderTreeCall) {
	defer recoverPanic("render_tree")

	handle.Handle(tree).Render(func(width, height uint32, pixels []byte) {
		C.call_render_tree(drawToCanvas,
			C.uint32_t(width), C.uint32_t(height),
			(*C.uint8_t)(unsafe.Pointer(&pixels[0])))
	})
}

//export free_tree
func free_tree(tree C.svg_tree_t) {
	defer recoverPanic("free_tree")

	handle.Handle(tree).Destroy()
}

func main() {}
