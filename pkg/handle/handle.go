// Package handle hands out scene trees as opaque integer tokens so they can
// cross a foreign function boundary. A Handle is live from a successful
// Construct until its Destroy; any other use is a caller error.
package handle

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/kpango/glg"

	svgkt "github.com/rand0m-cloud/svgkt/pkg"
)

// ErrInvalidHandle is the panic value for operations on handles that are
// null, unknown or already destroyed.
var ErrInvalidHandle = errors.New("invalid tree handle")

// Handle identifies a live tree. The zero Handle is the null handle and is
// never returned for a live tree.
type Handle uintptr

// Sink receives a rendered BGRA buffer of width*height*4 bytes. pixels is
// only valid until the sink returns.
type Sink func(width, height uint32, pixels []byte)

var (
	trees  sync.Map // Handle -> *svgkt.Tree
	live   atomic.Int64
	lastID atomic.Uintptr
)

// Construct parses src and returns a handle owning the tree, or the null
// handle if src is not valid utf-8 or not a valid document. Failures are
// reported to the log only.
func Construct(src []byte) Handle {
	tree, err := svgkt.Parse(src)
	switch {
	case errors.Is(err, svgkt.ErrInvalidUTF8):
		glg.Errorf("failed to make utf8 string: %v", err)
		return 0
	case err != nil:
		glg.Errorf("tree failed to create: %v", err)
		return 0
	}

	h := Handle(lastID.Add(1))
	trees.Store(h, tree)
	live.Add(1)

	return h
}

// Live returns the number of handles constructed and not yet destroyed.
func Live() int {
	return int(live.Load())
}

func (h Handle) tree() *svgkt.Tree {
	v, ok := trees.Load(h)
	if !ok {
		panic(ErrInvalidHandle)
	}

	return v.(*svgkt.Tree)
}

// Size returns the size of the tree. The handle stays live.
func (h Handle) Size() svgkt.Size {
	return h.tree().Size()
}

// Render rasterizes the tree and calls sink exactly once with the BGRA
// pixels. If the pixel buffer cannot be created the error is logged and
// sink is not called. The handle stays live.
func (h Handle) Render(sink Sink) {
	pixmap, err := h.tree().Render()
	if err != nil {
		glg.Errorf("failed to create pixmap: %v", err)
		return
	}

	sink(pixmap.Width, pixmap.Height, pixmap.Pix)
}

// Destroy releases the tree. It must be called exactly once per handle.
func (h Handle) Destroy() {
	if _, ok := trees.LoadAndDelete(h); !ok {
		panic(ErrInvalidHandle)
	}

	live.Add(-1)
}
