package svgkt

import (
	"fmt"
	"math"
)

// BytesPerPixel is the size of one pixel in both RGBA and BGRA buffers.
const BytesPerPixel = 4

// Pixmap is a row-major premultiplied BGRA image with no row padding.
type Pixmap struct {
	Width, Height uint32
	Pix           []byte
}

// SwapRedBlue copies src to dst exchanging the first and third byte of each
// pixel. dst and src may be the same slice. A trailing partial pixel is
// ignored.
func SwapRedBlue(dst, src []byte) {
	for i := 0; i+BytesPerPixel <= len(src); i += BytesPerPixel {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = src[i+2], src[i+1], src[i], src[i+3]
	}
}

// checkPixmapSize rejects buffers that are empty or whose size in bytes
// does not fit an int32.
func checkPixmapSize(w, h uint32) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("%w: %dx%d has no area", ErrPixmapSize, w, h)
	}

	stride := uint64(w) * BytesPerPixel
	if stride > math.MaxInt32 || stride*uint64(h) > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d is too large", ErrPixmapSize, w, h)
	}

	return nil
}
