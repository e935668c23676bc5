package svgkt

import (
	"fmt"
	"image"

	"github.com/kpango/glg"

	"github.com/rand0m-cloud/svgkt/pkg/svgb"
)

// FromElement parses e, wrapping it in an <svg> document first when it is
// not one already.
func FromElement(e *svgb.Element) (*Tree, error) {
	return Parse([]byte(svgb.Document(e).String()))
}

// Measure returns the size of e as a standalone document.
func Measure(e *svgb.Element) (Size, error) {
	t, err := FromElement(e)
	if err != nil {
		return Size{}, err
	}

	return t.Size(), nil
}

// RenderElement renders e as a standalone document.
func RenderElement(e *svgb.Element) (*Pixmap, error) {
	t, err := FromElement(e)
	if err != nil {
		return nil, err
	}

	return t.Render()
}

// measured returns a modifier built from the measured size of the element
// it is applied to. Elements that cannot be measured are left as they are.
func measured(build func(Size) svgb.Modifier) svgb.Modifier {
	return func(e *svgb.Element) *svgb.Element {
		size, err := Measure(e)
		if err != nil {
			glg.Warnf("cannot measure <%s>: %v", e.Tag, err)
			return e
		}

		return e.Modify(build(size))
	}
}

// Center moves the element so the middle of its size is at the origin.
func Center() svgb.Modifier {
	return measured(func(s Size) svgb.Modifier {
		return svgb.Translate(-s.Width/2, -s.Height/2)
	})
}

// RotateAroundCenter rotates the element by degrees around the middle of
// its size.
func RotateAroundCenter(degrees float32) svgb.Modifier {
	return measured(func(s Size) svgb.Modifier {
		return svgb.RotateAround(degrees, s.Width/2, s.Height/2)
	})
}

// RasterizeFrames rasterizes every frame of an animation, stopping at the
// first frame that fails.
func RasterizeFrames(frames []*svgb.Element) ([]*image.RGBA, error) {
	result := make([]*image.RGBA, 0, len(frames))
	for i, frame := range frames {
		t, err := FromElement(frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		img, err := t.Rasterize()
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		result = append(result, img)
	}

	return result, nil
}
