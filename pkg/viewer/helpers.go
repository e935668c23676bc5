package viewer

import (
	"image"
)

// zoom applies a wheel delta to scale, never going below minScale.
func zoom(scale, wheelY float64) float64 {
	scale += wheelY * zoomSpeed
	if scale < minScale {
		scale = minScale
	}

	return scale
}

// visible returns the part of the image shown in a w x h window at scale
// when the cursor is at (mouseX, mouseY). The cursor position is clamped to
// the window.
func visible(scale float64, mouseX, mouseY, w, h int) image.Rectangle {
	mouseX = clamp(mouseX, 0, w)
	mouseY = clamp(mouseY, 0, h)

	offX := int((scale - 1) * float64(mouseX))
	offY := int((scale - 1) * float64(mouseY))

	return image.Rect(offX, offY, offX+w, offY+h)
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}

	return v
}

// ticksPerFrame is the number of updates a frame stays on screen.
func ticksPerFrame(tps, fps int) int {
	if fps <= 0 || tps <= fps {
		return 1
	}

	return tps / fps
}

// frameAt returns the frame shown after tick updates of a looping
// animation of n frames.
func frameAt(tick, tps, fps, n int) int {
	if n == 0 {
		return 0
	}

	f := (tick / ticksPerFrame(tps, fps)) % n
	if f < 0 {
		f += n
	}

	return f
}

// step moves tick by delta whole frames and snaps it to a frame start.
func step(tick, tps, fps, delta int) int {
	per := ticksPerFrame(tps, fps)
	return (tick/per + delta) * per
}
