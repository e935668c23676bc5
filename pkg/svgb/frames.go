package svgb

import (
	"math"
)

// Scene builds the element shown at a frame. t is the frame time in
// seconds.
type Scene func(frame int, t float64) *Element

// Frames samples scene at fps frames per second from 0 up to and including
// duration. The first frame is at time 0, so a one second animation at 24
// fps has 25 frames. Frames returns nil unless fps is positive and duration
// is finite and not negative.
func Frames(fps int, duration float64, scene Scene) []*Element {
	if fps <= 0 || duration < 0 || math.IsInf(duration, 0) || math.IsNaN(duration) {
		return nil
	}

	n := int(math.Floor(duration*float64(fps))) + 1
	result := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, scene(i, float64(i)/float64(fps)))
	}

	return result
}
