package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

var _ ebiten.Game = &Viewer{}

const (
	minScale  = 1.0
	zoomSpeed = 0.1
)

// DefaultBackground is drawn behind transparent parts of the image.
var DefaultBackground color.Color = colornames.White

// Viewer shows a rendered image, or the frames of an animation, in ebiten.
// The mouse wheel zooms in and the visible region follows the cursor.
// Animations loop; space pauses and the arrow keys step through frames.
type Viewer struct {
	scale      float64
	background color.Color

	frames []*ebiten.Image
	fps    int
	tick   int
	paused bool
}

// NewViewer creates a Viewer for img.
func NewViewer(img image.Image) *Viewer {
	return NewAnimation(0, img)
}

// NewAnimation creates a Viewer playing frames at fps frames per second.
// With fps of 0 or less the first frame is shown until stepped manually.
func NewAnimation(fps int, frames ...image.Image) *Viewer {
	v := &Viewer{
		scale:      minScale,
		background: DefaultBackground,
		fps:        fps,
		paused:     fps <= 0,
	}

	for _, f := range frames {
		v.frames = append(v.frames, ebiten.NewImageFromImage(f))
	}

	return v
}

// Background sets the color behind the image.
func (v *Viewer) Background(c color.Color) *Viewer {
	v.background = c
	return v
}

// Size returns the size of the first frame.
func (v *Viewer) Size() (width, height int) {
	if len(v.frames) == 0 {
		return 0, 0
	}

	b := v.frames[0].Bounds()
	return b.Dx(), b.Dy()
}

// Frame returns the index of the frame shown.
func (v *Viewer) Frame() int {
	return frameAt(v.tick, ebiten.TPS(), v.fps, len(v.frames))
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale = zoom(v.scale, wheelY)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && v.fps > 0 {
		v.paused = !v.paused
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.paused = true
		v.tick = step(v.tick, ebiten.TPS(), v.fps, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.paused = true
		v.tick = step(v.tick, ebiten.TPS(), v.fps, -1)
	case !v.paused:
		v.tick++
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.background)
	if len(v.frames) == 0 {
		return
	}

	current := v.frames[v.Frame()]

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mouseX, mouseY := ebiten.CursorPosition()

	renderable := current.SubImage(visible(v.scale, mouseX, mouseY, w, h)).(*ebiten.Image)
	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(renderable, &ebiten.DrawImageOptions{
		GeoM: geom,
	})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
