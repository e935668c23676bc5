package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	svgkt "github.com/rand0m-cloud/svgkt/pkg"
	"github.com/rand0m-cloud/svgkt/pkg/svgb"
	"github.com/rand0m-cloud/svgkt/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file")
	demo := flag.Bool("demo", false, "play the built-in animation instead of a file")
	fps := flag.Int("fps", 24, "frames per second of the demo")
	duration := flag.Float64("duration", 1, "length of the demo in seconds")
	flag.Parse()

	if *demo {
		run(demoViewer(*fps, *duration), "svgview demo")
		return
	}

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	tree, err := svgkt.Parse(data)
	if err != nil {
		glg.Fatal(err)
	}

	img, err := tree.Rasterize()
	if err != nil {
		glg.Fatal(err)
	}

	run(viewer.NewViewer(img), *inputFile)
}

func run(v *viewer.Viewer, title string) {
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(v); err != nil {
		glg.Fatal(err)
	}
}

// demoViewer spins a square around its center while it slides across the
// canvas.
func demoViewer(fps int, duration float64) *viewer.Viewer {
	frames := svgb.Frames(fps, duration, func(_ int, t float64) *svgb.Element {
		square := svgb.G().Child(svgb.Rect(
			svgb.A("fill", "purple"),
			svgb.A("width", "100"),
			svgb.A("height", "100"),
		))

		move := svgkt.RotateAroundCenter(float32(t) * 720).
			Then(svgb.Translate(1280*float32(t), 0))

		return svgb.SVG(
			svgb.A("xmlns", svgb.Namespace),
			svgb.A("width", "1280"),
			svgb.A("height", "720"),
		).Child(square.Modify(move))
	})
	if frames == nil {
		glg.Fatalf("invalid animation: %d fps for %gs", fps, duration)
	}

	images, err := svgkt.RasterizeFrames(frames)
	if err != nil {
		glg.Fatal(err)
	}

	w, h := images[0].Bounds().Dx(), images[0].Bounds().Dy()
	glg.Infof("%d frames of %dx%d", len(images), w, h)

	return viewer.NewAnimation(fps, images...)
}
