package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	svgkt "github.com/rand0m-cloud/svgkt/pkg"
	"github.com/rand0m-cloud/svgkt/pkg/viewer"
)

type Flags struct {
	InputFilePath  string `json:"input"`
	OutputFilePath string `json:"output"`
	Background     string `json:"background"`
	Inkscape       bool   `json:"inkscape"`
	Inspect        bool   `json:"inspect"`
	View           bool   `json:"view"`
	Debug          bool   `json:"debug"`
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path (.png, .bmp, .tiff or - for PNG on stdout)")
	flag.StringVar(&f.Background, "bg", "", "background color as hex (e.g. #ffffff); transparent if empty")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "convert objects to paths with inkscape before parsing")
	flag.BoolVar(&f.Inspect, "inspect", false, "print size and drawing instructions")
	flag.BoolVar(&f.View, "v", false, "view")
	flag.BoolVar(&f.Debug, "debug", false, "debug logging")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	setupLogging(f.Debug)

	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		os.Exit(1)
	}

	inputPath := f.InputFilePath
	if f.Inkscape {
		converted, err := objectsToPaths(inputPath)
		if err != nil {
			glg.Fatalf("Cannot run inkscape: %v", err)
		}

		inputPath = converted
	}

	data, err := readDocument(inputPath)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputPath, err)
	}

	tree, err := svgkt.Parse(data)
	if err != nil {
		glg.Fatalf("Cannot parse file %s: %v", inputPath, err)
	}

	if f.Inspect {
		inspect(tree, data)
	}

	if f.OutputFilePath == "" && !f.View {
		return
	}

	img, err := tree.Rasterize()
	if err != nil {
		glg.Fatalf("Cannot render %s: %v", inputPath, err)
	}

	if f.OutputFilePath != "" {
		if err := writeImage(img, f.Background, f.OutputFilePath); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}
	}

	if f.View {
		v := viewer.NewViewer(img)
		if f.Background != "" {
			bg, err := gg.ParseHex(f.Background)
			if err != nil {
				glg.Fatalf("Invalid background %s: %v", f.Background, err)
			}

			v.Background(bg.Color())
		}

		ebiten.SetWindowSize(windowSize(v.Size()))
		ebiten.SetWindowTitle(f.InputFilePath)
		if err := ebiten.RunGame(v); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

func setupLogging(debug bool) {
	if !debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
		return
	}

	gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func inspect(tree *svgkt.Tree, data []byte) {
	size := tree.Size()
	w, h := tree.PixelSize()
	fmt.Printf("size: %gx%g (%dx%d pixels)\n", size.Width, size.Height, w, h)

	summary, err := svgkt.Summarize(data)
	if err != nil {
		glg.Warnf("Cannot list drawing instructions: %v", err)
		return
	}

	fmt.Println(summary)
}

// windowSize fits the window to the image, within 800x600.
func windowSize(w, h int) (int, int) {
	const maxW, maxH = 800, 600
	if w <= 0 || w > maxW {
		w = maxW
	}

	if h <= 0 || h > maxH {
		h = maxH
	}

	return w, h
}
