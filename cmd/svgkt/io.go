package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/gogpu/gg"
	"github.com/kpango/glg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errTerminal = errors.New("refusing to write binary image to a terminal")

// readDocument reads an SVG file. A UTF-16 file with a byte order mark is
// converted to UTF-8 and a UTF-8 byte order mark is dropped; anything else
// is returned unchanged.
func readDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
}

// objectsToPaths runs inkscape on path and returns the name of the
// converted copy.
func objectsToPaths(path string) (string, error) {
	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := inkscapeProxy.Run(); err != nil {
		return "", err
	}

	defer inkscapeProxy.Close()

	glg.Infof("running inkscape pre-processing")
	convertedFile := path + ".svgkt.svg"
	inkscapeProxy.RawCommands(
		fmt.Sprintf("file-open:%s", path),
		fmt.Sprintf("export-filename:%s", convertedFile),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"export-do",
	)

	glg.Info("inkscape done.")

	return convertedFile, nil
}

// compose draws img over a background color; an empty background stays
// transparent.
func compose(img image.Image, background string) (*gg.Context, error) {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	if background != "" {
		c, err := gg.ParseHex(background)
		if err != nil {
			_ = dc.Close()
			return nil, err
		}

		dc.ClearWithColor(c)
	}

	dc.DrawImage(gg.ImageBufFromImage(img), 0, 0)

	return dc, nil
}

// writeImage encodes img by the extension of path; "-" writes PNG to
// stdout.
func writeImage(img image.Image, background, path string) error {
	dc, err := compose(img, background)
	if err != nil {
		return err
	}

	defer func() {
		_ = dc.Close()
	}()

	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}

		return png.Encode(os.Stdout, dc.Image())
	}

	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return dc.SavePNG(path)
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, dc.Image()); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
