package svgkt

import "errors"

var (
	ErrInvalidUTF8   = errors.New("document is not valid utf-8")
	ErrNotSVG        = errors.New("root element is not <svg>")
	ErrInvalidLength = errors.New("invalid length")
	ErrPixmapSize    = errors.New("invalid pixmap size")
)
