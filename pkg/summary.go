package svgkt

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"
)

// Summary counts the drawing instructions of a document by kind.
type Summary struct {
	Moves, Lines, Curves, Circles, Closes, Paints int
}

// Total returns the number of instructions counted.
func (s *Summary) Total() int {
	return s.Moves + s.Lines + s.Curves + s.Circles + s.Closes + s.Paints
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d instructions (move %d, line %d, curve %d, circle %d, close %d, paint %d)",
		s.Total(), s.Moves, s.Lines, s.Curves, s.Circles, s.Closes, s.Paints)
}

// Summarize walks the drawing instructions of data. It uses a different
// parser than Parse and is meant for inspection only.
func Summarize(data []byte) (*Summary, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	// 1.0: unmarshal xml
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// 2.0: count instructions
	parsedData, parsedErr := doc.ParseDrawingInstructions()
	if parsedData == nil || parsedErr == nil {
		return nil, errors.New("nil parsedData or parsedErr")
	}

	result := &Summary{}
	for {
		select {
		case cmd := <-parsedData:
			if cmd == nil {
				return result, nil
			}

			switch cmd.Kind {
			case svg.MoveInstruction:
				result.Moves++
			case svg.LineInstruction:
				result.Lines++
			case svg.CurveInstruction:
				result.Curves++
			case svg.CircleInstruction:
				result.Circles++
			case svg.CloseInstruction:
				result.Closes++
			case svg.PaintInstruction:
				result.Paints++
			default:
				glg.Debugf("unknown drawing instruction %v", cmd.Kind)
			}
		case err, ok := <-parsedErr:
			if !ok {
				// a nil channel is never selected
				parsedErr = nil
				continue
			}

			if err != nil {
				go drain(parsedData, parsedErr)

				return result, err
			}
		}
	}
}

// drain reads both channels until they are closed so the producer
// goroutines of rustyoz/svg can exit.
func drain(data <-chan *svg.DrawingInstruction, errs <-chan error) {
	for data != nil || errs != nil {
		select {
		case _, ok := <-data:
			if !ok {
				data = nil
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		}
	}
}
