package chart

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
)

const fullCircle = 2*math.Pi - 1e-9

// SVGSurface writes draw commands as an SVG document.
type SVGSurface struct {
	canvas *svg.SVG
}

// NewSVG starts an SVG document of the given size on w. Callers must Close
// the surface to terminate the document.
func NewSVG(w io.Writer, width, height float64) *SVGSurface {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVGSurface{canvas: canvas}
}

func (s *SVGSurface) FillRect(x, y, w, h float64, c Color) {
	s.canvas.Rect(x, y, w, h, fillStyle(c))
}

func (s *SVGSurface) FillArc(cx, cy, r, start, sweep float64, c Color) {
	if sweep >= fullCircle {
		s.canvas.Circle(cx, cy, r, fillStyle(c))
		return
	}

	x1 := cx + r*math.Cos(start)
	y1 := cy + r*math.Sin(start)
	end := start + sweep
	x2 := cx + r*math.Cos(end)
	y2 := cy + r*math.Sin(end)

	large := 0
	if sweep > math.Pi {
		large = 1
	}

	d := fmt.Sprintf("M%.3f,%.3f L%.3f,%.3f A%.3f,%.3f 0 %d 1 %.3f,%.3f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
	s.canvas.Path(d, fillStyle(c))
}

func (s *SVGSurface) FillText(x, y, size float64, anchor Anchor, c Color, text string) {
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.0fpx;text-anchor:%s;fill:%s",
		size, anchor, c)
	s.canvas.Text(x, y, text, style)
}

// Close terminates the SVG document.
func (s *SVGSurface) Close() {
	s.canvas.End()
}

func fillStyle(c Color) string {
	return fmt.Sprintf("fill:%s", c)
}
