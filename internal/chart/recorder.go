package chart

import (
	"fmt"
	"strings"
)

// Op is one recorded draw command.
type Op struct {
	Kind   string // "rect", "arc", or "text"
	X, Y   float64
	W, H   float64
	R      float64
	Start  float64
	Sweep  float64
	Size   float64
	Anchor Anchor
	Color  Color
	Text   string
}

func (o Op) String() string {
	switch o.Kind {
	case "rect":
		return fmt.Sprintf("rect x=%.2f y=%.2f w=%.2f h=%.2f fill=%s", o.X, o.Y, o.W, o.H, o.Color)
	case "arc":
		return fmt.Sprintf("arc cx=%.2f cy=%.2f r=%.2f start=%.2f sweep=%.2f fill=%s", o.X, o.Y, o.R, o.Start, o.Sweep, o.Color)
	case "text":
		return fmt.Sprintf("text x=%.2f y=%.2f size=%.0f anchor=%s fill=%s %q", o.X, o.Y, o.Size, o.Anchor, o.Color, o.Text)
	default:
		return o.Kind
	}
}

// Recorder is a Surface that captures draw commands instead of rendering
// them, for inspection in tests.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillArc(cx, cy, radius, start, sweep float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "arc", X: cx, Y: cy, R: radius, Start: start, Sweep: sweep, Color: c})
}

func (r *Recorder) FillText(x, y, size float64, anchor Anchor, c Color, text string) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Size: size, Anchor: anchor, Color: c, Text: text})
}

// Kind returns the recorded ops of one kind, in draw order.
func (r *Recorder) Kind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Dump renders the recorded ops one per line.
func (r *Recorder) Dump() []byte {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
