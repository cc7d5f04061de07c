// Package chart turns aggregated totals into draw commands for a Surface.
// The renderer never fails: degenerate inputs produce defined fallback
// visuals instead of errors.
package chart

import (
	"tally/internal/money"
)

// Color is a CSS-style hex color.
type Color string

// Anchor controls horizontal text alignment relative to the text position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Surface receives the draw commands of a rendered chart. Angles are in
// radians measured from the positive x axis with y growing downward, so a
// positive sweep is clockwise on screen.
type Surface interface {
	FillRect(x, y, w, h float64, c Color)
	FillArc(cx, cy, r, start, sweep float64, c Color)
	FillText(x, y, size float64, anchor Anchor, c Color, text string)
}

// Canvas dimensions. Widths above MaxWidth are clamped so labels keep a
// readable proportion to the drawing.
const (
	DefaultWidth  = 480
	DefaultHeight = 320
	MaxWidth      = 640
)

// DefaultPalette holds the slice colors, assigned by descending rank and
// reused cyclically when a month has more categories than colors.
var DefaultPalette = []Color{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

const (
	incomeColor  Color = "#22c55e"
	expenseColor Color = "#ef4444"
	textColor    Color = "#334155"
	mutedColor   Color = "#64748b"
)

// Config customizes a Renderer. Zero fields fall back to defaults.
type Config struct {
	Width   int
	Height  int
	Symbol  string
	Palette []Color
}

// Renderer draws bar and pie charts at a fixed canvas size.
type Renderer struct {
	width   float64
	height  float64
	money   money.Formatter
	palette []Color
}

// New creates a Renderer, clamping the width to MaxWidth and substituting
// defaults for unset fields.
func New(cfg Config) *Renderer {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width > MaxWidth {
		width = MaxWidth
	}

	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}

	symbol := cfg.Symbol
	if symbol == "" {
		symbol = money.Default.Symbol
	}

	palette := cfg.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	return &Renderer{
		width:   float64(width),
		height:  float64(height),
		money:   money.Formatter{Symbol: symbol},
		palette: palette,
	}
}

// Width returns the canvas width in pixels.
func (r *Renderer) Width() int { return int(r.width) }

// Height returns the canvas height in pixels.
func (r *Renderer) Height() int { return int(r.height) }

func (r *Renderer) color(rank int) Color {
	return r.palette[rank%len(r.palette)]
}
