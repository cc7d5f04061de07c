package chart

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/report"
)

func total(id, label string, amount int64) report.CategoryTotal {
	return report.CategoryTotal{
		CategoryID: id,
		Label:      label,
		Amount:     decimal.NewFromInt(amount),
	}
}

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestNewDefaults(t *testing.T) {
	r := New(Config{})

	assert.Equal(t, DefaultWidth, r.Width())
	assert.Equal(t, DefaultHeight, r.Height())
	assert.Equal(t, "$", r.money.Symbol)
}

func TestNewClampsWidth(t *testing.T) {
	r := New(Config{Width: 10000})
	assert.Equal(t, MaxWidth, r.Width())
}

func TestBarsShareOneScale(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Bars(rec, decimal.NewFromInt(100), decimal.NewFromInt(50))

	rects := rec.Kind("rect")
	require.Len(t, rects, 2)

	income, expense := rects[0], rects[1]
	assert.Equal(t, incomeColor, income.Color)
	assert.Equal(t, expenseColor, expense.Color)
	assert.InDelta(t, income.H/2, expense.H, 1e-9)
	assert.InDelta(t, income.Y+income.H, expense.Y+expense.H, 1e-9)
}

func TestBarsZeroTotalsStayFlat(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Bars(rec, decimal.Zero, decimal.Zero)

	rects := rec.Kind("rect")
	require.Len(t, rects, 2)
	assert.Zero(t, rects[0].H)
	assert.Zero(t, rects[1].H)

	texts := rec.Kind("text")
	require.Len(t, texts, 4)
	assert.Equal(t, "$0.00", texts[0].Text)
}

func TestPieProportions(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Pie(rec, []report.CategoryTotal{
		total("a", "A", 60),
		total("b", "B", 40),
	})

	arcs := rec.Kind("arc")
	require.Len(t, arcs, 2)

	assert.InDelta(t, -math.Pi/2, arcs[0].Start, 1e-9)
	assert.InDelta(t, 0.6*2*math.Pi, arcs[0].Sweep, 1e-9)
	assert.Equal(t, DefaultPalette[0], arcs[0].Color)

	assert.InDelta(t, arcs[0].Start+arcs[0].Sweep, arcs[1].Start, 1e-9)
	assert.InDelta(t, 0.4*2*math.Pi, arcs[1].Sweep, 1e-9)
	assert.Equal(t, DefaultPalette[1], arcs[1].Color)
}

func TestPieSingleCategoryIsFullCircle(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Pie(rec, []report.CategoryTotal{total("a", "A", 10)})

	arcs := rec.Kind("arc")
	require.Len(t, arcs, 1)
	assert.InDelta(t, 2*math.Pi, arcs[0].Sweep, 1e-9)
}

func TestPiePaletteCyclesAndLegendCaps(t *testing.T) {
	var totals []report.CategoryTotal
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("cat-%02d", i)
		totals = append(totals, total(id, id, int64(100-i)))
	}

	rec := &Recorder{}
	New(Config{}).Pie(rec, totals)

	arcs := rec.Kind("arc")
	require.Len(t, arcs, 10)
	assert.Equal(t, DefaultPalette[0], arcs[8].Color)
	assert.Equal(t, DefaultPalette[1], arcs[9].Color)

	assert.Len(t, rec.Kind("rect"), legendEntries)
	assert.Len(t, rec.Kind("text"), legendEntries)
}

func TestPieNoData(t *testing.T) {
	tests := []struct {
		name   string
		totals []report.CategoryTotal
	}{
		{name: "no totals", totals: nil},
		{name: "zero totals", totals: []report.CategoryTotal{total("a", "A", 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			New(Config{}).Pie(rec, tt.totals)

			assert.Empty(t, rec.Kind("arc"))
			texts := rec.Kind("text")
			require.Len(t, texts, 1)
			assert.Equal(t, noDataMessage, texts[0].Text)
			assert.Equal(t, AnchorMiddle, texts[0].Anchor)
		})
	}
}

func TestBarsGolden(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Bars(rec, decimal.NewFromInt(1200), decimal.NewFromInt(800))

	golden(t).Assert(t, "bars_basic", rec.Dump())
}

func TestPieGolden(t *testing.T) {
	rec := &Recorder{}
	New(Config{}).Pie(rec, []report.CategoryTotal{
		total("food", "Food", 60),
		total("transport", "Transport", 40),
	})

	golden(t).Assert(t, "pie_basic", rec.Dump())
}

func TestSVGSurfaceDocument(t *testing.T) {
	var buf bytes.Buffer

	r := New(Config{})
	surface := NewSVG(&buf, float64(r.Width()), float64(r.Height()))
	r.Pie(surface, []report.CategoryTotal{
		total("food", "Food", 60),
		total("transport", "Transport", 40),
	})
	surface.Close()

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "text-anchor:start")
}

func TestSVGSurfaceFullCircle(t *testing.T) {
	var buf bytes.Buffer

	surface := NewSVG(&buf, 100, 100)
	surface.FillArc(50, 50, 40, -math.Pi/2, 2*math.Pi, "#ff0000")
	surface.Close()

	assert.Contains(t, buf.String(), "<circle")
	assert.NotContains(t, buf.String(), "<path")
}
