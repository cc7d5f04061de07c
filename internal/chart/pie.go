package chart

import (
	"fmt"
	"math"

	"tally/internal/report"
)

const (
	legendEntries   = 8
	legendRowHeight = 22.0
	legendTextGap   = 20.0
	swatchSize      = 12.0
	noDataSize      = 15.0

	noDataMessage = "No data for this month"
)

// Pie draws the month's expense breakdown. Slices start at twelve o'clock
// and proceed clockwise in the given order; report.ExpenseTotals supplies
// them largest first, which also fixes the palette assignment by rank. The
// legend lists the first legendEntries categories. A zero or empty total
// renders a message instead of a chart.
func (r *Renderer) Pie(s Surface, totals []report.CategoryTotal) {
	values := make([]float64, len(totals))
	total := 0.0
	for i, t := range totals {
		values[i] = t.Amount.InexactFloat64()
		total += values[i]
	}

	if total <= 0 {
		s.FillText(r.width/2, r.height/2, noDataSize, AnchorMiddle, mutedColor, noDataMessage)
		return
	}

	cx := r.width * 0.32
	cy := r.height / 2
	radius := math.Min(r.width*0.28, r.height/2-24)

	start := -math.Pi / 2
	for i, v := range values {
		sweep := v / total * 2 * math.Pi
		s.FillArc(cx, cy, radius, start, sweep, r.color(i))
		start += sweep
	}

	rows := len(totals)
	if rows > legendEntries {
		rows = legendEntries
	}

	legendX := r.width * 0.60
	y := cy - float64(rows-1)*legendRowHeight/2
	for i := 0; i < rows; i++ {
		s.FillRect(legendX, y-10, swatchSize, swatchSize, r.color(i))

		entry := fmt.Sprintf("%s  %s", totals[i].Label, r.money.Format(totals[i].Amount))
		s.FillText(legendX+legendTextGap, y, barLabelSize, AnchorStart, textColor, entry)

		y += legendRowHeight
	}
}
