package chart

import (
	"math"

	"github.com/shopspring/decimal"
)

// Bar layout. The plot area leaves room for value labels above the bars and
// axis labels below them.
const (
	barWidth     = 80.0
	barGap       = 60.0
	barTopInset  = 40.0
	barBotInset  = 32.0
	barLabelSize = 13.0
	valueGap     = 8.0
	axisGap      = 20.0
)

// Bars draws the month's income and expense totals as two bars sharing one
// scale. Both bars are flat when both totals are zero.
func (r *Renderer) Bars(s Surface, income, expense decimal.Decimal) {
	in := income.InexactFloat64()
	ex := expense.InexactFloat64()
	maxVal := math.Max(math.Max(in, ex), 1)

	bottom := r.height - barBotInset
	maxBarHeight := bottom - barTopInset
	left := (r.width - (2*barWidth + barGap)) / 2

	r.bar(s, left, bottom, in/maxVal*maxBarHeight, incomeColor, r.money.FormatFloat(in), "Income")
	r.bar(s, left+barWidth+barGap, bottom, ex/maxVal*maxBarHeight, expenseColor, r.money.FormatFloat(ex), "Expense")
}

func (r *Renderer) bar(s Surface, x, bottom, height float64, c Color, value, label string) {
	top := bottom - height
	s.FillRect(x, top, barWidth, height, c)

	center := x + barWidth/2
	s.FillText(center, top-valueGap, barLabelSize, AnchorMiddle, textColor, value)
	s.FillText(center, bottom+axisGap, barLabelSize, AnchorMiddle, mutedColor, label)
}
