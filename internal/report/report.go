// Package report computes aggregate views over records: the running
// balance, month summaries, and per-category expense totals.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"tally/internal/model"
)

// CategoryTotal is the summed expense amount for one category. Label is the
// category's display name, or the raw id when the category no longer exists.
type CategoryTotal struct {
	CategoryID string
	Label      string
	Amount     decimal.Decimal
}

// Summary aggregates one month of records. Top is the category with the
// largest expense total, nil when the month has no expenses.
type Summary struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Top     *CategoryTotal
}

// Balance returns income minus expense for the month.
func (s Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// Balance returns total income minus total expense across all records.
func Balance(records []model.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		switch r.Type {
		case model.RecordTypeIncome:
			total = total.Add(r.Amount)
		case model.RecordTypeExpense:
			total = total.Sub(r.Amount)
		}
	}
	return total
}

// MonthOptions returns the distinct month keys present in records, newest
// first.
func MonthOptions(records []model.Record) []string {
	seen := make(map[string]bool)
	var months []string
	for _, r := range records {
		key := r.Date.MonthKey()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		months = append(months, key)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Summarize aggregates the records of the given month.
func Summarize(records []model.Record, cats []model.Category, month string) Summary {
	s := Summary{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, r := range records {
		if r.Date.MonthKey() != month {
			continue
		}
		switch r.Type {
		case model.RecordTypeIncome:
			s.Income = s.Income.Add(r.Amount)
		case model.RecordTypeExpense:
			s.Expense = s.Expense.Add(r.Amount)
		}
	}

	if totals := ExpenseTotals(records, cats, month); len(totals) > 0 {
		s.Top = &totals[0]
	}

	return s
}

// ExpenseTotals sums the month's expenses per category, largest first.
// Categories with equal totals are ordered by id so the result is stable
// across runs.
func ExpenseTotals(records []model.Record, cats []model.Category, month string) []CategoryTotal {
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.Type != model.RecordTypeExpense || r.Date.MonthKey() != month {
			continue
		}
		sums[r.Category] = sums[r.Category].Add(r.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for id, amount := range sums {
		label := names[id]
		if label == "" {
			label = id
		}
		totals = append(totals, CategoryTotal{
			CategoryID: id,
			Label:      label,
			Amount:     amount,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].CategoryID < totals[j].CategoryID
	})

	return totals
}
