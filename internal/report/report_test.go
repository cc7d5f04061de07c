package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/model"
)

var testCategories = []model.Category{
	{ID: "salary", Name: "Salary"},
	{ID: "food", Name: "Food"},
	{ID: "transport", Name: "Transport"},
	{ID: "rent", Name: "Rent"},
}

func record(typ model.RecordType, category, amount, date string) model.Record {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Record{
		ID:       model.NewRecordID(),
		Type:     typ,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     d,
	}
}

func TestBalance(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeIncome, "salary", "2500.00", "2024-03-01"),
		record(model.RecordTypeExpense, "food", "300.50", "2024-03-10"),
		record(model.RecordTypeExpense, "rent", "1200.00", "2024-03-01"),
		record(model.RecordTypeIncome, "salary", "100.00", "2024-04-01"),
	}

	got := Balance(records)
	assert.True(t, got.Equal(decimal.RequireFromString("1099.50")), "got %s", got)
}

func TestBalanceEmpty(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
}

func TestBalanceCanBeNegative(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeIncome, "salary", "100", "2024-03-01"),
		record(model.RecordTypeExpense, "rent", "250", "2024-03-02"),
	}

	got := Balance(records)
	assert.True(t, got.Equal(decimal.NewFromInt(-150)), "got %s", got)
}

func TestMonthOptions(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeExpense, "food", "10", "2024-01-15"),
		record(model.RecordTypeExpense, "food", "10", "2024-03-02"),
		record(model.RecordTypeIncome, "salary", "10", "2024-03-20"),
		record(model.RecordTypeExpense, "food", "10", "2023-12-31"),
	}

	assert.Equal(t, []string{"2024-03", "2024-01", "2023-12"}, MonthOptions(records))
}

func TestMonthOptionsEmpty(t *testing.T) {
	assert.Empty(t, MonthOptions(nil))
}

func TestSummarize(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeIncome, "salary", "2500.00", "2024-03-01"),
		record(model.RecordTypeExpense, "rent", "1200.00", "2024-03-01"),
		record(model.RecordTypeExpense, "food", "150.25", "2024-03-12"),
		record(model.RecordTypeExpense, "food", "49.75", "2024-03-20"),
		// outside the month, must not count
		record(model.RecordTypeExpense, "food", "999.00", "2024-02-12"),
	}

	s := Summarize(records, testCategories, "2024-03")

	assert.Equal(t, "2024-03", s.Month)
	assert.True(t, s.Income.Equal(decimal.RequireFromString("2500.00")), "income %s", s.Income)
	assert.True(t, s.Expense.Equal(decimal.RequireFromString("1400.00")), "expense %s", s.Expense)
	assert.True(t, s.Balance().Equal(decimal.RequireFromString("1100.00")), "balance %s", s.Balance())

	require.NotNil(t, s.Top)
	assert.Equal(t, "rent", s.Top.CategoryID)
	assert.Equal(t, "Rent", s.Top.Label)
	assert.True(t, s.Top.Amount.Equal(decimal.RequireFromString("1200.00")))
}

func TestSummarizeNoExpenses(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeIncome, "salary", "2500.00", "2024-03-01"),
	}

	s := Summarize(records, testCategories, "2024-03")

	assert.True(t, s.Expense.IsZero())
	assert.Nil(t, s.Top)
}

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize(nil, testCategories, "2024-03")

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Balance().IsZero())
	assert.Nil(t, s.Top)
}

func TestSummarizeTopTieBreaksOnID(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeExpense, "transport", "80.00", "2024-03-05"),
		record(model.RecordTypeExpense, "food", "80.00", "2024-03-06"),
	}

	s := Summarize(records, testCategories, "2024-03")

	require.NotNil(t, s.Top)
	assert.Equal(t, "food", s.Top.CategoryID)
}

func TestExpenseTotals(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeExpense, "food", "100.00", "2024-03-05"),
		record(model.RecordTypeExpense, "food", "50.00", "2024-03-08"),
		record(model.RecordTypeExpense, "rent", "1200.00", "2024-03-01"),
		record(model.RecordTypeExpense, "transport", "25.00", "2024-03-09"),
		// income and other months are ignored
		record(model.RecordTypeIncome, "salary", "2500.00", "2024-03-01"),
		record(model.RecordTypeExpense, "food", "44.00", "2024-04-05"),
	}

	totals := ExpenseTotals(records, testCategories, "2024-03")
	require.Len(t, totals, 3)

	assert.Equal(t, "rent", totals[0].CategoryID)
	assert.Equal(t, "food", totals[1].CategoryID)
	assert.Equal(t, "transport", totals[2].CategoryID)
	assert.True(t, totals[1].Amount.Equal(decimal.RequireFromString("150.00")))

	sum := decimal.Zero
	for _, ct := range totals {
		sum = sum.Add(ct.Amount)
	}
	s := Summarize(records, testCategories, "2024-03")
	assert.True(t, sum.Equal(s.Expense), "totals sum %s, summary expense %s", sum, s.Expense)
}

func TestExpenseTotalsLabelFallsBackToID(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeExpense, "vanished", "10.00", "2024-03-05"),
	}

	totals := ExpenseTotals(records, testCategories, "2024-03")
	require.Len(t, totals, 1)
	assert.Equal(t, "vanished", totals[0].Label)
}

func TestExpenseTotalsStableOrderOnTies(t *testing.T) {
	records := []model.Record{
		record(model.RecordTypeExpense, "transport", "30.00", "2024-03-05"),
		record(model.RecordTypeExpense, "food", "30.00", "2024-03-06"),
		record(model.RecordTypeExpense, "rent", "30.00", "2024-03-07"),
	}

	totals := ExpenseTotals(records, testCategories, "2024-03")
	require.Len(t, totals, 3)
	assert.Equal(t, "food", totals[0].CategoryID)
	assert.Equal(t, "rent", totals[1].CategoryID)
	assert.Equal(t, "transport", totals[2].CategoryID)
}
