// Package ledger implements the single-writer operations of the tracker:
// adding, listing, and deleting records, and managing the category set.
package ledger

import (
	"context"

	"tally/internal/model"
)

// Store defines the contract for the persistence layer. Loads are total:
// missing or malformed data comes back as an empty (or default-seeded)
// collection, never as an error.
type Store interface {
	LoadRecords(ctx context.Context) []model.Record
	SaveRecords(ctx context.Context, records []model.Record) error
	LoadCategories(ctx context.Context) []model.Category
	SaveCategories(ctx context.Context, cats []model.Category) error
}

// Filter selects records for listing. Zero-valued fields match everything;
// set fields must all match.
type Filter struct {
	Month    string // month key "YYYY-MM"
	Category string // category id
	Type     model.RecordType
}

func (f Filter) matches(r model.Record) bool {
	if f.Month != "" && r.Date.MonthKey() != f.Month {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	return true
}
