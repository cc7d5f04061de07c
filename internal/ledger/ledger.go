package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"tally/internal/model"
	"tally/internal/money"
)

// Ledger coordinates record and category operations on top of a Store.
type Ledger struct {
	store Store
	now   func() time.Time
}

// New creates a Ledger backed by the given store.
func New(store Store) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
	}
}

// AddRecordInput carries the raw user input for a new record. Fields are
// parsed and validated by AddRecord.
type AddRecordInput struct {
	Type     string
	Amount   string
	Category string
	Date     string
	Note     string
}

// AddRecord validates the input, assigns an id and creation time, and
// persists the new record. The stored record is returned.
func (l *Ledger) AddRecord(ctx context.Context, in AddRecordInput) (model.Record, error) {
	typ, err := model.ParseRecordType(in.Type)
	if err != nil {
		return model.Record{}, err
	}

	amount, err := money.ParseAmount(in.Amount)
	if err != nil {
		return model.Record{}, err
	}

	date, err := model.ParseDate(in.Date)
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	cat, ok := resolveCategory(l.store.LoadCategories(ctx), in.Category)
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %q", ErrUnknownCategory, in.Category)
	}

	rec := model.Record{
		ID:        model.NewRecordID(),
		Type:      typ,
		Category:  cat.ID,
		Amount:    amount,
		Date:      date,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: l.now().UTC(),
	}

	records := append(l.store.LoadRecords(ctx), rec)
	if err := l.store.SaveRecords(ctx, records); err != nil {
		return model.Record{}, fmt.Errorf("failed to save record: %w", err)
	}

	slog.Info("added record",
		"id", rec.ID,
		"type", rec.Type,
		"category", rec.Category,
		"amount", rec.Amount,
		"date", rec.Date.String())

	return rec, nil
}

// Record returns the record with the given id.
func (l *Ledger) Record(ctx context.Context, id string) (model.Record, error) {
	for _, r := range l.store.LoadRecords(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
}

// DeleteRecord removes the record with the given id.
func (l *Ledger) DeleteRecord(ctx context.Context, id string) error {
	records := l.store.LoadRecords(ctx)

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrRecordNotFound, id)
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := l.store.SaveRecords(ctx, records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	slog.Info("deleted record", "id", id)
	return nil
}

// Records returns the records matched by the filter, newest first. Records
// sharing a date are ordered by creation time, newest first.
func (l *Ledger) Records(ctx context.Context, f Filter) []model.Record {
	var out []model.Record
	for _, r := range l.store.LoadRecords(ctx) {
		if f.matches(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[j].Date.Before(out[i].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
