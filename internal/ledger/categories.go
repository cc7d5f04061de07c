package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tally/internal/model"
)

// Categories returns the category set in stored order.
func (l *Ledger) Categories(ctx context.Context) []model.Category {
	return l.store.LoadCategories(ctx)
}

// AddCategory creates a new category from the given display name. Names are
// compared case-insensitively, and two names that reduce to the same id are
// also considered duplicates.
func (l *Ledger) AddCategory(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, fmt.Errorf("%w: name is empty", ErrInvalidCategoryName)
	}

	cat := model.NewCategory(name)
	if cat.ID == "" {
		return model.Category{}, fmt.Errorf("%w: %q", ErrInvalidCategoryName, name)
	}

	cats := l.store.LoadCategories(ctx)
	for _, existing := range cats {
		if strings.EqualFold(existing.Name, name) || existing.ID == cat.ID {
			return model.Category{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, existing.Name)
		}
	}

	cats = append(cats, cat)
	if err := l.store.SaveCategories(ctx, cats); err != nil {
		return model.Category{}, fmt.Errorf("failed to save categories: %w", err)
	}

	slog.Info("added category", "id", cat.ID, "name", cat.Name)
	return cat, nil
}

// DeleteCategory removes the category matching ref (an id or a display
// name). The last remaining category cannot be deleted, nor can one that is
// still referenced by records.
func (l *Ledger) DeleteCategory(ctx context.Context, ref string) error {
	cats := l.store.LoadCategories(ctx)

	cat, ok := resolveCategory(cats, ref)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, ref)
	}

	if len(cats) == 1 {
		return ErrLastCategory
	}

	used := 0
	for _, r := range l.store.LoadRecords(ctx) {
		if r.Category == cat.ID {
			used++
		}
	}
	if used > 0 {
		return fmt.Errorf("%w: %q has %d records", ErrCategoryInUse, cat.Name, used)
	}

	kept := cats[:0]
	for _, c := range cats {
		if c.ID != cat.ID {
			kept = append(kept, c)
		}
	}
	if err := l.store.SaveCategories(ctx, kept); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}

	slog.Info("deleted category", "id", cat.ID, "name", cat.Name)
	return nil
}

// resolveCategory matches ref against the category set. Both ids and display
// names are accepted; names reduce to ids before matching.
func resolveCategory(cats []model.Category, ref string) (model.Category, bool) {
	id := model.Slugify(ref)
	if id == "" {
		return model.Category{}, false
	}
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
