package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"tally/internal/model"
)

// defaultCategoryNames seeds a fresh store. Every installation starts with
// these so the category set is never empty.
var defaultCategoryNames = []string{
	"Salary",
	"Food",
	"Transport",
	"Rent",
	"Study",
	"Entertainment",
	"Other",
}

// DefaultCategories returns the seed category set for a fresh store.
func DefaultCategories() []model.Category {
	cats := make([]model.Category, 0, len(defaultCategoryNames))
	for _, name := range defaultCategoryNames {
		cats = append(cats, model.NewCategory(name))
	}
	return cats
}

// LoadCategories reads the categories collection. If the collection is
// absent, malformed, or empty it is seeded with DefaultCategories, persisted,
// and the seeded set returned: at least one category exists at all times.
func (s *FileStore) LoadCategories(ctx context.Context) []model.Category {
	cats := s.readCategories()
	if len(cats) > 0 {
		slog.Debug("loaded categories", "count", len(cats))
		return cats
	}

	cats = DefaultCategories()
	if err := s.SaveCategories(ctx, cats); err != nil {
		slog.Warn("failed to persist default categories", "error", err)
	}
	slog.Info("seeded default categories", "count", len(cats))
	return cats
}

func (s *FileStore) readCategories() []model.Category {
	data, err := os.ReadFile(s.categoriesPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("categories collection unreadable", "path", s.categoriesPath(), "error", err)
		}
		return nil
	}

	var cats []model.Category
	if err := json.Unmarshal(data, &cats); err != nil {
		slog.Warn("categories collection unparsable", "path", s.categoriesPath(), "error", err)
		return nil
	}

	valid := cats[:0]
	for _, c := range cats {
		if err := c.Validate(); err != nil {
			slog.Warn("dropping invalid category", "error", err)
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// SaveCategories overwrites the full categories collection.
func (s *FileStore) SaveCategories(ctx context.Context, cats []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if cats == nil {
		cats = []model.Category{}
	}
	if err := s.writeJSON(s.categoriesPath(), cats); err != nil {
		return err
	}
	slog.Debug("saved categories", "count", len(cats))
	return nil
}
