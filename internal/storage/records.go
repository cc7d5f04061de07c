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

// LoadRecords reads the records collection. Missing or malformed data is
// treated as "no data"; entries that fail shape validation are dropped
// individually so one bad entry cannot take the rest of the collection
// with it.
func (s *FileStore) LoadRecords(_ context.Context) []model.Record {
	data, err := os.ReadFile(s.recordsPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("records collection unreadable, starting empty", "path", s.recordsPath(), "error", err)
		}
		return nil
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("records collection unparsable, starting empty", "path", s.recordsPath(), "error", err)
		return nil
	}

	valid := records[:0]
	for _, r := range records {
		if err := r.Validate(); err != nil {
			slog.Warn("dropping invalid record", "error", err)
			continue
		}
		valid = append(valid, r)
	}

	slog.Debug("loaded records", "count", len(valid))
	return valid
}

// SaveRecords overwrites the full records collection.
func (s *FileStore) SaveRecords(ctx context.Context, records []model.Record) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if records == nil {
		records = []model.Record{}
	}
	if err := s.writeJSON(s.recordsPath(), records); err != nil {
		return err
	}
	slog.Debug("saved records", "count", len(records))
	return nil
}
