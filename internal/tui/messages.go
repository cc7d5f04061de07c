package tui

import "tally/internal/model"

// dataLoadedMsg carries a fresh snapshot of the ledger.
type dataLoadedMsg struct {
	records    []model.Record
	categories []model.Category
}
