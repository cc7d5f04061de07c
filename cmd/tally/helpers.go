package main

import (
	"context"

	"github.com/spf13/viper"

	"tally/internal/chart"
	"tally/internal/config"
	"tally/internal/ledger"
	"tally/internal/model"
	"tally/internal/money"
	"tally/internal/report"
	"tally/internal/storage"
)

// initStore initializes the file store with proper path expansion.
func initStore() (*storage.FileStore, error) {
	// Get data directory from config
	dataDir := viper.GetString("data.dir")
	if dataDir == "" {
		dataDir = "$HOME/.local/share/tally"
	}

	// Expand tilde and environment variables
	dataDir = config.ExpandPath(dataDir)

	return storage.NewFileStore(dataDir)
}

// initLedger wires a ledger on top of the file store.
func initLedger() (*ledger.Ledger, error) {
	store, err := initStore()
	if err != nil {
		return nil, err
	}

	return ledger.New(store), nil
}

// currencySymbol returns the configured currency symbol.
func currencySymbol() string {
	if s := viper.GetString("currency.symbol"); s != "" {
		return s
	}
	return money.Default.Symbol
}

// formatter returns the money formatter for user-facing amounts.
func formatter() money.Formatter {
	return money.Formatter{Symbol: currencySymbol()}
}

// newRenderer builds a chart renderer. Explicit dimensions win over
// configured ones.
func newRenderer(width, height int) *chart.Renderer {
	if width <= 0 {
		width = viper.GetInt("chart.width")
	}
	if height <= 0 {
		height = viper.GetInt("chart.height")
	}

	return chart.New(chart.Config{
		Width:  width,
		Height: height,
		Symbol: currencySymbol(),
	})
}

// latestMonth picks the month to report on when none was given: the most
// recent month with records, or the current month when there are none.
func latestMonth(ctx context.Context, led *ledger.Ledger) string {
	months := report.MonthOptions(led.Records(ctx, ledger.Filter{}))
	if len(months) > 0 {
		return months[0]
	}
	return model.Today().MonthKey()
}
