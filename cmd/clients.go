package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/pancake-labs/lead-ingest/internal/store"
	"github.com/pancake-labs/lead-ingest/pkg/sheets"
)

// newSheetsClient validates the spreadsheet settings and builds the API
// client. Validation failures here are startup-fatal: no command may touch
// the store without a credential and a target document.
func newSheetsClient(ctx context.Context) (sheets.Client, error) {
	if err := cfg.ValidateSheets(); err != nil {
		return nil, err
	}

	client, err := sheets.NewClient(ctx,
		cfg.Sheets.SpreadsheetID,
		[]byte(cfg.Sheets.CredentialsJSON),
		sheets.WithRateLimit(cfg.Sheets.RateLimitRPS),
	)
	if err != nil {
		return nil, eris.Wrap(err, "build sheets client")
	}
	return client, nil
}

// newStore builds the partition store over a fresh sheets client.
func newStore(ctx context.Context) (*store.SheetStore, error) {
	client, err := newSheetsClient(ctx)
	if err != nil {
		return nil, err
	}

	return store.NewSheetStore(client,
		store.WithCallTimeout(time.Duration(cfg.Ingest.StoreTimeoutSecs)*time.Second),
		store.WithPartitionSize(cfg.Ingest.PartitionRows, cfg.Ingest.PartitionCols),
	), nil
}
