// Package provider fetches daily price history from external market-data APIs.
package provider

import (
	"context"
	"errors"

	"QuantDesk/internal/model"
)

// Provider returns daily closing-price history for a symbol.
type Provider interface {
	// DailyCloses fetches up to days most recent daily closes, oldest first.
	DailyCloses(ctx context.Context, symbol string, days int) (model.PriceSeries, error)
	Name() string
}

var (
	// ErrNotFound means the symbol is unknown to the data source.
	ErrNotFound = errors.New("symbol not found")
	// ErrUnavailable means the data source failed (network, rate limit, outage).
	ErrUnavailable = errors.New("data source unavailable")
)
