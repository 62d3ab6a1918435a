// Package holdings loads portfolio positions from a JSON file.
package holdings

import (
	"encoding/json"
	"fmt"
	"os"

	"QuantDesk/internal/model"
)

// File is the on-disk shape of a holdings file.
type File struct {
	Holdings []model.Holding `json:"holdings"`
}

// Load reads and validates holdings from a JSON file.
func Load(path string) ([]model.Holding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holdings file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse holdings file: %w", err)
	}
	if err := Validate(f.Holdings); err != nil {
		return nil, err
	}
	return f.Holdings, nil
}

// Save writes holdings to a JSON file.
func Save(path string, hs []model.Holding) error {
	data, err := json.MarshalIndent(File{Holdings: hs}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the portfolio invariants before any computation runs.
func Validate(hs []model.Holding) error {
	if len(hs) == 0 {
		return model.Errorf(model.KindInvalidParameter, "holdings file contains no positions")
	}
	total := 0.0
	for _, h := range hs {
		if h.Symbol == "" {
			return model.Errorf(model.KindInvalidParameter, "holding with empty symbol")
		}
		if h.Shares <= 0 {
			return model.SymbolErrorf(model.KindInvalidParameter, h.Symbol, "shares must be positive, got %g", h.Shares)
		}
		if h.CurrentPrice <= 0 {
			return model.SymbolErrorf(model.KindInvalidParameter, h.Symbol, "current price must be positive, got %g", h.CurrentPrice)
		}
		total += h.Value()
	}
	if total <= 0 {
		return model.Errorf(model.KindInvalidParameter, "total portfolio value must be positive")
	}
	return nil
}
