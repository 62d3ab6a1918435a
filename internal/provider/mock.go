package provider

import (
	"context"
	"fmt"
	"math"
	"time"

	"QuantDesk/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Series map[string]model.PriceSeries // returned verbatim when set
	Price  float64                      // base for synthetic series otherwise
	Err    error                        // forced failure when set
	Calls  int
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) DailyCloses(_ context.Context, symbol string, days int) (model.PriceSeries, error) {
	m.Calls++
	if m.Err != nil {
		return model.PriceSeries{}, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s.Tail(days), nil
	}
	if m.Price <= 0 {
		return model.PriceSeries{}, fmt.Errorf("mock: %w: %s", ErrNotFound, symbol)
	}
	return syntheticSeries(symbol, m.Price, days), nil
}

// syntheticSeries generates a deterministic oscillating price path ending
// near basePrice.
func syntheticSeries(symbol string, basePrice float64, days int) model.PriceSeries {
	points := make([]model.PricePoint, days)
	start := time.Now().UTC().AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		drift := 1 + float64(i-days)*0.0002
		wave := 1 + 0.01*math.Sin(float64(i)/5)
		points[i] = model.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: basePrice * drift * wave,
		}
	}
	return model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
}
