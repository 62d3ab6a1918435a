package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"QuantDesk/internal/model"
)

// ResilientProvider wraps a Provider with a rate limiter and circuit breaker
// so upstream outages surface quickly as ErrUnavailable instead of piling up
// slow failing requests.
type ResilientProvider struct {
	inner   Provider
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

// NewResilientProvider wraps inner with rps requests-per-second limiting and
// a circuit breaker that opens after consecutive upstream failures.
func NewResilientProvider(inner Provider, rps float64, log zerolog.Logger) *ResilientProvider {
	if rps <= 0 {
		rps = 2
	}
	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// Unknown symbols are not upstream health problems.
			return err == nil || errors.Is(err, ErrNotFound)
		},
	}
	return &ResilientProvider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     log.With().Str("component", "provider").Str("source", inner.Name()).Logger(),
	}
}

func (p *ResilientProvider) Name() string { return p.inner.Name() }

func (p *ResilientProvider) DailyCloses(ctx context.Context, symbol string, days int) (model.PriceSeries, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return model.PriceSeries{}, fmt.Errorf("rate limit wait: %w: %v", ErrUnavailable, err)
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.DailyCloses(ctx, symbol, days)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			p.log.Warn().Str("symbol", symbol).Msg("circuit breaker open, refusing fetch")
			return model.PriceSeries{}, fmt.Errorf("circuit open: %w", ErrUnavailable)
		}
		return model.PriceSeries{}, err
	}
	return result.(model.PriceSeries), nil
}
