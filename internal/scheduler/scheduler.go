// Package scheduler runs periodic portfolio reports on a cron timetable.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"QuantDesk/internal/analysis"
	"QuantDesk/internal/holdings"
	"QuantDesk/internal/report"
)

// Scheduler periodically recomputes portfolio metrics from the holdings
// file and emits a formatted report. The file is re-read on every run so
// position edits take effect without a restart.
type Scheduler struct {
	cron         *cron.Cron
	svc          *analysis.Service
	holdingsPath string
	windowDays   int
	log          zerolog.Logger
}

// New creates a scheduler bound to a holdings file.
func New(svc *analysis.Service, holdingsPath string, windowDays int, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithSeconds()),
		svc:          svc,
		holdingsPath: holdingsPath,
		windowDays:   windowDays,
		log:          log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the portfolio report job at the given cron expression
// (six-field, with seconds).
func (s *Scheduler) Register(reportCron string) error {
	if _, err := s.cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("holdings", s.holdingsPath).Msg("scheduler started")
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the report task immediately, outside the timetable.
func (s *Scheduler) RunNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	start := time.Now()
	hs, err := holdings.Load(s.holdingsPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.holdingsPath).Msg("load holdings")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	metrics, err := s.svc.PortfolioMetrics(ctx, hs, s.windowDays)
	if err != nil {
		s.log.Error().Err(err).Msg("compute portfolio metrics")
		return
	}

	fmt.Print(report.FormatPortfolioMetrics(metrics))
	s.log.Info().
		Int("holdings", len(hs)).
		Dur("elapsed", time.Since(start)).
		Msg("portfolio report generated")
}
