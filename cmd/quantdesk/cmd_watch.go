package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"QuantDesk/internal/scheduler"
)

var watchRunNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run scheduled portfolio reports",
	Long: `Run in the foreground and emit a portfolio report on the cron
timetable from schedule.report_cron, re-reading the holdings file each run.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchRunNow, "run-now", false, "emit one report immediately on startup")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if cfg.Schedule.HoldingsFile == "" {
		return fmt.Errorf("schedule.holdings_file is required for watch mode")
	}

	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	sched := scheduler.New(svc, cfg.Schedule.HoldingsFile, cfg.Analysis.WindowDays, log)
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		return err
	}

	if watchRunNow {
		sched.RunNow()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched.Start()
	<-ctx.Done()
	sched.Stop()
	return nil
}
