package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"QuantDesk/internal/report"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats <symbol>",
	Short: "Show return and volatility statistics for one asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "lookback window in calendar days (0 uses the configured default)")
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	stats, err := svc.AssetStatistics(ctx, args[0], statsDays)
	if err != nil {
		return err
	}
	fmt.Print(report.FormatAssetStatistics(stats))
	return nil
}
