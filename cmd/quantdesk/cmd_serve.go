package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"QuantDesk/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the analytics API over HTTP. Endpoints live under /api/v1;
/healthz and /metrics are exposed for operations.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(svc, cfg.Analysis.GridSize, log)
	if err := srv.Run(ctx, cfg.Server.Listen); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
