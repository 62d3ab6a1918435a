package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"QuantDesk/internal/analysis"
	"QuantDesk/internal/config"
	"QuantDesk/internal/pricecache"
	"QuantDesk/internal/provider"
)

var (
	configPath string
	logPretty  bool

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd is the base command for the QuantDesk CLI.
var rootCmd = &cobra.Command{
	Use:   "quantdesk",
	Short: "Option pricing and portfolio risk analytics",
	Long: `QuantDesk prices European options with the Black-Scholes model,
derives per-asset return and volatility statistics from daily closes,
and computes covariance-based portfolio risk metrics.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "human-readable log output")
}

// setup loads configuration and initializes the logger before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out = os.Stderr
	if logPretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
	} else {
		log = zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return nil
}

// buildService wires the provider chain (source, rate limit and breaker,
// cache) and returns the analysis service plus a cleanup func.
func buildService() (*analysis.Service, func(), error) {
	var base provider.Provider
	switch cfg.DataSource.Source {
	case "yahoo":
		base = provider.NewYahooProvider(cfg.Proxy)
	case "cryptocompare":
		base = provider.NewCryptoCompareProvider(cfg.DataSource.APIKey, cfg.DataSource.Currency, cfg.Proxy)
	case "mock":
		base = &provider.MockProvider{Price: 100}
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.DataSource.Source)
	}

	resilient := provider.NewResilientProvider(base, cfg.DataSource.RateLimitRPS, log)

	var cache pricecache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := pricecache.NewSQLiteCache(cfg.Cache.SQLitePath, cfg.Cache.TTL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open price cache: %w", err)
		}
		cache = sc
	} else {
		cache = pricecache.NewMemoryCache(cfg.Cache.TTL)
	}

	cached := provider.NewCachedProvider(resilient, cache, log)
	svc := analysis.New(cached, cfg.Analysis.RiskFreeRate, cfg.Analysis.WindowDays, log)
	cleanup := func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("close price cache")
		}
	}
	return svc, cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
