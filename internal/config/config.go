package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	DataSource struct {
		Source       string  `yaml:"source"` // yahoo, cryptocompare or mock
		APIKey       string  `yaml:"api_key"`
		Currency     string  `yaml:"currency"`
		RateLimitRPS float64 `yaml:"rate_limit_rps"`
	} `yaml:"data_source"`
	Analysis struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
		WindowDays   int     `yaml:"window_days"`
		GridSize     int     `yaml:"grid_size"`
	} `yaml:"analysis"`
	Cache struct {
		SQLitePath string        `yaml:"sqlite_path"` // empty selects the in-memory cache
		TTL        time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Schedule struct {
		ReportCron   string `yaml:"report_cron"`
		HoldingsFile string `yaml:"holdings_file"`
	} `yaml:"schedule"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("QUANTDESK_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Source = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		var r float64
		if _, err := fmt.Sscanf(v, "%f", &r); err == nil {
			cfg.Analysis.RiskFreeRate = r
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("HOLDINGS_FILE"); v != "" {
		cfg.Schedule.HoldingsFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.DataSource.Source == "" {
		cfg.DataSource.Source = "yahoo"
	}
	if cfg.DataSource.Currency == "" {
		cfg.DataSource.Currency = "USD"
	}
	if cfg.DataSource.RateLimitRPS == 0 {
		cfg.DataSource.RateLimitRPS = 2
	}
	if cfg.Analysis.RiskFreeRate == 0 {
		cfg.Analysis.RiskFreeRate = 0.05
	}
	if cfg.Analysis.WindowDays == 0 {
		cfg.Analysis.WindowDays = 365
	}
	if cfg.Analysis.GridSize == 0 {
		cfg.Analysis.GridSize = 10
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Hour
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 8 * * 1-5"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	switch c.DataSource.Source {
	case "yahoo", "cryptocompare", "mock":
	default:
		return fmt.Errorf("data_source.source must be yahoo, cryptocompare or mock, got %q", c.DataSource.Source)
	}
	if c.Analysis.RiskFreeRate < 0 {
		return fmt.Errorf("analysis.risk_free_rate must be non-negative")
	}
	if c.Analysis.WindowDays < 2 {
		return fmt.Errorf("analysis.window_days must be at least 2")
	}
	if c.Analysis.GridSize < 2 {
		return fmt.Errorf("analysis.grid_size must be at least 2")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative")
	}
	return nil
}
