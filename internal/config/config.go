package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"StockTracker/internal/logging"
)

// DefaultPath is read when CONFIG_PATH is not set. A missing file is not an error.
const DefaultPath = "configs/tracker.yaml"

// Provider names.
const (
	ProviderYahoo  = "yahoo"
	ProviderAlpaca = "alpaca"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Name           string        `yaml:"name"`
		Proxy          string        `yaml:"proxy"`
		Timeout        time.Duration `yaml:"timeout"`
		MaxConcurrency int           `yaml:"max_concurrency"`
		Yahoo          struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"yahoo"`
		Alpaca struct {
			APIKey    string `yaml:"api_key"`
			APISecret string `yaml:"api_secret"`
			BaseURL   string `yaml:"base_url"`
		} `yaml:"alpaca"`
	} `yaml:"provider"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Report struct {
		WarnDropped bool `yaml:"warn_dropped"`
	} `yaml:"report"`
}

// Path returns the config file location, honouring CONFIG_PATH.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
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
	if v := os.Getenv("TRACKER_PROVIDER"); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Provider.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.Provider.Alpaca.APISecret = v
	}
	if v := os.Getenv("ALPACA_DATA_URL"); v != "" {
		cfg.Provider.Alpaca.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TRACKER_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("TRACKER_WARN_DROPPED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Report.WarnDropped = b
		}
	}

	// Defaults
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = ProviderYahoo
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	defaults := logging.DefaultLogConfig()
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaults.MaxSize
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaults.MaxBackups
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = defaults.MaxAge
	}

	return cfg, nil
}

// CronParser accepts six-field specs with a leading seconds field.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case ProviderYahoo:
	case ProviderAlpaca:
		if c.Provider.Alpaca.APIKey == "" || c.Provider.Alpaca.APISecret == "" {
			return fmt.Errorf("provider.alpaca.api_key and api_secret are required for the alpaca provider")
		}
	default:
		return fmt.Errorf("provider.name %q is not supported (use %q or %q)", c.Provider.Name, ProviderYahoo, ProviderAlpaca)
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must not be negative")
	}
	if c.Provider.MaxConcurrency < 0 {
		return fmt.Errorf("provider.max_concurrency must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Schedule.Cron != "" {
		if _, err := CronParser.Parse(c.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron: %w", err)
		}
	}
	return nil
}

// LogConfig converts the log section into a logging configuration.
func (c *Config) LogConfig() logging.LogConfig {
	return logging.LogConfig{
		Level:      c.Log.Level,
		FilePath:   c.Log.File,
		MaxSize:    c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAgeDays,
	}
}
