// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/sptable/export"
	"github.com/katalvlaran/sptable/sptable"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable.
const EnvPrefix = "SPTABLE"

// EnvConfigFile names the variable holding the YAML file path.
const EnvConfigFile = EnvPrefix + "_CONFIG"

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string          `yaml:"addr" envconfig:"ADDR"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64           `yaml:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
	AllowedOrigins  []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig bounds analysis requests per second across all clients.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" envconfig:"FORMAT"` // text | json
}

// AnalysisConfig maps to sptable options.
type AnalysisConfig struct {
	Strategy    string `yaml:"strategy" envconfig:"STRATEGY"` // naive | prefix
	ValidateIDs bool   `yaml:"validate_ids" envconfig:"VALIDATE_IDS"`
}

// ExportConfig drives the analyze command's output.
type ExportConfig struct {
	Dir     string   `yaml:"dir" envconfig:"DIR"`
	Formats []string `yaml:"formats" envconfig:"FORMATS"`
	BOM     bool     `yaml:"bom" envconfig:"BOM"`
	Chart   string   `yaml:"chart" envconfig:"CHART"` // "", html | png
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    10 << 20,
			AllowedOrigins:  []string{"*"},
			RateLimit:       RateLimitConfig{Enabled: true, RPS: 20, Burst: 40},
		},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Analysis: AnalysisConfig{Strategy: "prefix", ValidateIDs: true},
		Export:   ExportConfig{Dir: "out", Formats: []string{"csv"}},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// $SPTABLE_CONFIG when path is empty; no file when both are empty) and the
// environment.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the keys present in the YAML file onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks every enumerated and numeric setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := parseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid))
	}
	if _, err := sptable.ParseStrategy(c.Analysis.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("analysis.strategy: %v: %w", err, ErrInvalid))
	}
	for _, f := range c.Export.Formats {
		if _, err := export.ParseFormat(f); err != nil {
			errs = append(errs, fmt.Errorf("export.formats: %w", err))
		}
	}
	switch c.Export.Chart {
	case "", "html", "png":
	default:
		errs = append(errs, fmt.Errorf("export.chart %q: %w", c.Export.Chart, ErrInvalid))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, ErrInvalid))
	}
	if rl := c.Server.RateLimit; rl.Enabled && (rl.RPS <= 0 || rl.Burst < 1) {
		errs = append(errs, fmt.Errorf("server.rate_limit rps=%g burst=%d: %w", rl.RPS, rl.Burst, ErrInvalid))
	}

	return errors.Join(errs...)
}

// Options translates the analysis section into sptable options.
func (a AnalysisConfig) Options() []sptable.Option {
	s, err := sptable.ParseStrategy(a.Strategy)
	if err != nil {
		s = sptable.DefaultStrategy
	}
	opts := []sptable.Option{sptable.WithStrategy(s)}
	if !a.ValidateIDs {
		opts = append(opts, sptable.WithoutIDValidation())
	}

	return opts
}

// ExportFormats parses the configured formats; invalid entries are skipped
// (Validate reports them).
func (e ExportConfig) ExportFormats() []export.Format {
	out := make([]export.Format, 0, len(e.Formats))
	for _, s := range e.Formats {
		if f, err := export.ParseFormat(s); err == nil {
			out = append(out, f)
		}
	}

	return out
}

// NewLogger builds a slog.Logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	ho := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging.level %q: %w", s, ErrInvalid)
	}

	return level, nil
}
