// Package config resolves runtime settings from defaults, an optional TOML
// file, and SLUMBER_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	DBPath      string `toml:"db_path"`
	Theme       string `toml:"theme"`
	TrendWindow int    `toml:"trend_window"`
	IDStrategy  string `toml:"id_strategy"`
	LogUseCases bool   `toml:"log_use_cases"`
	HistoryRows int    `toml:"history_rows"`

	// envErrs holds SLUMBER_* values that could not be parsed.
	envErrs []error
}

// Default returns the built-in settings rooted at ~/.slumber.
func Default() Config {
	return Config{
		DBPath:      filepath.Join(dataDir(), "slumber.db"),
		Theme:       string(domain.ThemeLight),
		TrendWindow: 5,
		IDStrategy:  "uuid",
		LogUseCases: false,
		HistoryRows: 20,
	}
}

// DefaultPath is where Load looks for a config file unless SLUMBER_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(dataDir(), "config.toml")
}

// Load reads the file at path when it exists, applies environment
// overrides, and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	path = domain.CoalesceStr(os.Getenv("SLUMBER_CONFIG"), path, DefaultPath())
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(&cfg)
	cfg.DBPath = expandPath(strings.TrimSpace(cfg.DBPath))
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.IDStrategy = strings.ToLower(strings.TrimSpace(cfg.IDStrategy))

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// DefaultTheme returns the configured fallback theme.
func (c Config) DefaultTheme() domain.Theme {
	return domain.Theme(c.Theme)
}

func (c Config) validate() error {
	if err := errors.Join(c.envErrs...); err != nil {
		return err
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if _, ok := domain.ParseTheme(c.Theme); !ok {
		return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
	}
	if c.TrendWindow < 1 {
		return fmt.Errorf("trend_window must be at least 1, got %d", c.TrendWindow)
	}
	if c.IDStrategy != "uuid" && c.IDStrategy != "timestamp" {
		return fmt.Errorf("id_strategy must be uuid or timestamp, got %q", c.IDStrategy)
	}
	if c.HistoryRows < 0 {
		return fmt.Errorf("history_rows must not be negative, got %d", c.HistoryRows)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SLUMBER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SLUMBER_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("SLUMBER_TREND_WINDOW"); v != "" {
		cfg.TrendWindow = envInt(cfg, "SLUMBER_TREND_WINDOW", v, cfg.TrendWindow)
	}
	if v := os.Getenv("SLUMBER_ID_STRATEGY"); v != "" {
		cfg.IDStrategy = v
	}
	if v := os.Getenv("SLUMBER_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			cfg.envErrs = append(cfg.envErrs, fmt.Errorf("SLUMBER_LOG_USE_CASES must be a boolean, got %q", v))
		} else {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("SLUMBER_HISTORY_ROWS"); v != "" {
		cfg.HistoryRows = envInt(cfg, "SLUMBER_HISTORY_ROWS", v, cfg.HistoryRows)
	}
}

// envInt parses an integer override, recording a failure and keeping
// fallback.
func envInt(cfg *Config, name, v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		cfg.envErrs = append(cfg.envErrs, fmt.Errorf("%s must be an integer, got %q", name, v))
		return fallback
	}
	return n
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slumber"
	}
	return filepath.Join(home, ".slumber")
}

func expandPath(p string) string {
	if p == MemoryDBPath || !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// MemoryDBPath selects a throwaway in-memory database.
const MemoryDBPath = ":memory:"
