// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAPIBaseURL  = "https://dummyjson.com"
	DefaultTimeoutSecs = 10
	DefaultPageSize    = 10
	DefaultUserID      = 1
	DefaultLogLevel    = "info"
	DefaultConfigFile  = "todoterm.toml"
)

// Config holds the full configuration for todoterm.
// Precedence: defaults, then the config file, then TODOTERM_* env vars;
// command-line flags override on top of the loaded result.
type Config struct {
	APIBaseURL  string `toml:"api_base_url"`
	TimeoutSecs int    `toml:"request_timeout_secs"`
	PageSize    int    `toml:"page_size"`
	UserID      int    `toml:"user_id"`
	LogLevel    string `toml:"log_level"`
}

// Load reads configuration from path (or DefaultConfigFile when empty).
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := &Config{}
	setDefaults(cfg)

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.APIBaseURL = DefaultAPIBaseURL
	cfg.TimeoutSecs = DefaultTimeoutSecs
	cfg.PageSize = DefaultPageSize
	cfg.UserID = DefaultUserID
	cfg.LogLevel = DefaultLogLevel
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TODOTERM_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("TODOTERM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{"TODOTERM_TIMEOUT_SECS", &cfg.TimeoutSecs},
		{"TODOTERM_PAGE_SIZE", &cfg.PageSize},
		{"TODOTERM_USER_ID", &cfg.UserID},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", e.name, v)
		}
		*e.dst = n
	}
	return nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if cfg.TimeoutSecs < 1 {
		return fmt.Errorf("request_timeout_secs must be positive, got %d", cfg.TimeoutSecs)
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	return nil
}
