// Package config loads server settings from defaults, an optional TOML
// file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mmynk/invoicesplit/internal/upi"
)

// Config holds the runtime settings of the server and CLI.
type Config struct {
	Port              int    `toml:"port"`
	DBPath            string `toml:"db_path"`
	StaticPath        string `toml:"static_path"`
	LogLevel          string `toml:"log_level"`
	StrictNumbers     bool   `toml:"strict_numbers"`
	DescriptionPrefix string `toml:"description_prefix"`
	MetricsEnabled    bool   `toml:"metrics_enabled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:              8080,
		DBPath:            "./data/invoices.db",
		StaticPath:        "./static",
		LogLevel:          "info",
		StrictNumbers:     false,
		DescriptionPrefix: upi.DefaultDescriptionPrefix,
		MetricsEnabled:    true,
	}
}

// FromEnv loads the file named by CONFIG_FILE (if set) and applies
// environment overrides from the process environment.
func FromEnv() (Config, error) {
	return Load(os.Getenv("CONFIG_FILE"), os.Getenv)
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the variables returned by getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("STATIC_PATH"); v != "" {
		cfg.StaticPath = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("DESCRIPTION_PREFIX"); v != "" {
		cfg.DescriptionPrefix = v
	}
	if v := getenv("STRICT_NUMBERS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STRICT_NUMBERS %q: %w", v, err)
		}
		cfg.StrictNumbers = b
	}
	if v := getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = b
	}
	return nil
}

// Validate checks the settings for values the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	return errors.Join(errs...)
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
