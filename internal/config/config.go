// Package config loads playsheet settings from defaults, an optional YAML or
// TOML file and PLAYSHEET_* environment variables, in that order of
// precedence (later wins). Command-line flags are applied by the CLI on top.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	// Database is the SQLite playsheet file.
	Database string `yaml:"database" toml:"database" env:"PLAYSHEET_DB"`

	Catalog CatalogConfig `yaml:"catalog" toml:"catalog"`
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// CatalogConfig says where the playbook catalog is read from. URL wins
// over Path when both are set.
type CatalogConfig struct {
	Path    string `yaml:"path" toml:"path" env:"PLAYSHEET_CATALOG"`
	URL     string `yaml:"url" toml:"url" env:"PLAYSHEET_CATALOG_URL"`
	Timeout string `yaml:"timeout" toml:"timeout" env:"PLAYSHEET_CATALOG_TIMEOUT"` // e.g. "30s"
}

// SearchConfig bounds catalog searches.
type SearchConfig struct {
	Limit          int `yaml:"limit" toml:"limit" env:"PLAYSHEET_SEARCH_LIMIT"`
	MinQueryLength int `yaml:"min_query_length" toml:"min_query_length" env:"PLAYSHEET_SEARCH_MIN_QUERY"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" env:"PLAYSHEET_LOG_LEVEL"`
}

// DirName is the per-user settings directory under the home directory.
const DirName = ".playsheet"

// Dir returns ~/.playsheet.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns the default config file, ~/.playsheet/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	db := "playsheet.db"
	if dir, err := Dir(); err == nil {
		db = filepath.Join(dir, "playsheet.db")
	}
	return &Config{
		Database: db,
		Catalog: CatalogConfig{
			Timeout: "30s",
		},
		Search: SearchConfig{
			Limit:          50,
			MinQueryLength: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration.
//
// path names a .yaml, .yml or .toml file. An empty path means DefaultPath,
// which may be absent; an explicit path must exist. Unknown keys in the
// file are errors.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Database = expandHome(cfg.Database)
	cfg.Catalog.Path = expandHome(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config file %s: unsupported extension (want .yaml, .yml or .toml)", path)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Database == "" {
		return errors.New("config: database path must not be empty")
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("config: search.limit %d must be positive", c.Search.Limit)
	}
	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("config: search.min_query_length %d must be at least 1", c.Search.MinQueryLength)
	}
	if _, err := c.Catalog.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// CatalogLocation returns the catalog URL or path, for commands that need
// the catalog.
func (c *Config) CatalogLocation() (string, error) {
	if c.Catalog.URL != "" {
		return c.Catalog.URL, nil
	}
	if c.Catalog.Path != "" {
		return c.Catalog.Path, nil
	}
	return "", errors.New("config: no catalog source (set catalog.path, catalog.url, PLAYSHEET_CATALOG or --catalog)")
}

// TimeoutDuration parses Timeout; empty means no timeout.
func (c CatalogConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: catalog.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: catalog.timeout %s must not be negative", c.Timeout)
	}
	return d, nil
}

// SlogLevel converts Level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: log.level %q must be debug, info, warn or error", l.Level)
	}
}
