package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/helpview"
	"github.com/pelletier/go-toml/v2"
)

// Config is the optional TOML configuration file.
type Config struct {
	DBPath          string       `toml:"db_path"`
	Title           string       `toml:"title"`
	HTTPTimeout     Duration     `toml:"http_timeout"`
	LogLevel        string       `toml:"log_level"`
	LoadConcurrency int          `toml:"load_concurrency"`
	Search          SearchConfig `toml:"search"`
}

// SearchConfig holds the search options enabled by default.
type SearchConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
	WholeWord     bool `toml:"whole_word"`
	Regex         bool `toml:"regex"`
	FullText      bool `toml:"full_text"`
}

// Flags converts the defaults to search flags.
func (c SearchConfig) Flags() helpview.SearchFlags {
	return helpview.SearchFlags{
		CaseSensitive: c.CaseSensitive,
		WholeWord:     c.WholeWord,
		Regex:         c.Regex,
		FullText:      c.FullText,
	}
}

// Duration is a time.Duration written as a string such as "10s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Help",
		HTTPTimeout:     Duration{10 * time.Second},
		LoadConcurrency: 4,
	}
}

// LoadConfig reads the configuration at path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.HTTPTimeout.Duration <= 0 {
		return nil, helpview.Errorf(helpview.EINVALID, "http_timeout must be positive")
	}
	if config.LoadConcurrency <= 0 {
		return nil, helpview.Errorf(helpview.EINVALID, "load_concurrency must be positive")
	}
	if _, ok := parseLogLevel(config.LogLevel); config.LogLevel != "" && !ok {
		return nil, helpview.Errorf(helpview.EINVALID, "unknown log_level %q", config.LogLevel)
	}

	return config, nil
}

func parseLogLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// dataDir returns ~/.helpview, creating it if needed.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".helpview")
	_ = os.MkdirAll(dir, 0755)
	return dir
}

func defaultConfigPath() string {
	if path := os.Getenv("HELPVIEW_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(dataDir(), "config.toml")
}
