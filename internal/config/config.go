package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds tabula's runtime settings.
type Config struct {
	APIBase  string
	Timeout  time.Duration
	PageSize int
	LogFile  string
	LogLevel string
	SeqURL   string
}

const (
	defaultConfigPath = "~/.config/tabula/config.toml"
	defaultAPIBase    = "https://jsonplaceholder.typicode.com"
	defaultTimeout    = 10 * time.Second
	defaultPageSize   = 10
	defaultLogFile    = "~/.local/state/tabula/tabula.log"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:  defaultAPIBase,
		Timeout:  defaultTimeout,
		PageSize: defaultPageSize,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase  string `toml:"api_base"`
		Timeout  string `toml:"timeout"`
		PageSize int    `toml:"page_size"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
		SeqURL   string `toml:"seq_url"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = strings.TrimRight(v, "/")
	}

	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: timeout %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: timeout %q must be positive", v)
		}
		cfg.Timeout = d
	}

	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	cfg.SeqURL = strings.TrimSpace(raw.SeqURL)

	return cfg, nil
}

// LogDir returns the directory holding the application log.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
