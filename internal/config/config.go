package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the link needs to run.
type Config struct {
	URL             string
	OverlayFile     string
	URLFile         string
	LogFile         string
	LogLevel        string
	RefreshInterval time.Duration
	RetryInterval   time.Duration
	RequestTimeout  time.Duration
	QuitWindow      time.Duration
	ReenableDelay   time.Duration
}

const (
	defaultConfigPath      = "~/.config/openlplink/config.toml"
	defaultOverlayName     = "Text Layer.csv"
	defaultURLName         = "OpenLP URL.txt"
	defaultLogLevel        = "info"
	defaultRefreshInterval = time.Second / 6
	defaultRetryInterval   = 5 * time.Second
	defaultRequestTimeout  = time.Second
	defaultQuitWindow      = 1500 * time.Millisecond
	defaultReenableDelay   = time.Second
)

// Environment variables that override the config file.
const (
	EnvURL     = "OPENLPLINK_URL"
	EnvOverlay = "OPENLPLINK_OVERLAY"
	EnvLogFile = "OPENLPLINK_LOG"
)

// Default returns the configuration used when no file exists. Overlay and
// URL files live next to the executable.
func Default() Config {
	dir := executableDir()
	return Config{
		OverlayFile:     filepath.Join(dir, defaultOverlayName),
		URLFile:         filepath.Join(dir, defaultURLName),
		LogLevel:        defaultLogLevel,
		RefreshInterval: defaultRefreshInterval,
		RetryInterval:   defaultRetryInterval,
		RequestTimeout:  defaultRequestTimeout,
		QuitWindow:      defaultQuitWindow,
		ReenableDelay:   defaultReenableDelay,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := cfg.apply(file); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadDotEnv exports the variables of a .env file into the environment
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) apply(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		URL             string `toml:"url"`
		OverlayFile     string `toml:"overlay_file"`
		URLFile         string `toml:"url_file"`
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
		RefreshInterval string `toml:"refresh_interval"`
		RetryInterval   string `toml:"retry_interval"`
		RequestTimeout  string `toml:"request_timeout"`
		QuitWindow      string `toml:"quit_window"`
		ReenableDelay   string `toml:"reenable_delay"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	c.URL = strings.TrimSpace(raw.URL)
	if v := strings.TrimSpace(raw.OverlayFile); v != "" {
		c.OverlayFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.URLFile); v != "" {
		c.URLFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = v
	}

	durations := []struct {
		key   string
		value string
		dest  *time.Duration
	}{
		{"refresh_interval", raw.RefreshInterval, &c.RefreshInterval},
		{"retry_interval", raw.RetryInterval, &c.RetryInterval},
		{"request_timeout", raw.RequestTimeout, &c.RequestTimeout},
		{"quit_window", raw.QuitWindow, &c.QuitWindow},
		{"reenable_delay", raw.ReenableDelay, &c.ReenableDelay},
	}
	for _, d := range durations {
		value := strings.TrimSpace(d.value)
		if value == "" {
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("invalid %s: must be positive", d.key)
		}
		*d.dest = parsed
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOverlay)); v != "" {
		c.OverlayFile = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = mustExpand(v)
	}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return mustExpand(".")
	}
	return filepath.Dir(exe)
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
