// Package config provides centralized configuration management for razorctl.
// Values come from defaults, then an optional YAML file, then RAZOR_*
// environment variables, each layer overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultAPIURL is the Razor server API root.
	DefaultAPIURL = "http://localhost:8150/api"

	// DefaultTimeout is the default operation timeout for API calls.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL is the default time-to-live for fetched documents.
	DefaultCacheTTL = 2 * time.Minute

	// DefaultFormat is the default output format.
	DefaultFormat = "table"

	// DefaultStyle is the default table style.
	DefaultStyle = "box"

	// DefaultLogLevel is the default diagnostics level.
	DefaultLogLevel = "warn"
)

// Environment variable names.
const (
	EnvPrefix  = "RAZOR_"
	EnvConfig  = "RAZOR_CONFIG"
	EnvAPIURL  = "RAZOR_API_URL"
	EnvTimeout = "RAZOR_TIMEOUT"
	EnvFormat  = "RAZOR_FORMAT"
	EnvStyle   = "RAZOR_STYLE"
	EnvViews   = "RAZOR_VIEWS"
	EnvLogLvl  = "RAZOR_LOG_LEVEL"
	EnvCache   = "RAZOR_CACHE_TTL"
)

// Config holds all runtime configuration.
// It is safe for concurrent use through its getters and setters.
type Config struct {
	mu        sync.RWMutex
	APIURL    string        `koanf:"api_url"`
	Timeout   time.Duration `koanf:"timeout"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	Format    string        `koanf:"format"`
	Style     string        `koanf:"style"`
	ViewsFile string        `koanf:"views"`
	LogLevel  string        `koanf:"log_level"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Get returns the global configuration instance, loading it on first use.
// A broken config file or environment value is reported and the remaining
// layers, or plain defaults, are used.
func Get() *Config {
	configOnce.Do(func() {
		globalConfig = loadOrDefault(DefaultPath())
	})
	return globalConfig
}

// loadOrDefault never returns nil. It drops the file first, then the
// environment, until a layer loads.
func loadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err == nil {
		return cfg
	}
	slog.Warn("ignoring config file", "path", path, "error", err)

	if cfg, err = Load(""); err == nil {
		return cfg
	}
	slog.Warn("ignoring RAZOR_* environment", "error", err)

	cfg = &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultPath returns the config file location: RAZOR_CONFIG when set,
// otherwise ~/.razorctl.yaml.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".razorctl.yaml")
}

// Load merges the YAML file at path (if present) with RAZOR_* environment
// variables and fills in defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// envKey maps RAZOR_API_URL to api_url. RAZOR_CONFIG only selects the file.
func envKey(s string) string {
	if s == EnvConfig {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func applyDefaults(c *Config) {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// GetAPIURL returns the configured API root in a thread-safe manner.
func (c *Config) GetAPIURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIURL
}

// GetTimeout returns the configured timeout value in a thread-safe manner.
func (c *Config) GetTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Timeout
}

// GetCacheTTL returns the configured cache TTL in a thread-safe manner.
func (c *Config) GetCacheTTL() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CacheTTL
}

// GetFormat returns the default output format in a thread-safe manner.
func (c *Config) GetFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Format
}

// GetStyle returns the default table style in a thread-safe manner.
func (c *Config) GetStyle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Style
}

// GetViewsFile returns the configured views file in a thread-safe manner.
func (c *Config) GetViewsFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ViewsFile
}

// GetLogLevel returns the configured log level in a thread-safe manner.
func (c *Config) GetLogLevel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LogLevel
}

// SetAPIURL updates the API root in a thread-safe manner.
func (c *Config) SetAPIURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIURL = strings.TrimRight(url, "/")
}

// SetTimeout updates the timeout value in a thread-safe manner.
func (c *Config) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Timeout = timeout
}

// ParseLogLevel maps a level name to a slog level. Unknown names mean warn.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
