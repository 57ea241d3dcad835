package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfig, EnvAPIURL, EnvTimeout, EnvFormat, EnvStyle, EnvViews, EnvLogLvl, EnvCache} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GetAPIURL() != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.GetAPIURL(), DefaultAPIURL)
	}
	if cfg.GetTimeout() != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.GetTimeout(), DefaultTimeout)
	}
	if cfg.GetCacheTTL() != DefaultCacheTTL {
		t.Errorf("CacheTTL = %v, want %v", cfg.GetCacheTTL(), DefaultCacheTTL)
	}
	if cfg.Format != DefaultFormat || cfg.Style != DefaultStyle || cfg.GetLogLevel() != DefaultLogLevel {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "razorctl.yaml")
	content := "api_url: http://razor.example:8150/api/\ntimeout: 45s\nstyle: pterm\nviews: /etc/razorctl/views.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvStyle, "box")
	t.Setenv(EnvLogLvl, "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GetAPIURL() != "http://razor.example:8150/api" {
		t.Errorf("APIURL = %q, trailing slash should be trimmed", cfg.GetAPIURL())
	}
	if cfg.GetTimeout() != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.GetTimeout())
	}
	if cfg.Style != "box" {
		t.Errorf("Style = %q, environment should override the file", cfg.Style)
	}
	if cfg.GetViewsFile() != "/etc/razorctl/views.yaml" {
		t.Errorf("ViewsFile = %q", cfg.GetViewsFile())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("LogLevel = %q", cfg.GetLogLevel())
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GetAPIURL() != DefaultAPIURL {
		t.Errorf("APIURL = %q", cfg.GetAPIURL())
	}
}

func TestLoadBrokenFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api_url: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}

func TestLoadOrDefault(t *testing.T) {
	brokenFile := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(brokenFile, []byte("api_url: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		env     map[string]string
		wantURL string
		wantTTL time.Duration
	}{
		{"broken file keeps environment", brokenFile, map[string]string{EnvAPIURL: "http://env:8150/api"}, "http://env:8150/api", DefaultCacheTTL},
		{"bad timeout falls back to defaults", "", map[string]string{EnvTimeout: "abc", EnvAPIURL: "http://env:8150/api"}, DefaultAPIURL, DefaultCacheTTL},
		{"bad cache ttl falls back to defaults", brokenFile, map[string]string{EnvCache: "x"}, DefaultAPIURL, DefaultCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := loadOrDefault(tt.path)
			if cfg == nil {
				t.Fatal("loadOrDefault() returned nil")
			}
			if cfg.GetAPIURL() != tt.wantURL {
				t.Errorf("APIURL = %q, want %q", cfg.GetAPIURL(), tt.wantURL)
			}
			if cfg.GetTimeout() != DefaultTimeout || cfg.GetCacheTTL() != tt.wantTTL {
				t.Errorf("Timeout = %v, CacheTTL = %v", cfg.GetTimeout(), cfg.GetCacheTTL())
			}
		})
	}
}

func TestGetWithBadEnvironmentUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(EnvTimeout, "abc")

	configOnce = sync.Once{}
	globalConfig = nil
	t.Cleanup(func() {
		configOnce = sync.Once{}
		globalConfig = nil
	})

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.GetFormat() != DefaultFormat || cfg.GetTimeout() != DefaultTimeout || cfg.GetAPIURL() != DefaultAPIURL {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath() = %q", got)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", "/home/razor")
	if got := DefaultPath(); got != "/home/razor/.razorctl.yaml" {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestSetters(t *testing.T) {
	cfg := &Config{}
	cfg.SetAPIURL("http://x/api/")
	cfg.SetTimeout(time.Second)
	if cfg.GetAPIURL() != "http://x/api" || cfg.GetTimeout() != time.Second {
		t.Errorf("setters did not apply: %+v", cfg)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
