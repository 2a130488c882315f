package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SEARCHHIST_ENDPOINT", "")
	t.Setenv("SEARCHHIST_DATA_DIR", dir)
	t.Setenv("SEARCHHIST_HTTP_TIMEOUT_SEC", "")
	t.Setenv("SEARCHHIST_DROP_STALE", "")
	t.Setenv("SEARCHHIST_LOG_FILE", "")
	t.Setenv("SEARCHHIST_EXPORT_DIR", "")
	t.Setenv("SEARCHHIST_THEME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Remote.Endpoint != DefaultEndpoint {
		t.Fatalf("Endpoint = %q, want %q", cfg.Remote.Endpoint, DefaultEndpoint)
	}
	if cfg.Remote.Timeout != DefaultHTTPTimeout {
		t.Fatalf("Timeout = %s, want %s", cfg.Remote.Timeout, DefaultHTTPTimeout)
	}
	if cfg.Remote.DropStale {
		t.Fatalf("DropStale should default to false")
	}
	if got, want := cfg.Storage.DBPath(), filepath.Join(dir, DBFileName); got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}
	if got, want := cfg.Storage.ExportDir, filepath.Join(dir, ExportDirName); got != want {
		t.Fatalf("ExportDir = %q, want %q", got, want)
	}
	if got, want := cfg.Log.File, filepath.Join(dir, LogFileName); got != want {
		t.Fatalf("Log.File = %q, want %q", got, want)
	}
	if cfg.Theme != "default" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SEARCHHIST_ENDPOINT", "http://localhost:8080/items")
	t.Setenv("SEARCHHIST_DATA_DIR", t.TempDir())
	t.Setenv("SEARCHHIST_HTTP_TIMEOUT_SEC", "5")
	t.Setenv("SEARCHHIST_DROP_STALE", "true")
	t.Setenv("SEARCHHIST_THEME", "dracula")
	exportDir := t.TempDir()
	t.Setenv("SEARCHHIST_EXPORT_DIR", exportDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Remote.Endpoint != "http://localhost:8080/items" {
		t.Fatalf("Endpoint = %q", cfg.Remote.Endpoint)
	}
	if cfg.Remote.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %s", cfg.Remote.Timeout)
	}
	if !cfg.Remote.DropStale {
		t.Fatalf("expected DropStale to be true")
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if cfg.Storage.ExportDir != exportDir {
		t.Fatalf("ExportDir = %q", cfg.Storage.ExportDir)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Remote: RemoteConfig{Endpoint: DefaultEndpoint, Timeout: time.Second}}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"empty endpoint", func(c *Config) { c.Remote.Endpoint = "" }, ErrMissingEndpoint},
		{"relative endpoint", func(c *Config) { c.Remote.Endpoint = "/todos" }, ErrInvalidEndpoint},
		{"ftp endpoint", func(c *Config) { c.Remote.Endpoint = "ftp://example.com/todos" }, ErrInvalidEndpoint},
		{"zero timeout", func(c *Config) { c.Remote.Timeout = 0 }, ErrInvalidTimeout},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := NewLogger(LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}
