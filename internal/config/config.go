package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/akyairhashvil/searchhist/internal/util"
)

var (
	ErrMissingEndpoint = errors.New("SEARCHHIST_ENDPOINT must not be empty")
	ErrInvalidEndpoint = errors.New("SEARCHHIST_ENDPOINT must be an absolute http(s) URL")
	ErrInvalidTimeout  = errors.New("SEARCHHIST_HTTP_TIMEOUT_SEC must be positive")
)

type Config struct {
	Remote  RemoteConfig
	Storage StorageConfig
	Log     LogConfig
	Theme   string
}

type RemoteConfig struct {
	Endpoint string
	Timeout  time.Duration
	// DropStale discards any response that is not for the latest keystroke.
	// Off by default: the last response to arrive wins.
	DropStale bool
}

type StorageConfig struct {
	DataDir string
	// ExportDir receives exports written without an explicit path.
	ExportDir string
}

// DBPath is the SQLite file holding the key-value store.
func (s StorageConfig) DBPath() string {
	return filepath.Join(s.DataDir, DBFileName)
}

type LogConfig struct {
	Level string
	// File is the log destination. The terminal owns stdout while the UI runs.
	File string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnvOrDefault("SEARCHHIST_DATA_DIR", util.DataDir(AppName))
	cfg := &Config{
		Remote: RemoteConfig{
			Endpoint:  strings.TrimSpace(getEnvOrDefault("SEARCHHIST_ENDPOINT", DefaultEndpoint)),
			Timeout:   time.Duration(getEnvIntOrDefault("SEARCHHIST_HTTP_TIMEOUT_SEC", int(DefaultHTTPTimeout/time.Second))) * time.Second,
			DropStale: getEnvBoolOrDefault("SEARCHHIST_DROP_STALE", false),
		},
		Storage: StorageConfig{
			DataDir:   dataDir,
			ExportDir: getEnvOrDefault("SEARCHHIST_EXPORT_DIR", filepath.Join(dataDir, ExportDirName)),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("SEARCHHIST_LOG_LEVEL", "info"),
			File:  getEnvOrDefault("SEARCHHIST_LOG_FILE", filepath.Join(dataDir, LogFileName)),
		},
		Theme: getEnvOrDefault("SEARCHHIST_THEME", "default"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Remote.Endpoint == "" {
		return ErrMissingEndpoint
	}
	u, err := url.Parse(c.Remote.Endpoint)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Remote.Endpoint)
	}
	if c.Remote.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
