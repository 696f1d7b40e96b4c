// Package config locates and loads the sbd_config.json file.
//
// Discovery walks upward from the working directory until a directory
// containing sbd_config.json is found, so any subdirectory of a tracked
// workspace picks up the same config. The SBD_CONFIG environment variable
// overrides discovery with an explicit path.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file searched for during discovery.
const FileName = "sbd_config.json"

// ErrNotFound is returned when no config file exists anywhere up the tree.
var ErrNotFound = errors.New("sbd_config.json not found")

// Backend names accepted in StorageConfig.Backend.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config is the top-level configuration.
type Config struct {
	Storage  StorageConfig `json:"storage"`
	LogLevel string        `json:"log_level"`
}

// StorageConfig selects and parameterizes the storage backend.
type StorageConfig struct {
	Backend string       `json:"backend"`
	SQLite  SQLiteConfig `json:"sqlite"`
	Mongo   MongoConfig  `json:"mongo"`
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	Path string `json:"path"`
}

// MongoConfig configures the MongoDB backend.
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// Default returns the configuration used when no config file exists:
// a SQLite database under ./data.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			SQLite:  SQLiteConfig{Path: "./data/sbd.db"},
			Mongo: MongoConfig{
				URI:      "mongodb://localhost:27017",
				Database: "sbd",
			},
		},
		LogLevel: "info",
	}
}

// Find walks upward from start looking for a directory containing
// sbd_config.json and returns the file's full path.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load reads and parses the config file at path, filling unset fields from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Backend != BackendSQLite && cfg.Storage.Backend != BackendMongo {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

// Discover resolves the effective configuration: the SBD_CONFIG env var if
// set, otherwise upward discovery from the working directory, otherwise
// defaults.
func Discover() (*Config, error) {
	if path := os.Getenv("SBD_CONFIG"); path != "" {
		return Load(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := Find(wd)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}
