package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all meetbook configuration.
type Config struct {
	// Storage of the address book
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// HTTP API
	Server ServerConfig `yaml:"server"`
}

// StorageConfig selects where the address book lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // json, sqlite
	Path    string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

// ServerConfig configures `mb serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultDir is ~/.meetbook, or .meetbook when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".meetbook"
	}
	return filepath.Join(home, ".meetbook")
}

// DefaultConfig returns the defaults rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "json",
			Path:    filepath.Join(dir, "addressbook.json"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, "meetbook.log"),
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load reads the YAML config at path on top of the defaults. When the file
// does not exist it is created with the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets MEETBOOK_* variables win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MEETBOOK_DATA"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("MEETBOOK_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("MEETBOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects settings the rest of the program cannot honour.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return errors.New("storage.path: must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
