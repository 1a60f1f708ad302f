// Package config handles configuration loading and validation for taskboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/taskboard/internal/core/styles"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultStorageKey is the key the task list is stored under.
const DefaultStorageKey = "tasks"

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	TUI     TUIConfig     `yaml:"tui"`
	DataDir string        `yaml:"-"` // set by caller, not from config file
}

// StorageConfig selects where the task list is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // file or memory
	Path    string `yaml:"path"`    // storage file, defaults to <data-dir>/storage.json
	Key     string `yaml:"key"`     // key the list is stored under
}

// TUIConfig holds interactive view settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Key:     DefaultStorageKey,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, required),
		criterio.Run("storage.backend", c.Storage.Backend, isBackend),
		criterio.Run("storage.key", c.Storage.Key, required),
		criterio.Run("tui.theme", c.TUI.Theme, isTheme),
	)
}

// StoragePath returns the path of the storage file.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(c.DataDir, "storage.json")
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "taskboard.log")
}

func required(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func isBackend(s string) error {
	switch s {
	case BackendFile, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown backend %q: must be %s or %s", s, BackendFile, BackendMemory)
	}
}

func isTheme(s string) error {
	if _, ok := styles.GetPalette(s); !ok {
		return fmt.Errorf("unknown theme %q: must be one of %v", s, styles.ThemeNames())
	}
	return nil
}
