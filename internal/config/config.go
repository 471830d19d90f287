package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Logging     LoggingConfig  `yaml:"logging"`
	Board       BoardConfig    `yaml:"board"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	Theme       Theme          `yaml:"theme"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// BoardConfig holds presentation policies of the terminal board.
// Done tickets are only ever purged when AutoPurgeDone is set.
type BoardConfig struct {
	AutoPurgeDone  bool          `yaml:"auto_purge_done"`
	AutoPurgeDelay time.Duration `yaml:"auto_purge_delay"`
}

// Defaults
const (
	DefaultAddr           = ":8080"
	DefaultLogLevel       = "info"
	DefaultAutoPurgeDelay = 2 * time.Second
)

// Environment overrides
const (
	EnvDBPath    = "SPRINTBOARD_DB_PATH"
	EnvAddr      = "SPRINTBOARD_ADDR"
	EnvLogLevel  = "SPRINTBOARD_LOG_LEVEL"
	EnvThemeFile = "SPRINTBOARD_THEME_FILE"
)

// Default returns a config with every value filled in
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from SPRINTBOARD_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return finish(&Config{}), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return finish(&config), nil
}

func finish(config *Config) *Config {
	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "sprintboard", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "sprintboard", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// applyDefaults fills in missing configuration with defaults.
// Empty database and log paths are resolved by their packages.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Board.AutoPurgeDelay <= 0 {
		c.Board.AutoPurgeDelay = DefaultAutoPurgeDelay
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}
