package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Logging     LoggingConfig  `yaml:"logging"`
	Board       BoardConfig    `yaml:"board"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
}

// DatabaseConfig locates the SQLite file holding items and board state
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// BoardConfig holds board engine settings
type BoardConfig struct {
	DefaultView string   `yaml:"default_view"`
	StateKey    string   `yaml:"state_key"`
	BucketColor string   `yaml:"bucket_color"`
	Palette     []string `yaml:"palette"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when the file is missing
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configFile := os.Getenv("PASO_CONFIG_FILE"); configFile != "" {
		return configFile, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "paso", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "paso", "config.yaml"), nil
}

// applyEnv lets environment variables override file values
func (c *Config) applyEnv() {
	if dbPath := os.Getenv("PASO_DB_PATH"); dbPath != "" {
		c.Database.Path = dbPath
	}
	if level := os.Getenv("PASO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Board.DefaultView == "" {
		c.Board.DefaultView = "status"
	}
	if c.Board.StateKey == "" {
		c.Board.StateKey = "kanbanBoardConfig"
	}
	if c.Board.BucketColor == "" {
		c.Board.BucketColor = "#6B7280"
	}
	c.KeyMappings.applyDefaults()
}
