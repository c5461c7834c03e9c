// ABOUTME: Layered configuration for duckie
// ABOUTME: Defaults, global TOML, project .duckie, .env and DUCKIE_* variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// HistoryFormats lists the accepted history_format values.
var HistoryFormats = []string{"markdown", "json"}

// Config holds every tunable setting.
type Config struct {
	DBPath          string  `toml:"db_path" env:"DUCKIE_DB_PATH" json:"db_path"`
	ConfidenceFloor float64 `toml:"confidence_floor" env:"DUCKIE_CONFIDENCE_FLOOR" json:"confidence_floor"`
	MaxResults      int     `toml:"max_results" env:"DUCKIE_MAX_RESULTS" json:"max_results"`
	Metric          string  `toml:"metric" env:"DUCKIE_METRIC" json:"metric"`
	SeedDefaults    bool    `toml:"seed_defaults" env:"DUCKIE_SEED_DEFAULTS" json:"seed_defaults"`
	LogLevel        string  `toml:"log_level" env:"DUCKIE_LOG_LEVEL" json:"log_level"`
	History         bool    `toml:"history" env:"DUCKIE_HISTORY" json:"history"`
	HistoryDir      string  `toml:"history_dir" env:"DUCKIE_HISTORY_DIR" json:"history_dir"`
	HistoryFormat   string  `toml:"history_format" env:"DUCKIE_HISTORY_FORMAT" json:"history_format"`

	// ProjectRoot is the directory holding the .duckie file, if any.
	ProjectRoot string `toml:"-" json:"project_root,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:          filepath.Join(DataDir(), "duckie.db"),
		ConfidenceFloor: 0.4,
		MaxResults:      3,
		Metric:          "jaro-winkler",
		SeedDefaults:    true,
		LogLevel:        "warn",
		HistoryDir:      "logs",
		HistoryFormat:   "markdown",
	}
}

// Load builds the configuration seen from dir. Later layers override earlier ones.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if err := cfg.decodeFile(GlobalConfigPath(), DataDir()); err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("find project root: %w", err)
	}
	if root != "" {
		cfg.ProjectRoot = root
		if err := cfg.decodeFile(filepath.Join(root, ProjectFile), root); err != nil {
			return nil, err
		}
	}

	// godotenv never overrides variables already present in the environment, so
	// the working directory's .env wins over the project root's.
	if err := loadDotEnv(dir); err != nil {
		return nil, err
	}
	if root != "" {
		absDir, _ := filepath.Abs(dir)
		if root != absDir {
			if err := loadDotEnv(root); err != nil {
				return nil, err
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(dir string) error {
	dotenv := filepath.Join(dir, ".env")
	if _, err := os.Stat(dotenv); err != nil {
		return nil
	}
	if err := godotenv.Load(dotenv); err != nil {
		return fmt.Errorf("load %s: %w", dotenv, err)
	}
	return nil
}

// decodeFile overlays the TOML file at path, if present. A relative db_path is
// resolved against base.
func (c *Config) decodeFile(path, base string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	before := c.DBPath
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if c.DBPath != before && !filepath.IsAbs(c.DBPath) {
		c.DBPath = filepath.Join(base, c.DBPath)
	}
	return nil
}

// Validate rejects settings the rest of the program cannot honour.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.ConfidenceFloor < 0 || c.ConfidenceFloor > 1 {
		return fmt.Errorf("confidence_floor must be between 0 and 1, got %v", c.ConfidenceFloor)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1, got %d", c.MaxResults)
	}
	if !slices.Contains(HistoryFormats, c.HistoryFormat) {
		return fmt.Errorf("history_format must be one of %v, got %q", HistoryFormats, c.HistoryFormat)
	}
	return nil
}

// HistoryPath is the directory query history is written to. A relative
// history_dir lives under the project root, or the data dir outside a project.
func (c *Config) HistoryPath() string {
	if filepath.IsAbs(c.HistoryDir) {
		return c.HistoryDir
	}
	if c.ProjectRoot != "" {
		return filepath.Join(c.ProjectRoot, c.HistoryDir)
	}
	return filepath.Join(DataDir(), c.HistoryDir)
}
