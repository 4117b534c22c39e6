// Package config loads CLI configuration from YAML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the linguist CLI.
type Config struct {
	// DefinitionsDir overrides the embedded dataset with definitions
	// loaded from a directory containing languages.yml, heuristics.yml
	// and vendor.yml. Empty means use the embedded dataset.
	DefinitionsDir string `yaml:"definitions_dir"`

	// SnapshotPath points at a compiled dataset snapshot to load
	// instead of parsing YAML. Takes precedence over DefinitionsDir.
	SnapshotPath string `yaml:"snapshot_path"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefinitionsDir: "",
		SnapshotPath:   "",
		Verbose:        false,
	}
}

// globalConfigFilePath returns the global config file path (~/.linguist/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".linguist/config.yaml"
	}
	return filepath.Join(home, ".linguist", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.linguist/config.yaml)
func projectConfigFilePath() string {
	return ".linguist/config.yaml"
}

// GlobalConfigPath exposes the global config location for the init flow.
func GlobalConfigPath() string {
	return globalConfigFilePath()
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Project-level config (./.linguist/config.yaml)
// 2. Environment variables
// 3. Global config (~/.linguist/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LINGUIST_DEFINITIONS_DIR"); v != "" {
		cfg.DefinitionsDir = v
	}
	if v := os.Getenv("LINGUIST_SNAPSHOT"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := os.Getenv("LINGUIST_VERBOSE"); v == "1" || v == "true" {
		cfg.Verbose = true
	}
}
