// Package config handles the tool configuration file: where the notes
// document lives and where exports are written. The configuration is kept
// separate from the data file so moving the data file does not orphan the
// config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDir      = ".nv"
	ConfigFile     = "config"
	ConfigFileType = "yaml"

	dataFileName  = "vault.json"
	exportDirName = "nv-exports"
)

type Config struct {
	DataPath  string `yaml:"data_path"  json:"data_path"  mapstructure:"data_path"`
	ExportDir string `yaml:"export_dir" json:"export_dir" mapstructure:"export_dir"`
}

// GetConfigPath returns the config file location under the home directory.
func GetConfigPath(home string) string {
	return filepath.Join(home, ConfigDir, ConfigFile+"."+ConfigFileType)
}

// DefaultConfig returns the documented default paths for a home directory.
func DefaultConfig(home string) *Config {
	return &Config{
		DataPath:  filepath.Join(home, ConfigDir, dataFileName),
		ExportDir: filepath.Join(home, exportDirName),
	}
}

// EnsureConfigExists creates the config directory and an empty config file
// when missing, so a first run starts from defaults.
func EnsureConfigExists(home string) error {
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}
	return nil
}

// Load reads the config file through viper, backfilling any missing keys from
// registered defaults. A missing or empty file yields the default config.
func Load(home string) (*Config, error) {
	defaults := DefaultConfig(home)

	v := viper.New()
	v.AddConfigPath(filepath.Join(home, ConfigDir))
	v.SetConfigName(ConfigFile)
	v.SetConfigType(ConfigFileType)
	v.SetDefault("data_path", defaults.DataPath)
	v.SetDefault("export_dir", defaults.ExportDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataPath == "" {
		cfg.DataPath = defaults.DataPath
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaults.ExportDir
	}
	return cfg, nil
}

// Save writes the config back to its file.
func (cfg *Config) Save(home string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
