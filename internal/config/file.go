package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	DBPath    string     `toml:"db_path"`
	LogLevel  string     `toml:"log_level"`
	LogFormat string     `toml:"log_format"`
	Limits    FileLimits `toml:"limits"`
}

// FileLimits is the [limits] table.
type FileLimits struct {
	Recent       int `toml:"recent"`
	Details      int `toml:"details"`
	FailureTypes int `toml:"failure_types"`
	Preview      int `toml:"preview"`
}

// LoadFile loads configuration from the TOML file at path, or ConfigPath()
// when path is empty. Returns an empty FileConfig if the file doesn't exist.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if path == "" {
		path = ConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return cfg, nil
}
