package config

import "os"

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "logscope.toml"

// ConfigPath returns the config file location: $LOGSCOPE_CONFIG if set,
// otherwise logscope.toml in the working directory.
func ConfigPath() string {
	if path := os.Getenv("LOGSCOPE_CONFIG"); path != "" {
		return path
	}
	return DefaultConfigFile
}
