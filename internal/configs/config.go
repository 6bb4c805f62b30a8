package configs

import (
	"os"
	"path/filepath"
)

// ScanConfig holds user-level defaults for the scan command, loaded from
// config.toml in the user's config directory. All fields are optional;
// flags always win over config values.
type ScanConfig struct {
	Scan ScanDefaults `toml:"scan"`
}

type ScanDefaults struct {
	// Workers is the default classification fan-out. Zero means sequential.
	Workers int `toml:"workers"`

	// Exclude lists glob patterns skipped during file discovery.
	Exclude []string `toml:"exclude"`

	// Recursive makes recursive scanning the default.
	Recursive bool `toml:"recursive"`
}

// ConfigFilePath returns the location of the user config file.
func ConfigFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gpg-checker", "config.toml"), nil
}

// LoadScanConfig loads scan defaults from the user config file. A missing
// file is not an error: defaults are returned unchanged.
func LoadScanConfig() (*ScanConfig, error) {
	config := &ScanConfig{}

	configPath, err := ConfigFilePath()
	if err != nil {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveScanConfig writes scan defaults to the user config file, creating
// parent directories as needed.
func SaveScanConfig(config *ScanConfig) error {
	configPath, err := ConfigFilePath()
	if err != nil {
		return err
	}
	return SaveTOML(configPath, config)
}
