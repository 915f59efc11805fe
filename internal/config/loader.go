package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"spcli/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/spcli"
	configFileName = "config.yaml"
)

// GetDefaultConfigPath returns ~/.config/spcli, or an empty string when the
// home directory cannot be determined.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath on top of the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := GetDefaultConfig()
	if configPath == "" {
		return config, nil
	}

	configFilePath := filepath.Join(configPath, configFileName)
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", configFilePath, err)
	}

	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
