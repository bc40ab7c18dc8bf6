package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDoodle loads the doodle configuration.
// Search order: customPath -> ~/.doodle/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable.
func LoadDoodle(customPath string) (DoodleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DoodleConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseDoodle(data)
		if err != nil {
			return DoodleConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("doodle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDoodle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "doodle.yaml")); err == nil {
		if cfg, err := parseDoodle(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseDoodle(defaultDoodleYAML)
	if err != nil {
		return DefaultDoodleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseDoodle decodes YAML on top of the built-in defaults, so a partial
// file only overrides the keys it names, then validates the result.
func parseDoodle(data []byte) (DoodleConfig, error) {
	cfg := DefaultDoodleConfig()
	// Weights are replaced wholesale rather than merged key by key
	cfg.Spawn.Weights = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DoodleConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if cfg.Spawn.Weights == nil {
		cfg.Spawn.Weights = DefaultDoodleConfig().Spawn.Weights
	}
	if err := cfg.Validate(); err != nil {
		return DoodleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doodle", "configs", filename)
}
