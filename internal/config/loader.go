package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.dudu/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (Platformer, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Platformer{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Platformer{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration, falling back to the
// hardcoded record if the embedded file cannot be decoded.
func Default() Platformer {
	var cfg Platformer
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformer()
	}
	if err := cfg.Validate(); err != nil {
		return DefaultPlatformer()
	}
	return cfg
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (Platformer, error) {
	cfg := DefaultPlatformer()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Platformer{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Platformer{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dudu", "configs", filename)
}
