package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlast loads Cube Blast configuration.
// Search order: customPath -> ~/.blast/configs/blast.yaml -> ./configs/blast.yaml -> embedded default
func LoadBlast(customPath string) (BlastConfig, error) {
	cfg := DefaultBlastConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blast.yaml"); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", "blast.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlastYAML, &cfg); err != nil {
		return DefaultBlastConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// tryFile reads an optional config file layered over the defaults.
func tryFile(path string) (BlastConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlastConfig{}, false
	}
	cfg := DefaultBlastConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlastConfig{}, false
	}
	cfg.Normalize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blast", "configs", filename)
}
