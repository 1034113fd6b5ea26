package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScene loads and validates a scene.
// Search order: customPath -> ~/.rectkit/scene.yaml -> ./configs/scene.yaml -> embedded default
func LoadScene(customPath string) (SceneConfig, error) {
	var cfg SceneConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read scene %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse scene %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("scene.yaml"); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "scene.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseScene(defaultSceneYAML)
	if err != nil {
		cfg = DefaultSceneConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseScene decodes and validates a scene document.
func ParseScene(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryLoad reads an optional scene file. Missing or broken files are skipped
// so the next location in the search order is used.
func tryLoad(path string) (SceneConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, false
	}
	cfg, err := ParseScene(data)
	if err != nil {
		return SceneConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rectkit", filename)
}
