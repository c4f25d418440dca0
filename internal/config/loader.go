package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLevel loads a level configuration by name.
// Search order: customPath -> ~/.rotagems/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default.
func LoadLevel(name, customPath string) (LevelConfig, error) {
	var cfg LevelConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	if userPath := userConfigPath(filename); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}
	if cfg, ok := tryLoad(filepath.Join("configs", filename)); ok {
		return cfg, nil
	}

	embedded := GetDefaultYAML(name)
	if embedded == nil {
		return cfg, fmt.Errorf("config: unknown level %q", name)
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return DefaultLevel(), nil
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryLoad reads and validates a level file, reporting whether it was usable.
// Unreadable or invalid files fall through to the next search location.
func tryLoad(path string) (LevelConfig, bool) {
	var cfg LevelConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the per-user config file path, or empty when the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rotagems", "configs", filename)
}
