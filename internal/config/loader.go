package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found on disk.
const SourceEmbedded = "embedded"

// LoadDown loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.down/configs/down.yaml -> ./configs/down.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadDown(customPath string) (DownConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DownConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DownConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := []string{userConfigPath("down.yaml"), filepath.Join("configs", "down.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			return DownConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, path, cfg.Validate()
	}

	cfg, err := parse(defaultDownYAML)
	if err != nil {
		return DefaultDownConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// Marshal renders cfg as YAML.
func Marshal(cfg DownConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

func parse(data []byte) (DownConfig, error) {
	cfg := DefaultDownConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DownConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".down", "configs", filename)
}
