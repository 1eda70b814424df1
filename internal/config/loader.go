package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const SourceEmbedded Source = "embedded"

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.swiftbox/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or malformed.
func LoadT2048(customPath string) (T2048Config, Source, error) {
	if customPath != "" {
		cfg, err := readT2048(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{userConfigPath("t2048.yaml"), filepath.Join("configs", "t2048.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readT2048(path); err == nil {
			return cfg, Source(path), nil
		}
	}

	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// readT2048 parses one file on top of the built-in defaults so partial files
// only override what they mention.
func readT2048(path string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swiftbox", "configs", filename)
}

// ApplyT2048Preset overrides the spawn probability for a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if p, ok := FourProbabilityForPreset(preset); ok {
		cfg.Spawn.FourProbability = p
	}
}
