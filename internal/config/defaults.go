package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: T2048Spawn{
			FourProbability: 0.10,
		},
		Display: T2048Display{
			MinWidth:  25,
			MinHeight: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
