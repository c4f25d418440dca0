package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/blitz.yaml
var defaultBlitzYAML []byte

//go:embed defaults/grand.yaml
var defaultGrandYAML []byte

// DefaultLevel returns the classic level as a hardcoded fallback, used when
// the embedded YAML fails to parse.
func DefaultLevel() LevelConfig {
	return LevelConfig{
		Name:             "classic",
		Description:      "The standard board. Six categories, a rotation every five seconds.",
		Board:            BoardConfig{Width: 8, Height: 8},
		RotationInterval: 5.0,
		Categories:       []string{"red", "blue", "green", "yellow", "purple", "orange"},
	}
}

// GetDefaultYAML returns the embedded default YAML for a level name, or nil
// when the name has no shipped default.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "classic":
		return defaultClassicYAML
	case "blitz":
		return defaultBlitzYAML
	case "grand":
		return defaultGrandYAML
	default:
		return nil
	}
}

// DefaultLevelNames lists the shipped level names in display order.
func DefaultLevelNames() []string {
	return []string{"classic", "blitz", "grand"}
}
