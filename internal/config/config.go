// Package config provides YAML-based level configuration loading for the
// puzzle. Levels describe the board shape, the rotation schedule and the
// scoring table; the engine receives an already validated translation.
package config

import (
	"fmt"

	"github.com/lunarisgames/rotagems/internal/engine"
)

// LevelConfig is the on-disk shape of a level.
type LevelConfig struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Board       BoardConfig `yaml:"board"`
	// Seconds between global rotations.
	RotationInterval float64 `yaml:"rotation_interval"`
	// Category names in spawn order; also defines the face cycles.
	Categories []string `yaml:"categories"`
	// Optional spawn weights, parallel to categories.
	Weights []int `yaml:"weights"`
	// Optional base score overrides keyed by match size.
	BaseScores map[int]int `yaml:"base_scores"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate reports the first problem with the level definition.
func (c LevelConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: level has no name")
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: level %s: board must be positive, got %dx%d",
			c.Name, c.Board.Width, c.Board.Height)
	}
	if c.RotationInterval <= 0 {
		return fmt.Errorf("config: level %s: rotation_interval must be positive, got %v",
			c.Name, c.RotationInterval)
	}
	if len(c.Categories) < 3 {
		return fmt.Errorf("config: level %s: need at least 3 categories, got %d",
			c.Name, len(c.Categories))
	}
	seen := make(map[string]bool)
	for _, name := range c.Categories {
		if _, ok := engine.ParseCategory(name); !ok {
			return fmt.Errorf("config: level %s: unknown category %q", c.Name, name)
		}
		if seen[name] {
			return fmt.Errorf("config: level %s: duplicate category %q", c.Name, name)
		}
		seen[name] = true
	}
	if c.Weights != nil {
		if len(c.Weights) != len(c.Categories) {
			return fmt.Errorf("config: level %s: %d weights for %d categories",
				c.Name, len(c.Weights), len(c.Categories))
		}
		for i, w := range c.Weights {
			if w <= 0 {
				return fmt.Errorf("config: level %s: weight for %s must be positive, got %d",
					c.Name, c.Categories[i], w)
			}
		}
	}
	for size, score := range c.BaseScores {
		if size < 3 || size > 6 {
			return fmt.Errorf("config: level %s: base score size %d outside 3..6", c.Name, size)
		}
		if score < 0 {
			return fmt.Errorf("config: level %s: base score for size %d is negative", c.Name, size)
		}
	}
	return nil
}

// ToEngine translates a validated level into an engine configuration with
// the given session seed.
func (c LevelConfig) ToEngine(seed int64) (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	categories := make([]engine.Category, len(c.Categories))
	for i, name := range c.Categories {
		cat, _ := engine.ParseCategory(name)
		categories[i] = cat
	}
	return engine.Config{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		RotationInterval: c.RotationInterval,
		Categories:       categories,
		Weights:          c.Weights,
		BaseScores:       c.BaseScores,
		Seed:             seed,
	}, nil
}

// Pace is a named rotation-speed preset layered over a level.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceStandard Pace = "standard"
	PaceFrantic  Pace = "frantic"
)

// ApplyPace scales the level's rotation interval for the chosen pace.
func ApplyPace(cfg *LevelConfig, pace Pace) {
	switch pace {
	case PaceRelaxed:
		cfg.RotationInterval *= 1.5
	case PaceFrantic:
		cfg.RotationInterval *= 0.6
	}
}
