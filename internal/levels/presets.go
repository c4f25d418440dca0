package levels

import (
	"gopkg.in/yaml.v3"

	"github.com/lunarisgames/rotagems/internal/config"
)

// The shipped presets register themselves at startup. Their display
// metadata comes from the embedded defaults so the list command never
// touches the filesystem.
func init() {
	for _, name := range config.DefaultLevelNames() {
		var cfg config.LevelConfig
		if err := yaml.Unmarshal(config.GetDefaultYAML(name), &cfg); err != nil {
			cfg = config.DefaultLevel()
		}
		level := name
		Register(level, Info{
			Name:        cfg.Name,
			Description: cfg.Description,
			Width:       cfg.Board.Width,
			Height:      cfg.Board.Height,
		}, func() (config.LevelConfig, error) {
			return config.LoadLevel(level, "")
		})
	}
}
