package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lunarisgames/rotagems/internal/config"
	"github.com/lunarisgames/rotagems/internal/levels"
	"github.com/lunarisgames/rotagems/internal/platform/tui"
	"github.com/lunarisgames/rotagems/internal/storage"
)

var (
	flagConfig string
	flagPace   string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: classic).

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select symbol / swap with selection
  Esc          - Clear selection
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Pace options:
  relaxed  - Rotations come 50% slower
  standard - Rotation interval as configured
  frantic  - Rotations come 40% faster

Examples:
  rotagems play
  rotagems play blitz
  rotagems play grand --pace frantic
  rotagems play classic --config ./my-level.yaml
  rotagems play classic --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, standard, frantic")
}

func runPlay(cmd *cobra.Command, args []string) {
	levelName := "classic"
	if len(args) > 0 {
		levelName = args[0]
	}

	level, err := resolveLevel(levelName, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rotagems levels' to see available levels.")
		os.Exit(1)
	}

	if flagPace != "" {
		pace := config.Pace(flagPace)
		switch pace {
		case config.PaceRelaxed, config.PaceStandard, config.PaceFrantic:
			config.ApplyPace(&level, pace)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown pace %q (want relaxed, standard or frantic)\n", flagPace)
			os.Exit(1)
		}
	}

	// Get terminal size for the board layout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(level, store, seed, flagFPS, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLevel loads a registered level, or the level at customPath when one
// is given. A custom file still carries its own name for the leaderboard.
func resolveLevel(name, customPath string) (config.LevelConfig, error) {
	if customPath != "" {
		return config.LoadLevel(name, customPath)
	}
	if !levels.Exists(name) {
		return config.LevelConfig{}, fmt.Errorf("unknown level %q", name)
	}
	return levels.Load(name)
}
