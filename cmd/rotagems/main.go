// rotagems is a terminal match puzzle built around a board-wide symbol
// rotation timer.
//
// Usage:
//
//	rotagems levels            - List available levels
//	rotagems play [level]      - Play a level
//	rotagems scores            - Browse the leaderboard
//	rotagems serve             - Start SSH server for remote play
//	rotagems simulate [level]  - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.rotagems/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rotagems",
	Short: "Rotagems - match gems that never stop turning",
	Long: `Rotagems is a terminal match puzzle. Every symbol carries four faces,
and on a fixed timer the whole board rotates to the next face at once.
Line up three or more matching faces, chase cascades, and time your
swaps against the rotation for bonus points.

Available commands:
  levels   - Show all playable levels
  play     - Play a level directly
  scores   - Browse the leaderboard
  serve    - Start SSH server for remote play
  simulate - Run a headless scripted session

Examples:
  rotagems levels
  rotagems play classic
  rotagems play blitz --pace frantic
  rotagems serve --ssh :2222
  rotagems scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rotagems/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
