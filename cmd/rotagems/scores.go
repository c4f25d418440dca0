package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lunarisgames/rotagems/internal/levels"
	"github.com/lunarisgames/rotagems/internal/platform/tui"
	"github.com/lunarisgames/rotagems/internal/storage"
)

var (
	flagRecent bool
	flagStats  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Browse the leaderboard",
	Long: `Without arguments, opens the interactive leaderboard browser.
With a level name, prints that level's top 10 runs.

Examples:
  rotagems scores
  rotagems scores classic
  rotagems scores --recent
  rotagems scores --stats
  rotagems scores blitz --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Print the most recent runs across all levels")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print aggregate stats per level")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs for the given level")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a level name")
			os.Exit(1)
		}
		clearScores(store, args[0])
	case flagRecent:
		printRecent(store)
	case flagStats:
		printStats(store)
	case len(args) == 1:
		printTopRuns(store, args[0])
	default:
		browseScores(store)
	}
}

func browseScores(store *storage.Store) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", err)
		os.Exit(1)
	}
}

func printTopRuns(store *storage.Store, level string) {
	if !levels.Exists(level) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", level)
		fmt.Fprintln(os.Stderr, "Run 'rotagems levels' to see available levels.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Runs - %s\n", level)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rotagems play %s' to set the first high score!\n", level)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Combo", "Casc", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "----", "----")
	for i, run := range runs {
		fmt.Printf("  %-4d  %-10d  x%-4d  %-5d  %s\n",
			i+1, run.Score, run.MaxCombo, run.Cascades, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(level); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %-5s  %s\n", "Level", "Score", "Combo", "Date")
	for _, run := range runs {
		fmt.Printf("  %-10s  %-10d  x%-4d  %s\n",
			run.Level, run.Score, run.MaxCombo, run.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.StatsByLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Stats by level:")
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-10s  %-10s  %-5s  %s\n", "Level", "Runs", "Best", "Average", "Combo", "Last played")
	for _, info := range levels.List() {
		st, ok := stats[info.Name]
		if !ok {
			continue
		}
		fmt.Println(formatStatsRow(st))
	}
}

func formatStatsRow(st *storage.LevelStats) string {
	return fmt.Sprintf("  %-10s  %-5d  %-10d  %-10.0f  x%-4d  %s",
		st.Level, st.RunCount, st.HighScore, st.AvgScore, st.BestCombo,
		st.LastPlayed.Format("2006-01-02 15:04"))
}

func clearScores(store *storage.Store, level string) {
	if err := store.ClearRuns(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared recorded runs for %q.\n", level)
}
