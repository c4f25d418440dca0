package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lunarisgames/rotagems/internal/engine"
)

var (
	flagDuration int
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level]",
	Short: "Run a headless scripted session",
	Long: `Play a level without a terminal UI. A greedy bot scans the board
for the first swap that produces a match, plays it, and lets the
rotation timer run. Useful for exercising a level config and for
reproducing boards by seed.

Examples:
  rotagems simulate
  rotagems simulate blitz --duration 120
  rotagems simulate classic --seed 42 --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagDuration, "duration", 60, "Simulated session length in seconds")
	simulateCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every board event")
}

func runSimulate(cmd *cobra.Command, args []string) {
	levelName := "classic"
	if len(args) > 0 {
		levelName = args[0]
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "simulate",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	level, err := resolveLevel(levelName, "")
	if err != nil {
		logger.Error("Load level", "err", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engCfg, err := level.ToEngine(seed)
	if err != nil {
		logger.Error("Build engine config", "err", err)
		os.Exit(1)
	}
	board, err := engine.New(engCfg)
	if err != nil {
		logger.Error("Create board", "err", err)
		os.Exit(1)
	}

	logger.Info("Session start",
		"level", level.Name,
		"seed", seed,
		"board", fmt.Sprintf("%dx%d", board.Width(), board.Height()),
		"duration", flagDuration)

	const dt = 0.1
	swapEvery := int(level.RotationInterval / (2 * dt))
	if swapEvery < 1 {
		swapEvery = 1
	}

	steps := int(float64(flagDuration) / dt)
	for step := 0; step < steps; step++ {
		logEvents(logger, board.AdvanceTime(dt))

		if step%swapEvery == 0 {
			if a, c, ok := findSwap(board); ok {
				logger.Debug("Swap", "a", a, "b", c)
				logEvents(logger, board.RequestSwap(a, c))
			} else {
				logger.Debug("No playable swap this pass")
			}
		}
	}

	stats := board.Stats()
	logger.Info("Session end",
		"score", board.Score(),
		"turns", stats.Turns,
		"cascades", stats.Cascades,
		"rotations", stats.Rotations,
		"max_combo", stats.MaxCombo)
}

// findSwap returns the first adjacent pair whose exchange would produce a
// match touching either cell.
func findSwap(b *engine.Board) (engine.Pos, engine.Pos, bool) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := engine.P(x, y)
			for _, q := range []engine.Pos{engine.P(x+1, y), engine.P(x, y+1)} {
				if !wouldMatch(b, p, q) {
					continue
				}
				return p, q, true
			}
		}
	}
	return engine.Pos{}, engine.Pos{}, false
}

// wouldMatch checks a swap on a copy of the board so the probe never
// mutates live state.
func wouldMatch(b *engine.Board, p, q engine.Pos) bool {
	a, okA := b.At(p)
	c, okC := b.At(q)
	if !okA || !okC {
		return false
	}
	g := engine.NewGrid(b.Width(), b.Height())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if sym, ok := b.At(engine.P(x, y)); ok {
				g.Set(engine.P(x, y), sym)
			}
		}
	}
	g.Set(p, c)
	g.Set(q, a)
	for _, m := range engine.FindMatches(g) {
		for _, pos := range m.Positions {
			if pos == p || pos == q {
				return true
			}
		}
	}
	return false
}

func logEvents(logger *log.Logger, events []engine.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case engine.MatchesFound:
			logger.Debug("Matches", "count", e.Count, "shapes", e.Shapes)
		case engine.ScoreChanged:
			logger.Debug("Score", "total", e.Score, "delta", e.Delta)
		case engine.RotationCompleted:
			logger.Debug("Rotation")
		case engine.SpecialSymbolCreated:
			logger.Info("Special created", "pos", e.Pos, "kind", e.Kind)
		case engine.SpecialSymbolActivated:
			logger.Info("Special activated", "pos", e.Pos, "kind", e.Kind, "cleared", len(e.Affected))
		}
	}
}
