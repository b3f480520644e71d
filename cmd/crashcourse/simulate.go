package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/games/crash"
	"github.com/jayantbh/crash-course/internal/storage"
)

var (
	flagSimTicks    int
	flagSimStrategy string
	flagSimWidth    int
	flagSimHeight   int
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and print a summary",
	Long: `Run a game without a terminal UI, as fast as possible, and print how
it went. The same seed and strategy always give the same run.

Strategies:
  idle   - Never steer; the car stays between the middle lanes
  dodge  - Steer toward the lane with the most time before a brick arrives

Examples:
  crashcourse simulate --seed 42
  crashcourse simulate --strategy dodge --ticks 36000
  crashcourse simulate --strategy dodge --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60, "Maximum ticks to simulate")
	simulateCmd.Flags().StringVar(&flagSimStrategy, "strategy", "dodge", "Driving strategy: idle, dodge")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Virtual terminal width")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 40, "Virtual terminal height")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the runs database")
}

// driver produces the input for each simulated tick.
type driver func(g *crash.Game) core.InputFrame

func newDriver(strategy string) (driver, error) {
	switch strategy {
	case "idle":
		return func(*crash.Game) core.InputFrame { return core.NewInputFrame() }, nil
	case "dodge":
		pilot := &crash.Autopilot{}
		return pilot.Next, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want idle or dodge)", strategy)
	}
}

func runSimulate(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger := newLogger(os.Stderr)

	drive, err := newDriver(flagSimStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = flagSimWidth, flagSimHeight
	cfg.TickRate = flagFPS
	cfg.Seed = seed

	game := crash.New(gameCfg, logger)
	game.Reset(cfg)

	ticks := 0
	for ticks < flagSimTicks {
		ticks++
		if game.Step(drive(game)).State.GameOver {
			break
		}
	}

	state := game.State()
	summary := game.Summary()

	outcome := "still driving"
	if state.GameOver {
		outcome = "game over"
	}
	fmt.Printf("Crash Course simulation (%s, seed %d)\n", flagSimStrategy, seed)
	fmt.Println()
	fmt.Printf("  %-12s %s after %d ticks\n", "Outcome", outcome, ticks)
	fmt.Printf("  %-12s %s\n", "Played", summary.Duration.Round(time.Millisecond))
	fmt.Printf("  %-12s %d\n", "Score", summary.Score)
	fmt.Printf("  %-12s %d\n", "Peak score", summary.PeakScore)
	fmt.Printf("  %-12s %s\n", "Peak tier", summary.PeakTier)
	fmt.Printf("  %-12s %d\n", "Lives", state.Lives)
	fmt.Printf("  %-12s %d\n", "Bricks", summary.Bricks)
	fmt.Printf("  %-12s %d\n", "Collisions", summary.Collisions)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	best, bestErr := store.HighScore()
	id, err := store.SaveRun(summary.Run("sim-" + flagSimStrategy))
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run saved", "id", id)
	if bestErr == nil && summary.Score > best {
		fmt.Printf("\nNew high score! (previous best %d)\n", best)
	}
}
