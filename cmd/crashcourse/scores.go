package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jayantbh/crash-course/internal/platform/tui"
	"github.com/jayantbh/crash-course/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresPlayer string
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the scoreboard",
	Long: `Display the best runs recorded on this machine.

Examples:
  crashcourse scores
  crashcourse scores --limit 25
  crashcourse scores --recent
  crashcourse scores --player ada
  crashcourse scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the scoreboard interactively")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	title := "High Scores"
	var runs []storage.Run
	switch {
	case flagScoresPlayer != "":
		title = "Runs by " + flagScoresPlayer
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	case flagScoresRecent:
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	default:
		runs, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	// Display runs
	fmt.Printf("%s - Crash Course\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crashcourse play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Peak", "Tier", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-8s  %-8s  %s\n", "----", "------", "-----", "----", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-8s  %-8s  %s\n",
			i+1,
			truncate(r.Player, 12),
			r.Score,
			r.PeakScore,
			r.PeakTier,
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Show totals
	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}
