package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/games/crash"
	"github.com/jayantbh/crash-course/internal/platform/tui"
	"github.com/jayantbh/crash-course/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A/H     - Steer left (hold)
  Right/D/L    - Steer right (hold)
  Mouse        - Press and hold left or right of the car to steer
  P/Esc        - Pause
  R            - Restart (after game over)
  S/Tab        - Scoreboard (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Logs go to ~/.crashcourse/crashcourse.log while the game is running.

Examples:
  crashcourse play
  crashcourse play --seed 42
  crashcourse play --config ./my-crash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	// The game owns the terminal, so logs go to a file
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := crash.New(gameCfg, logger)
	runErr := tui.Run(game, store, cfg, playerName(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
