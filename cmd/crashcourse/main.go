// crashcourse is a lane-dodging arcade game for the terminal.
//
// Usage:
//
//	crashcourse play         - Play in this terminal
//	crashcourse simulate     - Run a headless game and print a summary
//	crashcourse scores       - Show the scoreboard
//	crashcourse serve        - Start SSH server for remote play
//	crashcourse config       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.crashcourse/runs.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jayantbh/crash-course/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crashcourse",
	Short: "Crash Course - dodge falling bricks in your terminal",
	Long: `Crash Course is a terminal arcade game. Steer your car across four
lanes and dodge the bricks falling toward you. Every brick is worth points,
every crash costs a life and some of your score, and the game speeds up
as your score climbs.

Available commands:
  play      - Play in this terminal
  simulate  - Run a headless game and print a summary
  scores    - View the scoreboard
  serve     - Start SSH server for remote play
  config    - Print the effective configuration

Examples:
  crashcourse play
  crashcourse play --seed 42
  crashcourse simulate --strategy dodge --ticks 36000
  crashcourse scores --tui
  crashcourse serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crashcourse/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Shorthand for --log-level debug")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the level chosen by flags.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crashcourse",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	if flagDebug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the log file used while the game owns the terminal.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".crashcourse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "crashcourse.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the game config or exits.
func loadConfig() config.CrashConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// playerName returns the local player's name for the scoreboard.
func playerName() string {
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}
