package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jayantbh/crash-course/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML, after applying the first config
file found:

  1. --config <path>
  2. ~/.crashcourse/configs/crash.yaml
  3. ./configs/crash.yaml
  4. Built-in defaults

Redirect the output to a file to start a custom config:

  crashcourse config > ~/.crashcourse/configs/crash.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
