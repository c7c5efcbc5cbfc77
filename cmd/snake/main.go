// snake is a checkerboard snake game for the desktop and the terminal.
//
// Usage:
//
//	snake                 - Play in a 600x600 window
//	snake window          - Same as above
//	snake term            - Play in the terminal
//	snake serve           - Start SSH server for remote play
//	snake controls        - List key bindings
//	snake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - Override log.level from the config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a pink checkerboard",
	Long: `Guide the snake around a 20x20 checkerboard, eat the food and avoid
your own tail. The board wraps around at every edge.

Available commands:
  window   - Play in a desktop window (default)
  term     - Play in the terminal
  serve    - Start SSH server for remote play
  controls - Show key bindings
  config   - Print the effective configuration

Examples:
  snake
  snake term --seed 42
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	RunE: runWindow,

	// Errors are printed once by main
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(configCmd)
}
