// circus plays Circus Catch in the terminal.
//
// Usage:
//
//	circus                   - Play Circus Catch
//	circus play [game]       - Play a game (default: catch)
//	circus list              - List available games
//	circus simulate          - Run headless rounds with a scripted player
//	circus config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Load game config from a YAML file
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circus-catch/internal/games/catch"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circus",
	Short: "Circus Catch - jump on chickens, dodge their eggs",
	Long: `Circus Catch is a terminal arcade game. Move the clown, land on the
chickens running across the ring and never land on one of their eggs.
A round lasts 30 seconds.

Available commands:
  play      - Play a game (the default)
  list      - Show all available games
  simulate  - Run headless rounds and print the results
  config    - Print the default game config

Examples:
  circus
  circus play --tilt
  circus simulate --rounds 10 --seed 42
  circus config > ~/.circus/configs/catch.yaml`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(catch.GameID)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
