package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/games/catch"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config for a game",
	Long: `Prints the embedded default YAML. Save it to
~/.circus/configs/catch.yaml or pass an edited copy with --config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := catch.GameID
		if len(args) == 1 {
			gameID = args[0]
		}
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return fmt.Errorf("no config for game %q", gameID)
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
