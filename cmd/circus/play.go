package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circus-catch/internal/core"
	"github.com/vovakirdan/circus-catch/internal/games/catch"
	"github.com/vovakirdan/circus-catch/internal/platform/tui"
	"github.com/vovakirdan/circus-catch/internal/registry"
)

var (
	flagTilt bool
	flagHold time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument this plays Circus Catch.

Controls:
  Left/Right, A/D    - Move (hold)
  Space/Up/W, click  - Jump
  Enter              - Start from the title screen
  P/Esc              - Pause
  R, click           - Restart (after the round ends)
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit

With --tilt the mouse emulates a tilt sensor: the pointer's distance from
the middle of the screen tilts the ring, and [ ] 0 nudge or level it.

Examples:
  circus play
  circus play catch --seed 7
  circus play --tilt
  circus play --config ./my-catch.yaml --log-file circus.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := catch.GameID
		if len(args) == 1 {
			gameID = args[0]
		}
		return runPlay(gameID)
	},
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags that only matter with a terminal attached.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagTilt, "tilt", false, "Emulate a tilt sensor with the mouse and [ ] 0 keys")
	cmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a direction key stays held after its last repeat")
}

func runPlay(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'circus list' to see available games)", gameID)
	}

	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	catch.SetConfigPath(flagConfig)
	catch.SetLogger(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, tui.Options{
		Tilt:       flagTilt,
		HoldWindow: flagHold,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
