package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpv-neon/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Fly in a desktop window",
	Long: `Open an 800x600 window with the full neon renderer: glow, motion
trail and spinning rotors.

Controls:
  W/Up, S/Down     - Climb, dive
  A/Left, D/Right  - Less, more thrust
  Enter/Space      - Launch from the difficulty picker
  R                - Reload after a crash
  Esc              - Quit

Examples:
  fpvneon window
  fpvneon window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("opening window", "fps", flagFPS, "seed", flagSeed)
	return window.Run(gameID, runtimeConfig(), logger)
}
