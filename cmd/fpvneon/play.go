package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fpv-neon/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly in the terminal",
	Long: `Start a session in the terminal.

Controls:
  W/Up, S/Down     - Climb, dive
  A/Left, D/Right  - Less, more thrust
  Enter            - Launch from the difficulty picker
  R                - Reload after a crash
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a key counts as held for
--key-hold after each press; auto-repeat keeps it held.

Examples:
  fpvneon play
  fpvneon play --difficulty impossible
  fpvneon play --log-file flight.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal; try 'fpvneon sim' instead")
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(gameID, runtimeConfig(), logger, width, height)
}
