// fpvneon is a neon FPV drone endless runner for the terminal and the desktop.
//
// Usage:
//
//	fpvneon play              - Fly in the terminal
//	fpvneon window            - Fly in a desktop window
//	fpvneon sim               - Run a headless autopilot session
//	fpvneon profiles          - Show the difficulty profiles
//	fpvneon config            - Print the default tuning YAML
//	fpvneon list              - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--config <path>       - Custom tuning YAML
//	--difficulty <label>  - Preselected difficulty
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/games/drone"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagKeyHold    time.Duration
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fpvneon",
	Short: "FPV Neon - steer a drone through a stream of neon shapes",
	Long: `FPV Neon is a side-scrolling endless runner. Climb and dive with W/S,
trade safety for speed with A/D, and keep moving: hovering in place
brings an obstacle straight at you.

Available commands:
  play      - Fly in the terminal
  window    - Fly in a desktop window
  sim       - Headless autopilot run
  profiles  - Show difficulty profiles
  config    - Print the default tuning YAML
  list      - Show all available games

Examples:
  fpvneon play
  fpvneon window --difficulty hard
  fpvneon sim --seed 42 --ticks 3600
  fpvneon play --config ./my-drone.yaml`,
	SilenceUsage: true,
}

func init() {
	d := core.DefaultConfig()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", d.TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", d.Difficulty, "Preselected difficulty: easy, normal, hard, impossible")
	rootCmd.PersistentFlags().DurationVar(&flagKeyHold, "key-hold", d.KeyHold, "How long a terminal key press counts as held")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime configuration from the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	cfg.KeyHold = flagKeyHold
	return cfg
}

// gameID is the game every command drives.
const gameID = drone.ID
