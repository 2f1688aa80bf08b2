package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpv-neon/internal/games/drone"
	"github.com/vovakirdan/fpv-neon/internal/platform/tui"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show the difficulty profiles",
	Long: `List every difficulty with its thrust range, spawn rate (ticks between
obstacles at the start of a session) and anti-camp threshold (ticks of
hovering before an obstacle is aimed at the drone).

Examples:
  fpvneon profiles
  fpvneon profiles --config ./my-drone.yaml`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	rc := runtimeConfig()

	g := drone.New()
	if err := g.Load(rc); err != nil {
		return err
	}

	menu := tui.NewDifficultyMenu(g.Difficulties(), g, rc.Difficulty)
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48"))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading.Render("Difficulty profiles"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, menu.View())
	return nil
}
