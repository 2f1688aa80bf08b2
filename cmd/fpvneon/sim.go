package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/games/drone"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagRender    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a display. Time advances exactly one tick per
step, so a fixed --seed reproduces the same flight every time.

Examples:
  fpvneon sim --seed 42
  fpvneon sim --difficulty impossible --ticks 7200
  fpvneon sim --autopilot=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 5*60*60, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot fly")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Render every tick into an off-screen canvas")
}

var (
	simLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(12)
	simValue = lipgloss.NewStyle().Foreground(lipgloss.Color("48")).Bold(true)
)

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := runtimeConfig()
	clock := core.NewManualClock(time.Unix(0, 0))
	rc.Clock = clock
	step := core.TickInterval(rc.TickRate)

	g := drone.New()
	if err := g.Load(rc); err != nil {
		return err
	}

	var dst *canvas.Canvas
	if flagRender {
		w, h := g.CanvasSize()
		if dst, err = canvas.New(w, h); err != nil {
			return err
		}
	}

	pilot := drone.NewAutopilot()
	g.Start()
	logger.Info("simulation started", "difficulty", g.State().Difficulty, "seed", rc.Seed, "ticks", flagTicks)

	ticks := 0
	for ticks < flagTicks && g.State().Running() {
		in := core.NewInputFrame()
		if flagAutopilot {
			in = pilot.Frame(g.Sim())
		}
		clock.Advance(step)
		g.Step(in)
		if dst != nil {
			dst.Reset()
			g.Render(dst)
		}
		ticks++

		if ticks%(rc.TickRate*60) == 0 {
			st := g.State()
			logger.Debug("progress", "ticks", ticks, "score", st.Score, "thrust", st.Thrust)
		}
	}

	st := g.State()
	logger.Info("simulation finished", "ticks", ticks, "score", st.Score, "game_over", st.GameOver)

	outcome := "survived"
	if st.GameOver {
		outcome = "crashed"
	}
	rows := [][2]string{
		{"outcome", outcome},
		{"difficulty", st.Difficulty},
		{"ticks", fmt.Sprintf("%d", ticks)},
		{"elapsed", st.Elapsed.Round(time.Millisecond).String()},
		{"score", fmt.Sprintf("%d", st.Score)},
		{"speed", fmt.Sprintf("%d km/h", st.Speed)},
		{"altitude", fmt.Sprintf("%d m", st.Altitude)},
		{"thrust", fmt.Sprintf("%.2f [%.2f-%.2f]", st.Thrust, st.ThrustMin, st.ThrustMax)},
	}
	for _, r := range rows {
		fmt.Fprintln(cmd.OutOrStdout(), simLabel.Render(r[0])+simValue.Render(r[1]))
	}
	return nil
}
