package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

var (
	panelColor = color.RGBA{R: 2, G: 6, B: 23, A: 200}
	warnColor  = color.RGBA{R: 200, G: 0, B: 40, A: 220}
	lostColor  = color.RGBA{R: 60, G: 0, B: 20, A: 230}
)

// drawOSD overlays the flight readouts.
func drawOSD(screen *ebiten.Image, st core.GameState) {
	vector.DrawFilledRect(screen, 8, 8, 190, 78, panelColor, false)
	ebitenutil.DebugPrintAt(screen, osdText(st), 16, 12)

	if st.Warning {
		w := float32(screen.Bounds().Dx())
		vector.DrawFilledRect(screen, w/2-110, 12, 220, 24, warnColor, false)
		ebitenutil.DebugPrintAt(screen, "ANTI-CAMP: MOVE OR GET HIT", int(w/2)-80, 16)
	}
}

func osdText(st core.GameState) string {
	secs := int(st.Elapsed.Seconds())
	return strings.Join([]string{
		fmt.Sprintf("SPD   %d km/h", st.Speed),
		fmt.Sprintf("ALT   %d m", st.Altitude),
		fmt.Sprintf("SCORE %d", st.Score),
		fmt.Sprintf("THR   %.1f [%.1f-%.1f]", st.Thrust, st.ThrustMin, st.ThrustMax),
		fmt.Sprintf("TIME  %02d:%02d  %s", secs/60, secs%60, strings.ToUpper(st.Difficulty)),
	}, "\n")
}

// drawGameOver shows the final score panel.
func drawGameOver(screen *ebiten.Image, st core.GameState) {
	b := screen.Bounds()
	x, y := float32(b.Dx())/2-120, float32(b.Dy())/2-50
	vector.DrawFilledRect(screen, x, y, 240, 100, lostColor, false)
	vector.StrokeRect(screen, x, y, 240, 100, 2, color.RGBA{R: 255, G: 0, B: 68, A: 255}, false)

	msg := fmt.Sprintf("SIGNAL LOST\n\nFinal score: %d\n\nR: reload   Esc: quit", st.FinalScore)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+24, int(y)+14)
}

// drawMenu shows the difficulty picker.
func drawMenu(screen *ebiten.Image, labels []string, cursor int) {
	screen.Fill(color.RGBA{R: 2, G: 6, B: 23, A: 255})

	var b strings.Builder
	b.WriteString("F P V   N E O N\n\n")
	b.WriteString("Fly between the shapes. Hovering in place draws fire.\n\n")
	for i, l := range labels {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(marker + strings.ToUpper(l) + "\n")
	}
	b.WriteString("\nUp/Down: choose   Enter: launch   Esc: quit\n")
	b.WriteString("In flight: W/S climb/dive, A/D thrust")

	ebitenutil.DebugPrintAt(screen, b.String(), 40, 40)
}
