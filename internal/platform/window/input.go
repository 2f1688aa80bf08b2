package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// flightKeys maps ebiten keys to the key names the simulation binds.
var flightKeys = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "arrowup",
	ebiten.KeyArrowDown:  "arrowdown",
	ebiten.KeyArrowLeft:  "arrowleft",
	ebiten.KeyArrowRight: "arrowright",
}

// pollKeys refreshes ks from the keyboard. Windows report real releases,
// so no hold window is needed here.
func pollKeys(ks core.KeyState) core.InputFrame {
	for k, name := range flightKeys {
		if ebiten.IsKeyPressed(k) {
			ks.Press(name)
		} else {
			ks.Release(name)
		}
	}
	return ks.Frame()
}
