package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL returns an opaque color from hue in degrees and saturation/lightness in [0,1].
func HSL(hue, sat, light float64) color.NRGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, sat, light).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color from 8-bit channels and an alpha in [0,1].
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))}
}

// MustHex parses a "#rrggbb" color and panics on malformed input.
// Intended for package-level palette constants.
func MustHex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("canvas: bad hex color " + s + ": " + err.Error())
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
