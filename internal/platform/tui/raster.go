package tui

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Raster thresholds on the 0..255 alpha scale.
const (
	faintAlpha = 40  // Fills at or below this are skipped
	dimAlpha   = 110 // Strokes at or below this draw as dots
)

// terminalPalette holds the sRGB values of the screen colors, used to find
// the closest terminal color for canvas paint.
var terminalPalette = []struct {
	color core.Color
	rgb   colorful.Color
}{
	{core.ColorRed, hexColor("#cd0000")},
	{core.ColorGreen, hexColor("#00cd00")},
	{core.ColorYellow, hexColor("#cdcd00")},
	{core.ColorBlue, hexColor("#0000ee")},
	{core.ColorMagenta, hexColor("#cd00cd")},
	{core.ColorCyan, hexColor("#00cdcd")},
	{core.ColorWhite, hexColor("#e5e5e5")},
	{core.ColorBrightRed, hexColor("#ff0000")},
	{core.ColorBrightGreen, hexColor("#00ff00")},
	{core.ColorBrightYellow, hexColor("#ffff00")},
	{core.ColorBrightBlue, hexColor("#5c5cff")},
	{core.ColorBrightMagenta, hexColor("#ff00ff")},
	{core.ColorBrightCyan, hexColor("#00ffff")},
	{core.ColorBrightWhite, hexColor("#ffffff")},
	{core.ColorOrange, hexColor("#ff8700")},
	{core.ColorGray, hexColor("#8a8a8a")},
	{core.ColorDefault, hexColor("#1c1c1c")},
}

func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rasterizer projects a canvas display list onto a character screen.
type Rasterizer struct {
	cache map[[3]uint8]core.Color
}

// NewRasterizer creates a rasterizer with an empty color cache.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{cache: make(map[[3]uint8]core.Color)}
}

// Project draws every command of src onto dst, scaling the canvas to the
// screen. A fill covering the whole canvas clears the screen: terminals
// cannot blend, so the translucent trail overlay becomes a plain clear.
func (r *Rasterizer) Project(src *canvas.Canvas, dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	sx := float64(dst.Width()) / src.Width()
	sy := float64(dst.Height()) / src.Height()

	for _, cmd := range src.Commands() {
		switch cmd.Op {
		case canvas.OpFill:
			if covers(cmd, src.Width(), src.Height()) {
				dst.Clear()
				continue
			}
			if cmd.Color.A <= faintAlpha {
				continue
			}
			r.fill(cmd, dst, sx, sy)
		case canvas.OpStroke:
			r.stroke(cmd, dst, sx, sy)
		}
	}
}

// Nearest returns the terminal color closest to c in CIE Lab space.
func (r *Rasterizer) Nearest(c color.NRGBA) core.Color {
	k := [3]uint8{c.R, c.G, c.B}
	if hit, ok := r.cache[k]; ok {
		return hit
	}

	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := core.ColorDefault, math.Inf(1)
	for _, p := range terminalPalette {
		if d := src.DistanceLab(p.rgb); d < bestDist {
			best, bestDist = p.color, d
		}
	}
	r.cache[k] = best
	return best
}

func covers(cmd canvas.Command, w, h float64) bool {
	minX, minY, maxX, maxY := cmd.Bounds()
	return minX <= 0 && minY <= 0 && maxX >= w && maxY >= h
}

// fill paints every cell whose centre lies inside the path (even-odd rule).
func (r *Rasterizer) fill(cmd canvas.Command, dst *core.Screen, sx, sy float64) {
	minX, minY, maxX, maxY := cmd.Bounds()
	x0 := max(0, int(math.Floor(minX*sx)))
	x1 := min(dst.Width()-1, int(math.Ceil(maxX*sx)))
	y0 := max(0, int(math.Floor(minY*sy)))
	y1 := min(dst.Height()-1, int(math.Ceil(maxY*sy)))

	// Near-black paint reads as background on a terminal.
	cell := core.Cell{Rune: '▓', Color: r.Nearest(cmd.Color)}
	if cell.Color == core.ColorDefault {
		cell.Rune = ' '
	}

	for cy := y0; cy <= y1; cy++ {
		py := (float64(cy) + 0.5) / sy
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) / sx
			if inside(cmd.Subpaths, px, py) {
				dst.SetCell(cx, cy, cell)
			}
		}
	}
}

// inside reports whether (x, y) is inside the subpaths under the even-odd rule.
func inside(subpaths []canvas.Subpath, x, y float64) bool {
	in := false
	for _, sp := range subpaths {
		pts := sp.Points
		for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
			a, b := pts[i], pts[j]
			if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

// stroke walks every segment in cell space and marks the cells it crosses.
func (r *Rasterizer) stroke(cmd canvas.Command, dst *core.Screen, sx, sy float64) {
	clr := r.Nearest(cmd.Color)
	dim := cmd.Color.A <= dimAlpha

	for _, sp := range cmd.Subpaths {
		pts := sp.Points
		n := len(pts) - 1
		if sp.Closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			r.segment(dst, a.X*sx, a.Y*sy, b.X*sx, b.Y*sy, clr, dim)
		}
	}
}

func (r *Rasterizer) segment(dst *core.Screen, x0, y0, x1, y1 float64, clr core.Color, dim bool) {
	dx, dy := x1-x0, y1-y0
	ch := '·'
	if !dim {
		ch = slopeRune(dx, dy)
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := int(math.Floor(x0 + dx*t))
		cy := int(math.Floor(y0 + dy*t))
		dst.SetCell(cx, cy, core.Cell{Rune: ch, Color: clr})
	}
}

// slopeRune picks a line character for a segment in cell space.
// Cells are roughly twice as tall as they are wide.
func slopeRune(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy*2)
	switch {
	case adx > 2*ady:
		return '─'
	case ady > 2*adx:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}
