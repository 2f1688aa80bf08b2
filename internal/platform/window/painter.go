// Package window is the desktop frontend. It runs the game inside an
// ebiten window, replays the canvas display list with GPU triangles and
// overlays the on-screen display.
package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
)

// glowPasses is how many widening halo strokes approximate a blur.
const glowPasses = 3

var additive = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Painter replays canvas commands onto an ebiten image.
type Painter struct {
	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

// NewPainter creates a painter. Must be called after ebiten is initialised.
func NewPainter() *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Paint draws every recorded command of src onto dst in order.
func (p *Painter) Paint(dst *ebiten.Image, src *canvas.Canvas) {
	for _, cmd := range src.Commands() {
		switch cmd.Op {
		case canvas.OpFill:
			p.vs, p.is = appendFill(p.vs[:0], p.is[:0], cmd.Subpaths, cmd.Color)
			p.draw(dst, ebiten.FillRuleEvenOdd, ebiten.BlendSourceOver)
		case canvas.OpStroke:
			if cmd.Glow > 0 {
				p.glow(dst, cmd)
			}
			p.vs, p.is = appendStroke(p.vs[:0], p.is[:0], cmd.Subpaths, cmd.Width, cmd.Color)
			p.draw(dst, ebiten.FillRuleNonZero, ebiten.BlendSourceOver)
		}
	}
}

// glow lays translucent, progressively wider strokes under cmd.
func (p *Painter) glow(dst *ebiten.Image, cmd canvas.Command) {
	tint := cmd.GlowTint
	for i := glowPasses; i >= 1; i-- {
		w := cmd.Width + cmd.Glow*float64(i)/glowPasses
		halo := tint
		halo.A = uint8(float64(tint.A) * 0.18 / float64(i))
		p.vs, p.is = appendStroke(p.vs[:0], p.is[:0], cmd.Subpaths, w, halo)
		p.draw(dst, ebiten.FillRuleNonZero, additive)
	}
}

func (p *Painter) draw(dst *ebiten.Image, rule ebiten.FillRule, blend ebiten.Blend) {
	if len(p.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
		Blend:     blend,
	}
	dst.DrawTriangles(p.vs, p.is, p.white, op)
}

func vertex(x, y float64, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// appendFill triangulates every subpath as a fan from its first point.
// Drawn with the even-odd rule the overlapping fans resolve to the exact
// interior, holes included.
func appendFill(vs []ebiten.Vertex, is []uint16, subpaths []canvas.Subpath, clr color.NRGBA) ([]ebiten.Vertex, []uint16) {
	for _, sp := range subpaths {
		if len(sp.Points) < 3 || len(vs)+len(sp.Points) > math.MaxUint16 {
			continue
		}
		base := uint16(len(vs))
		for _, pt := range sp.Points {
			vs = append(vs, vertex(pt.X, pt.Y, clr))
		}
		for i := 1; i < len(sp.Points)-1; i++ {
			is = append(is, base, base+uint16(i), base+uint16(i+1))
		}
	}
	return vs, is
}

// appendStroke emits one quad per segment, extended by half the width at
// both ends so consecutive segments overlap at the joints.
func appendStroke(vs []ebiten.Vertex, is []uint16, subpaths []canvas.Subpath, width float64, clr color.NRGBA) ([]ebiten.Vertex, []uint16) {
	half := width / 2
	for _, sp := range subpaths {
		pts := sp.Points
		n := len(pts) - 1
		if sp.Closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			if len(vs)+4 > math.MaxUint16 {
				return vs, is
			}
			a, b := pts[i], pts[(i+1)%len(pts)]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			ux, uy := dx/l*half, dy/l*half
			nx, ny := -uy, ux

			base := uint16(len(vs))
			vs = append(vs,
				vertex(a.X-ux+nx, a.Y-uy+ny, clr),
				vertex(b.X+ux+nx, b.Y+uy+ny, clr),
				vertex(b.X+ux-nx, b.Y+uy-ny, clr),
				vertex(a.X-ux-nx, a.Y-uy-ny, clr),
			)
			is = append(is, base, base+1, base+2, base, base+2, base+3)
		}
	}
	return vs, is
}
