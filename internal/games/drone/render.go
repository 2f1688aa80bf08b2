package drone

import (
	"math"
	"time"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

var (
	colorFade     = canvas.RGBA(2, 6, 23, 0.3)
	colorFrame    = canvas.MustHex("#00ffcc")
	colorHub      = canvas.MustHex("#334155")
	colorBlade    = canvas.RGBA(255, 255, 255, 0.4)
	colorBody     = canvas.MustHex("#0f172a")
	colorBodyEdge = canvas.MustHex("#00ff00")
	colorLED      = canvas.MustHex("#ff0044")
)

const (
	obstacleLineWidth = 3
	obstacleGlow      = 15
	obstacleFillAlpha = 0.1

	armReach     = 16 // Rotor hub offset from the body centre
	tiltPerVY    = 0.05
	tiltPerPower = 0.012

	propIdleSpeed  = 0.15
	propBaseSpeed  = 0.05
	propPerThrust  = 0.03
	bladeRadiusX   = 12
	bladeRadiusY   = 2
	hubRadius      = 5
	ledRadius      = 2
	strobeLight    = 0.7
	obstacleLight  = 0.6
	dustStreakSize = 5
)

// Renderer draws a session onto a canvas. It reads the simulation state and
// never mutates it.
type Renderer struct {
	rng core.Rand // Strobe hues on the hardest difficulty
}

// NewRenderer creates a renderer drawing strobe hues from rng.
func NewRenderer(rng core.Rand) *Renderer {
	return &Renderer{rng: rng}
}

// Draw paints one frame. The surface is not cleared: a translucent overlay
// lets the previous frames show through as a motion trail. at drives the
// rotor animation.
func (r *Renderer) Draw(dst *canvas.Canvas, sim *Sim, at time.Time) {
	st := &sim.State

	dst.SetFillColor(colorFade)
	dst.FillRect(0, 0, sim.Cfg.Canvas.Width, sim.Cfg.Canvas.Height)

	r.drawDust(dst, st.Dust)

	strobe := sim.Cfg.Difficulty.IsHardest(st.Difficulty)
	for i := range st.Obstacles {
		r.drawObstacle(dst, &st.Obstacles[i], strobe)
	}

	r.drawDrone(dst, st, at)
}

func (r *Renderer) drawDust(dst *canvas.Canvas, dust []Dust) {
	for _, p := range dust {
		dst.SetStrokeColor(canvas.RGBA(0, 255, 0, p.Opacity))
		dst.SetLineWidth(p.Depth / 2)
		dst.BeginPath()
		dst.MoveTo(p.Pos.X, p.Pos.Y)
		dst.LineTo(p.Pos.X+p.Depth*dustStreakSize, p.Pos.Y)
		dst.Stroke()
	}
}

func (r *Renderer) drawObstacle(dst *canvas.Canvas, o *Obstacle, strobe bool) {
	clr := canvas.HSL(o.Hue, 1, obstacleLight)
	if strobe {
		clr = canvas.HSL(r.rng.Float64()*360, 1, strobeLight)
	}

	dst.Save()
	defer dst.Restore()

	dst.Translate(o.Pos.X, o.Pos.Y)
	dst.Rotate(o.Angle)
	dst.SetStrokeColor(clr)
	dst.SetFillColor(clr)
	dst.SetLineWidth(obstacleLineWidth)
	dst.SetGlow(obstacleGlow, clr)

	dst.BeginPath()
	tracePath(dst, o.Shape, o.Size/2)
	dst.Stroke()

	dst.SetGlow(0, clr)
	dst.SetAlpha(obstacleFillAlpha)
	dst.Fill()
}

func (r *Renderer) drawDrone(dst *canvas.Canvas, st *State, at time.Time) {
	d := st.Drone
	running := st.Running()

	tilt := 0.0
	propSpeed := propIdleSpeed
	if running {
		tilt = d.VY*tiltPerVY + st.Thrust*tiltPerPower
		propSpeed = propBaseSpeed + st.Thrust*propPerThrust
	}
	rotor := math.Mod(float64(at.UnixMilli())*propSpeed, 2*math.Pi)

	dst.Save()
	defer dst.Restore()

	dst.Translate(d.Pos.X, d.Pos.Y)
	dst.Rotate(tilt)

	// Frame arms
	dst.SetStrokeColor(colorFrame)
	dst.SetLineWidth(3)
	dst.SetGlow(obstacleGlow, colorFrame)
	dst.BeginPath()
	dst.MoveTo(-armReach, -armReach)
	dst.LineTo(armReach, armReach)
	dst.MoveTo(armReach, -armReach)
	dst.LineTo(-armReach, armReach)
	dst.Stroke()
	dst.SetGlow(0, colorFrame)

	for _, hub := range [4][2]float64{
		{-armReach, -armReach},
		{armReach, -armReach},
		{-armReach, armReach},
		{armReach, armReach},
	} {
		dst.SetFillColor(colorHub)
		dst.BeginPath()
		dst.Circle(hub[0], hub[1], hubRadius)
		dst.Fill()

		dst.SetStrokeColor(colorBlade)
		dst.SetLineWidth(2)
		dst.BeginPath()
		dst.Ellipse(hub[0], hub[1], bladeRadiusX, bladeRadiusY, rotor)
		dst.Stroke()
	}

	dst.SetFillColor(colorBody)
	dst.FillRect(-6, -10, 12, 20)
	dst.SetStrokeColor(colorBodyEdge)
	dst.SetLineWidth(2)
	dst.StrokeRect(-6, -10, 12, 20)

	dst.SetFillColor(colorLED)
	dst.BeginPath()
	dst.Circle(4, 0, ledRadius)
	dst.Fill()
}

// tracePath adds the outline of shape with half-extent s, centred on the
// origin, to the current path.
func tracePath(dst *canvas.Canvas, shape Shape, s float64) {
	switch shape {
	case ShapeRect:
		dst.Rect(-s, -s, 2*s, 2*s)
	case ShapeCircle:
		dst.Circle(0, 0, s)
	case ShapeTriangle:
		polygon(dst, [][2]float64{{0, -s}, {s, s}, {-s, s}})
	case ShapeHexagon:
		regular(dst, 6, s, 0)
	case ShapeOctagon:
		regular(dst, 8, s, math.Pi/8)
	case ShapeStar:
		pts := make([][2]float64, 10)
		for i := range pts {
			rad := s
			if i%2 == 1 {
				rad = s / 2.5
			}
			a := float64(i) * math.Pi / 5
			pts[i] = [2]float64{math.Cos(a) * rad, math.Sin(a) * rad}
		}
		polygon(dst, pts)
	case ShapeDiamond:
		polygon(dst, [][2]float64{{0, -1.2 * s}, {s, 0}, {0, 1.2 * s}, {-s, 0}})
	case ShapeRing:
		dst.Circle(0, 0, s)
		inner := 0.7 * s
		dst.MoveTo(inner, 0)
		dst.Arc(0, 0, inner, 2*math.Pi, 0, true)
		dst.ClosePath()
	case ShapePlus:
		polygon(dst, plusPoints(s, 0))
	case ShapeCross:
		polygon(dst, plusPoints(s, math.Pi/4))
	case ShapeArrow:
		polygon(dst, [][2]float64{
			{-s, -0.35 * s}, {0.1 * s, -0.35 * s}, {0.1 * s, -s},
			{s, 0},
			{0.1 * s, s}, {0.1 * s, 0.35 * s}, {-s, 0.35 * s},
		})
	case ShapeCapsule:
		h := s / 2
		dst.MoveTo(-h, -h)
		dst.LineTo(h, -h)
		dst.Arc(h, 0, h, -math.Pi/2, math.Pi/2, false)
		dst.LineTo(-h, h)
		dst.Arc(-h, 0, h, math.Pi/2, 3*math.Pi/2, false)
		dst.ClosePath()
	case ShapeZig:
		polygon(dst, [][2]float64{
			{-0.2 * s, -s}, {0.5 * s, -s}, {0.1 * s, -0.2 * s},
			{0.6 * s, -0.2 * s}, {-0.4 * s, s}, {-0.05 * s, 0.1 * s},
			{-0.55 * s, 0.1 * s},
		})
	default:
		dst.Rect(-s, -s, 2*s, 2*s)
	}
}

func polygon(dst *canvas.Canvas, pts [][2]float64) {
	for i, p := range pts {
		if i == 0 {
			dst.MoveTo(p[0], p[1])
			continue
		}
		dst.LineTo(p[0], p[1])
	}
	dst.ClosePath()
}

func regular(dst *canvas.Canvas, sides int, s, phase float64) {
	pts := make([][2]float64, sides)
	for i := range pts {
		a := phase + float64(i)*2*math.Pi/float64(sides)
		pts[i] = [2]float64{math.Cos(a) * s, math.Sin(a) * s}
	}
	polygon(dst, pts)
}

// plusPoints returns a twelve-point plus outline with arms a third as wide
// as they are long, rotated by rot.
func plusPoints(s, rot float64) [][2]float64 {
	w := s * 0.3
	raw := [][2]float64{
		{-w, -s}, {w, -s}, {w, -w}, {s, -w}, {s, w}, {w, w},
		{w, s}, {-w, s}, {-w, w}, {-s, w}, {-s, -w}, {-w, -w},
	}
	sin, cos := math.Sincos(rot)
	for i, p := range raw {
		raw[i] = [2]float64{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos}
	}
	return raw
}
