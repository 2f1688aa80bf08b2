// Package canvas is a retained 2D drawing surface modelled on an immediate-mode
// path API (save/restore, translate/rotate, paths, stroke/fill).
//
// Drawing calls are flattened into device-space polygons and recorded as a
// display list. Frontends replay the list onto their real target: the window
// frontend turns it into ebiten vector paths, the terminal frontend projects it
// onto character cells. Game renderers only ever see *Canvas, which keeps them
// free of platform dependencies and easy to inspect in tests.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidSize is returned when a canvas is created with a non-positive size.
var ErrInvalidSize = errors.New("canvas: invalid size")

// Point is a device-space coordinate.
type Point struct {
	X, Y float64
}

// Subpath is a connected run of points.
type Subpath struct {
	Points []Point
	Closed bool
}

// Op is the kind of paint operation a command performs.
type Op int

const (
	OpFill Op = iota
	OpStroke
)

// Command is one recorded paint operation in device space.
type Command struct {
	Op       Op
	Subpaths []Subpath
	Color    color.NRGBA // Alpha already includes the global alpha
	Width    float64     // Stroke width in device pixels
	Glow     float64     // Glow radius, 0 for none
	GlowTint color.NRGBA
}

// Bounds returns the bounding box of every point in the command.
func (c Command) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, sp := range c.Subpaths {
		for _, p := range sp.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// drawState is the part of the canvas that Save/Restore snapshots.
type drawState struct {
	m         matrix
	stroke    color.NRGBA
	fill      color.NRGBA
	lineWidth float64
	alpha     float64
	glow      float64
	glowTint  color.NRGBA
}

func defaultState() drawState {
	return drawState{
		m:         identity(),
		stroke:    color.NRGBA{A: 255},
		fill:      color.NRGBA{A: 255},
		lineWidth: 1,
		alpha:     1,
	}
}

// Canvas records drawing operations for a fixed-size raster target.
type Canvas struct {
	width  float64
	height float64
	state  drawState
	stack  []drawState
	path   []Subpath
	cmds   []Command
}

// New creates a canvas of the given size in pixels.
func New(width, height float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		state:  defaultState(),
		cmds:   make([]Command, 0, 256),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() float64 {
	return c.height
}

// Reset discards recorded commands, the current path and all saved state.
func (c *Canvas) Reset() {
	c.state = defaultState()
	c.stack = c.stack[:0]
	c.path = nil
	c.cmds = c.cmds[:0]
}

// Commands returns the recorded display list in paint order.
func (c *Canvas) Commands() []Command {
	return c.cmds
}

// Save pushes the current transform and style.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved transform and style.
// Restore without a matching Save is ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (x, y) in the current coordinate system.
func (c *Canvas) Translate(x, y float64) {
	c.state.m = c.state.m.translate(x, y)
}

// Rotate rotates the coordinate system clockwise by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.state.m = c.state.m.rotate(angle)
}

// SetStrokeColor sets the color used by Stroke and StrokeRect.
func (c *Canvas) SetStrokeColor(clr color.Color) {
	c.state.stroke = toNRGBA(clr)
}

// SetFillColor sets the color used by Fill and FillRect.
func (c *Canvas) SetFillColor(clr color.Color) {
	c.state.fill = toNRGBA(clr)
}

// SetLineWidth sets the stroke width in user units.
func (c *Canvas) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

// SetAlpha sets the global alpha multiplied into every paint.
func (c *Canvas) SetAlpha(a float64) {
	c.state.alpha = math.Max(0, math.Min(1, a))
}

// SetGlow sets a soft glow of the given radius around painted shapes.
// A radius of 0 disables it.
func (c *Canvas) SetGlow(radius float64, tint color.Color) {
	c.state.glow = radius
	c.state.glowTint = toNRGBA(tint)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = nil
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, Subpath{Points: []Point{c.state.m.apply(x, y)}})
}

// LineTo adds a straight segment to (x, y).
// With no current subpath it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.Points = append(sp.Points, c.state.m.apply(x, y))
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].Closed = true
}

// Arc adds a circular arc centred on (cx, cy). Angles are in radians; ccw
// selects the counter-clockwise direction. A sweep of 2π or more draws the
// full circle. The arc joins the current subpath with a straight segment.
func (c *Canvas) Arc(cx, cy, r, start, end float64, ccw bool) {
	sweep := end - start
	switch {
	case ccw && sweep > 0:
		sweep -= 2 * math.Pi
	case !ccw && sweep < 0:
		sweep += 2 * math.Pi
	}
	sweep = math.Max(-2*math.Pi, math.Min(2*math.Pi, sweep))

	n := arcSegments(r*c.state.m.scale(), sweep)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		c.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// Circle adds a closed full circle as its own subpath.
func (c *Canvas) Circle(cx, cy, r float64) {
	c.MoveTo(cx+r, cy)
	c.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.ClosePath()
}

// Ellipse adds a closed axis-aligned ellipse (before rotation) as its own subpath.
func (c *Canvas) Ellipse(cx, cy, rx, ry, rotation float64) {
	n := arcSegments(math.Max(rx, ry)*c.state.m.scale(), 2*math.Pi)
	cos, sin := math.Cos(rotation), math.Sin(rotation)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		x := cx + ex*cos - ey*sin
		y := cy + ex*sin + ey*cos
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}

// Rect adds a closed rectangle as its own subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// Stroke records the outline of the current path.
func (c *Canvas) Stroke() {
	c.emit(OpStroke, c.path)
}

// Fill records the interior of the current path.
func (c *Canvas) Fill() {
	c.emit(OpFill, c.path)
}

// FillRect fills a rectangle without touching the current path.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.emit(OpFill, []Subpath{c.rectPath(x, y, w, h)})
}

// StrokeRect outlines a rectangle without touching the current path.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.emit(OpStroke, []Subpath{c.rectPath(x, y, w, h)})
}

func (c *Canvas) rectPath(x, y, w, h float64) Subpath {
	m := c.state.m
	return Subpath{
		Points: []Point{m.apply(x, y), m.apply(x+w, y), m.apply(x+w, y+h), m.apply(x, y+h)},
		Closed: true,
	}
}

func (c *Canvas) emit(op Op, path []Subpath) {
	if len(path) == 0 {
		return
	}

	clr := c.state.fill
	if op == OpStroke {
		clr = c.state.stroke
	}
	clr.A = uint8(math.Round(float64(clr.A) * c.state.alpha))

	subpaths := make([]Subpath, len(path))
	for i, sp := range path {
		subpaths[i] = Subpath{
			Points: append([]Point(nil), sp.Points...),
			Closed: sp.Closed,
		}
	}

	c.cmds = append(c.cmds, Command{
		Op:       op,
		Subpaths: subpaths,
		Color:    clr,
		Width:    c.state.lineWidth * c.state.m.scale(),
		Glow:     c.state.glow,
		GlowTint: c.state.glowTint,
	})
}

// arcSegments picks a tessellation density for an arc of device radius r.
func arcSegments(r, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * math.Abs(r) / 4))
	if n < 8 {
		n = 8
	}
	if n > 96 {
		n = 96
	}
	return n
}

func toNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}
