package canvas

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

const eps = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(800, 600)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%v, %v) error = %v, expected ErrInvalidSize", tc.w, tc.h, err)
			}
		})
	}
}

func TestTranslateRotate(t *testing.T) {
	c := newTestCanvas(t)
	c.Translate(100, 50)
	c.Rotate(math.Pi / 2)
	c.BeginPath()
	c.MoveTo(10, 0)
	c.LineTo(0, 10)
	c.Stroke()

	cmds := c.Commands()
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	pts := cmds[0].Subpaths[0].Points

	// (10,0) rotated 90° clockwise on screen lands on (0,10), then translated.
	if !near(pts[0].X, 100) || !near(pts[0].Y, 60) {
		t.Errorf("first point = %+v, expected (100, 60)", pts[0])
	}
	if !near(pts[1].X, 90) || !near(pts[1].Y, 50) {
		t.Errorf("second point = %+v, expected (90, 50)", pts[1])
	}
}

func TestSaveRestore(t *testing.T) {
	c := newTestCanvas(t)
	c.SetLineWidth(3)
	c.Save()
	c.Translate(10, 10)
	c.SetLineWidth(7)
	c.Restore()

	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(1, 0)
	c.Stroke()

	cmd := c.Commands()[0]
	if cmd.Width != 3 {
		t.Errorf("line width after Restore = %v, expected 3", cmd.Width)
	}
	if p := cmd.Subpaths[0].Points[0]; !near(p.X, 0) || !near(p.Y, 0) {
		t.Errorf("transform after Restore should be identity, got %+v", p)
	}

	// Unbalanced restore is ignored
	c.Restore()
}

func TestAlphaMultipliesColor(t *testing.T) {
	c := newTestCanvas(t)
	c.SetFillColor(color.NRGBA{R: 255, A: 255})
	c.SetAlpha(0.1)
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	c.Fill()

	got := c.Commands()[0].Color
	if got.R != 255 || got.A != 26 {
		t.Errorf("fill color = %+v, expected R=255 A=26", got)
	}
}

func TestFillRectKeepsPath(t *testing.T) {
	c := newTestCanvas(t)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(5, 5)
	c.FillRect(0, 0, 800, 600)
	c.Stroke()

	cmds := c.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Op != OpFill || cmds[1].Op != OpStroke {
		t.Error("expected fill then stroke")
	}
	minX, minY, maxX, maxY := cmds[0].Bounds()
	if minX != 0 || minY != 0 || maxX != 800 || maxY != 600 {
		t.Errorf("FillRect bounds = (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
	if len(cmds[1].Subpaths[0].Points) != 2 {
		t.Error("current path should survive FillRect")
	}
}

func TestLineToWithoutMoveTo(t *testing.T) {
	c := newTestCanvas(t)
	c.BeginPath()
	for j := 0; j < 6; j++ {
		a := float64(j) * math.Pi / 3
		c.LineTo(math.Cos(a)*10, math.Sin(a)*10)
	}
	c.ClosePath()
	c.Stroke()

	sp := c.Commands()[0].Subpaths
	if len(sp) != 1 {
		t.Fatalf("hexagon should be a single subpath, got %d", len(sp))
	}
	if len(sp[0].Points) != 6 || !sp[0].Closed {
		t.Errorf("hexagon subpath = %d points, closed=%v", len(sp[0].Points), sp[0].Closed)
	}
}

func TestCircleTessellation(t *testing.T) {
	c := newTestCanvas(t)
	c.BeginPath()
	c.Circle(100, 100, 20)
	c.Stroke()

	sp := c.Commands()[0].Subpaths[0]
	if !sp.Closed {
		t.Error("circle should be closed")
	}
	for _, p := range sp.Points {
		if d := math.Hypot(p.X-100, p.Y-100); !near(d, 20) {
			t.Fatalf("circle point %+v at distance %v, expected 20", p, d)
		}
	}
}

func TestArcDirection(t *testing.T) {
	c := newTestCanvas(t)
	c.BeginPath()
	c.MoveTo(10, 0)
	c.Arc(0, 0, 10, 0, math.Pi/2, true) // counter-clockwise the long way round
	c.Stroke()

	pts := c.Commands()[0].Subpaths[0].Points
	// Second arc sample must head toward negative y (counter-clockwise on screen).
	if pts[2].Y >= 0 {
		t.Errorf("ccw arc should sweep through negative y first, got %+v", pts[2])
	}
	last := pts[len(pts)-1]
	if !near(last.X, 0) || !near(last.Y, 10) {
		t.Errorf("arc should end at (0, 10), got %+v", last)
	}
}

func TestEmptyPathEmitsNothing(t *testing.T) {
	c := newTestCanvas(t)
	c.BeginPath()
	c.Stroke()
	c.Fill()
	if len(c.Commands()) != 0 {
		t.Errorf("empty path should not record commands, got %d", len(c.Commands()))
	}
}

func TestReset(t *testing.T) {
	c := newTestCanvas(t)
	c.Translate(5, 5)
	c.FillRect(0, 0, 1, 1)
	c.Save()
	c.Reset()

	if len(c.Commands()) != 0 {
		t.Error("Reset should drop commands")
	}
	c.FillRect(0, 0, 1, 1)
	if p := c.Commands()[0].Subpaths[0].Points[0]; !near(p.X, 0) {
		t.Errorf("Reset should restore identity transform, got %+v", p)
	}
}

func TestColorHelpers(t *testing.T) {
	if got := HSL(120, 1, 0.5); got.G != 255 || got.R != 0 || got.B != 0 {
		t.Errorf("HSL(120,1,.5) = %+v, expected pure green", got)
	}
	if got := HSL(480, 1, 0.5); got != HSL(120, 1, 0.5) {
		t.Errorf("hue should wrap at 360, got %+v", got)
	}
	if got := MustHex("#00ffcc"); got != (color.NRGBA{R: 0, G: 255, B: 204, A: 255}) {
		t.Errorf("MustHex = %+v", got)
	}
	if got := RGBA(2, 6, 23, 0.4); got.A != 102 {
		t.Errorf("RGBA alpha = %d, expected 102", got.A)
	}
}
