package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
)

var green = color.NRGBA{G: 255, A: 255}

func TestAppendFillFans(t *testing.T) {
	square := canvas.Subpath{
		Points: []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed: true,
	}
	hole := canvas.Subpath{
		Points: []canvas.Point{{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 6}},
		Closed: true,
	}

	vs, is := appendFill(nil, nil, []canvas.Subpath{square, hole}, green)

	if len(vs) != 7 {
		t.Errorf("vertices = %d, want 7", len(vs))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6}
	if len(is) != len(want) {
		t.Fatalf("indices = %v, want %v", is, want)
	}
	for i := range want {
		if is[i] != want[i] {
			t.Fatalf("indices = %v, want %v", is, want)
		}
	}
	if vs[0].ColorG != 1 || vs[0].ColorA != 1 || vs[0].ColorR != 0 {
		t.Errorf("vertex color = (%v,%v,%v,%v)", vs[0].ColorR, vs[0].ColorG, vs[0].ColorB, vs[0].ColorA)
	}
}

func TestAppendFillSkipsDegenerate(t *testing.T) {
	line := canvas.Subpath{Points: []canvas.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}}
	vs, is := appendFill(nil, nil, []canvas.Subpath{line}, green)
	if len(vs) != 0 || len(is) != 0 {
		t.Errorf("two-point fill produced %d vertices, %d indices", len(vs), len(is))
	}
}

func TestAppendStrokeQuads(t *testing.T) {
	open := canvas.Subpath{Points: []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}

	vs, is := appendStroke(nil, nil, []canvas.Subpath{open}, 2, green)
	if len(vs) != 8 || len(is) != 12 {
		t.Fatalf("open stroke = %d vertices, %d indices; want 8, 12", len(vs), len(is))
	}

	// First segment runs along +x, so the quad spans y in [-1, 1] and
	// x in [-1, 11] with the square end caps.
	for _, v := range vs[:4] {
		if v.DstY < -1 || v.DstY > 1 || v.DstX < -1 || v.DstX > 11 {
			t.Errorf("vertex (%v, %v) outside the first segment's quad", v.DstX, v.DstY)
		}
	}

	closed := open
	closed.Closed = true
	vs, _ = appendStroke(nil, nil, []canvas.Subpath{closed}, 2, green)
	if len(vs) != 12 {
		t.Errorf("closed stroke = %d vertices, want 12", len(vs))
	}
}

func TestAppendStrokeSkipsZeroLength(t *testing.T) {
	dot := canvas.Subpath{Points: []canvas.Point{{X: 4, Y: 4}, {X: 4, Y: 4}}}
	vs, _ := appendStroke(nil, nil, []canvas.Subpath{dot}, 2, green)
	if len(vs) != 0 {
		t.Errorf("zero-length segment produced %d vertices", len(vs))
	}
}
