package core

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative coords", Vec2{-1, -1}, Vec2{2, 3}, 5},
		{"horizontal", Vec2{150, 300}, Vec2{-250, 300}, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dist(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %f, expected %f", got, tc.expected)
			}
			if got := Dist(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{40, 40, 560, 40},
		{7, 9, 8, 9}, // inverted bounds: lower bound wins
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(150, 150, 0.05); got != 150 {
		t.Errorf("Lerp at target should stay, got %f", got)
	}
	if got := Lerp(100, 200, 0.05); math.Abs(got-105) > 1e-9 {
		t.Errorf("Lerp(100, 200, 0.05) = %f, expected 105", got)
	}
}
