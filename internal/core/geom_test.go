package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if a.IsZero() || !V(0, 0).IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestAABBIntersects(t *testing.T) {
	box := func(cx, cy, hw, hh float64) AABB {
		return AABB{Center: V(cx, cy), Half: V(hw, hh)}
	}

	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"overlapping", box(0, 0, 1, 1), box(1.5, 0, 1, 1), true},
		{"separated horizontally", box(0, 0, 1, 1), box(3, 0, 1, 1), false},
		{"separated vertically", box(0, 0, 1, 1), box(0, 2.5, 1, 1), false},
		{"touching edges", box(0, 0, 1, 1), box(2, 0, 1, 1), false},
		{"contained", box(0, 0, 4, 4), box(1, 1, 0.5, 0.5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBOverlapDepth(t *testing.T) {
	a := AABB{Center: V(0, 0), Half: V(1, 1)}
	b := AABB{Center: V(1.5, 0.25), Half: V(1, 1)}

	dx, dy := a.Overlap(b)
	if math.Abs(dx-0.5) > 1e-9 || math.Abs(dy-1.75) > 1e-9 {
		t.Errorf("Overlap() = (%f, %f), expected (0.5, 1.75)", dx, dy)
	}
	if a.Min() != V(-1, -1) || a.Max() != V(1, 1) {
		t.Errorf("Min/Max = %v/%v", a.Min(), a.Max())
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
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
