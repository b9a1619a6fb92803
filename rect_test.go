package kdtree

import (
	"errors"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		r1, r2   Rect
		expected bool
	}{
		{"overlapping", Rect{2, 2, 6, 6}, Rect{4, 4, 10, 10}, true},
		{"inside", Rect{2, 2, 10, 10}, Rect{4, 4, 6, 6}, true},
		{"touching_edge", Rect{0, 0, 0.5, 1}, Rect{0.5, 0, 1, 1}, true},
		{"touching_corner", Rect{0, 0, 1, 1}, Rect{1, 1, 2, 2}, true},
		{"disjoint", Rect{5, 5, 8, 8}, Rect{2, 10, 6, 12}, false},
		{"degenerate", Rect{0.5, 0, 0.5, 1}, Rect{0, 0.5, 1, 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r1.Intersects(tt.r2); got != tt.expected {
				t.Errorf("%v intersects %v: got %t want %t", tt.r1, tt.r2, got, tt.expected)
			}
			if got := tt.r2.Intersects(tt.r1); got != tt.expected {
				t.Errorf("%v intersects %v: got %t want %t", tt.r2, tt.r1, got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0.2, 0.3, 0.6, 0.8}
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0.4, 0.5}, true},
		{Point{0.2, 0.3}, true},
		{Point{0.6, 0.8}, true},
		{Point{0.2, 0.5}, true},
		{Point{0.1, 0.5}, false},
		{Point{0.4, 0.81}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.expected {
			t.Errorf("%v contains %v: got %t want %t", r, tt.p, got, tt.expected)
		}
	}
}

func TestRectDistanceSquaredTo(t *testing.T) {
	r := Rect{1, 1, 3, 2}
	tests := []struct {
		p        Point
		expected float64
	}{
		{Point{2, 1.5}, 0},
		{Point{1, 1}, 0},
		{Point{0, 1.5}, 1},
		{Point{5, 1.5}, 4},
		{Point{2, 4}, 4},
		{Point{0, 0}, 2},
		{Point{4, 4}, 5},
	}
	for _, tt := range tests {
		if got := r.DistanceSquaredTo(tt.p); got != tt.expected {
			t.Errorf("distance from %v to %v: got %v want %v", tt.p, r, got, tt.expected)
		}
	}
}

func TestRectSplit(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	low, high := r.split(Point{0.3, 0.6}, Vertical)
	if low != (Rect{0, 0, 0.3, 1}) || high != (Rect{0.3, 0, 1, 1}) {
		t.Errorf("vertical split: got %v and %v", low, high)
	}
	low, high = r.split(Point{0.3, 0.6}, Horizontal)
	if low != (Rect{0, 0, 1, 0.6}) || high != (Rect{0, 0.6, 1, 1}) {
		t.Errorf("horizontal split: got %v and %v", low, high)
	}
}

func TestNewRect(t *testing.T) {
	if _, err := NewRect(0, 0, 1, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewRect(0.5, 0.5, 0.5, 0.5); err != nil {
		t.Errorf("unexpected error for a degenerate rectangle: %v", err)
	}
	for _, c := range [][4]float64{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{math.NaN(), 0, 1, 1},
	} {
		if _, err := NewRect(c[0], c[1], c[2], c[3]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewRect%v: got %v, want invalid argument", c, err)
		}
	}
}

func TestAxisOpposite(t *testing.T) {
	if Vertical.Opposite() != Horizontal || Horizontal.Opposite() != Vertical {
		t.Errorf("opposite axes are wrong")
	}
}
