package grid

import (
	"testing"

	"gridwire/geometry"
)

func TestSnap(t *testing.T) {
	g := New(5, geometry.Bounds{Max: geometry.Point{X: 100, Y: 100}})

	tests := []struct {
		in       geometry.Point
		expected geometry.Point
	}{
		{geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 0}},
		{geometry.Point{X: 2, Y: 3}, geometry.Point{X: 0, Y: 5}},
		{geometry.Point{X: 7, Y: 8}, geometry.Point{X: 5, Y: 10}},
		{geometry.Point{X: -2, Y: -3}, geometry.Point{X: 0, Y: -5}},
		{geometry.Point{X: -7, Y: -8}, geometry.Point{X: -5, Y: -10}},
	}

	for _, tt := range tests {
		if got := g.Snap(tt.in); got != tt.expected {
			t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestSnap_UnitPitchIsIdentity(t *testing.T) {
	g := New(1, geometry.Bounds{Max: geometry.Point{X: 10, Y: 10}})
	p := geometry.Point{X: 7, Y: -3}
	if got := g.Snap(p); got != p {
		t.Errorf("Snap(%v) = %v, want identity at pitch 1", p, got)
	}
}

func TestInsideCanvas(t *testing.T) {
	g := New(1, geometry.Bounds{
		Min: geometry.Point{X: 0, Y: 0},
		Max: geometry.Point{X: 20, Y: 10},
	})

	tests := []struct {
		p        geometry.Point
		expected bool
	}{
		{geometry.Point{X: 0, Y: 0}, true},
		{geometry.Point{X: 19, Y: 9}, true},
		{geometry.Point{X: 20, Y: 9}, false},
		{geometry.Point{X: 19, Y: 10}, false},
		{geometry.Point{X: -1, Y: 5}, false},
	}

	for _, tt := range tests {
		if got := g.InsideCanvas(tt.p); got != tt.expected {
			t.Errorf("InsideCanvas(%v) = %v, want %v", tt.p, got, tt.expected)
		}
	}
}
