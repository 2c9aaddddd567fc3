package geometry

import "testing"

func pathsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRouteFreeform(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected []Point
	}{
		{
			name:     "Horizontal alignment gives single leg",
			a:        Point{X: 0, Y: 5},
			b:        Point{X: 10, Y: 5},
			expected: []Point{{X: 0, Y: 5}, {X: 10, Y: 5}},
		},
		{
			name:     "Vertical alignment gives single leg",
			a:        Point{X: 5, Y: 0},
			b:        Point{X: 5, Y: 10},
			expected: []Point{{X: 5, Y: 0}, {X: 5, Y: 10}},
		},
		{
			name:     "Unaligned elbows horizontal-first",
			a:        Point{X: 0, Y: 0},
			b:        Point{X: 5, Y: 5},
			expected: []Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}},
		},
		{
			name:     "Horizontal-first holds up-left too",
			a:        Point{X: 10, Y: 10},
			b:        Point{X: 3, Y: 2},
			expected: []Point{{X: 10, Y: 10}, {X: 3, Y: 10}, {X: 3, Y: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RouteFreeform(tt.a, tt.b)
			if !pathsEqual(got, tt.expected) {
				t.Errorf("RouteFreeform(%v, %v) = %v, want %v",
					tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestRouteFromAnchor(t *testing.T) {
	tests := []struct {
		name     string
		fixed    Point
		target   Point
		incoming Axis
		expected []Point
	}{
		{
			name:     "Horizontal departure preserved",
			fixed:    Point{X: 0, Y: 0},
			target:   Point{X: 30, Y: 40},
			incoming: Horizontal,
			expected: []Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 40}},
		},
		{
			name:     "Vertical departure preserved",
			fixed:    Point{X: 0, Y: 0},
			target:   Point{X: 30, Y: 40},
			incoming: Vertical,
			expected: []Point{{X: 0, Y: 0}, {X: 0, Y: 40}, {X: 30, Y: 40}},
		},
		{
			name:     "Aligned target short-circuits to one leg",
			fixed:    Point{X: 0, Y: 0},
			target:   Point{X: 30, Y: 0},
			incoming: Vertical,
			expected: []Point{{X: 0, Y: 0}, {X: 30, Y: 0}},
		},
		{
			name:     "Coincident target degenerates",
			fixed:    Point{X: 7, Y: 7},
			target:   Point{X: 7, Y: 7},
			incoming: Horizontal,
			expected: []Point{{X: 7, Y: 7}, {X: 7, Y: 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RouteFromAnchor(tt.fixed, tt.target, tt.incoming)
			if !pathsEqual(got, tt.expected) {
				t.Errorf("RouteFromAnchor(%v, %v, %v) = %v, want %v",
					tt.fixed, tt.target, tt.incoming, got, tt.expected)
			}
		})
	}
}
