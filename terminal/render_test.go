package terminal

import (
	"testing"

	"gridwire/geometry"
	"gridwire/wire"
)

func seg(ax, ay, bx, by int) wire.Segment {
	return wire.Segment{A: geometry.Point{X: ax, Y: ay}, B: geometry.Point{X: bx, Y: by}}
}

func TestConnectivity_JunctionGlyphs(t *testing.T) {
	segs := []wire.Segment{
		seg(0, 5, 10, 5),
		seg(5, 0, 5, 5),  // T from above
		seg(5, 5, 5, 10), // and through: makes a full cross
	}
	cells := make(map[geometry.Point]int)
	connectivity(segs, cells)

	tests := []struct {
		p        geometry.Point
		expected rune
	}{
		{geometry.Point{X: 0, Y: 5}, '─'},  // run start stub
		{geometry.Point{X: 3, Y: 5}, '─'},  // interior
		{geometry.Point{X: 5, Y: 5}, '┼'},  // crossing
		{geometry.Point{X: 5, Y: 2}, '│'},  // vertical interior
		{geometry.Point{X: 10, Y: 5}, '─'}, // run end stub
	}

	for _, tt := range tests {
		bits := cells[tt.p]
		got, ok := wireGlyphs[bits]
		if !ok {
			t.Errorf("no glyph for mask %04b at %v", bits, tt.p)
			continue
		}
		if got != tt.expected {
			t.Errorf("glyph at %v = %q, want %q", tt.p, got, tt.expected)
		}
	}
}

func TestConnectivity_CornerGlyph(t *testing.T) {
	segs := []wire.Segment{
		seg(0, 0, 5, 0),
		seg(5, 0, 5, 5),
	}
	cells := make(map[geometry.Point]int)
	connectivity(segs, cells)

	if got := wireGlyphs[cells[geometry.Point{X: 5, Y: 0}]]; got != '┐' {
		t.Errorf("corner glyph = %q, want %q", got, '┐')
	}
}
