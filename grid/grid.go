// Package grid supplies the snapping and viewport-bounds collaborators the
// editor and the reroute session validate positions against.
package grid

import "gridwire/geometry"

// Grid snaps points to a fixed pitch and bounds them to a canvas area.
type Grid struct {
	pitch  int
	canvas geometry.Bounds
}

// New creates a grid with the given pitch and canvas bounds. A pitch
// below 1 is treated as 1.
func New(pitch int, canvas geometry.Bounds) *Grid {
	if pitch < 1 {
		pitch = 1
	}
	return &Grid{pitch: pitch, canvas: canvas}
}

// Pitch returns the grid spacing.
func (g *Grid) Pitch() int {
	return g.pitch
}

// Canvas returns the canvas bounds.
func (g *Grid) Canvas() geometry.Bounds {
	return g.canvas
}

// Snap rounds p to the nearest grid intersection. Rounding is half-up in
// both directions and exact for negative coordinates.
func (g *Grid) Snap(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: snapCoord(p.X, g.pitch),
		Y: snapCoord(p.Y, g.pitch),
	}
}

// InsideCanvas reports whether p lies within the canvas bounds.
func (g *Grid) InsideCanvas(p geometry.Point) bool {
	return g.canvas.Contains(p)
}

func snapCoord(v, pitch int) int {
	if pitch == 1 {
		return v
	}
	// Floor division keeps the rounding symmetric across zero.
	q := v + pitch/2
	if q < 0 {
		q -= pitch - 1
	}
	return (q / pitch) * pitch
}
