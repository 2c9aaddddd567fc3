// Package geometry contains the fundamental spatial types used throughout
// the gridwire editor. All coordinates are integers in a shared grid-aligned
// space; equality is exact, never epsilon-based.
package geometry

// Point represents a 2D coordinate on the sheet.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the point translated by -d.
func (p Point) Sub(d Point) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

// Axis represents one of the two orthogonal wiring directions.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name for display.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Bounds represents a rectangular area.
type Bounds struct {
	Min, Max Point
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b Point) int {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}
