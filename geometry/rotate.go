package geometry

// RotateQuarter rotates p about the origin by the given number of quarter
// turns. Turns are taken modulo 4, so any integer (including negatives) is
// accepted. A single turn maps (x, y) to (-y, x), which is clockwise in the
// screen coordinate convention where y grows downward. Pure integer
// arithmetic, so there is no rounding error to accumulate.
func RotateQuarter(p Point, turns int) Point {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return Point{X: -p.Y, Y: p.X}
	case 2:
		return Point{X: -p.X, Y: -p.Y}
	case 3:
		return Point{X: p.Y, Y: -p.X}
	default:
		return p
	}
}
