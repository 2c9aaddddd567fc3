package geometry

// RouteFreeform returns the corner points of a Manhattan route between two
// points. Aligned endpoints produce a single straight leg. Unaligned
// endpoints produce a two-leg elbow that always departs "a" horizontally, the
// deterministic tie-break used when no prior wiring context exists.
func RouteFreeform(a, b Point) []Point {
	if a.X == b.X || a.Y == b.Y {
		return []Point{a, b}
	}
	return []Point{a, {X: b.X, Y: a.Y}, b}
}

// RouteFromAnchor returns the corner points of a Manhattan route from a
// fixed anchor to a moving target, departing the anchor along incoming.
// Keeping the departure axis of the severed wire is what makes a dragged
// symbol's wires look pulled rather than re-elbowed at an arbitrary joint.
func RouteFromAnchor(fixed, target Point, incoming Axis) []Point {
	if fixed.X == target.X || fixed.Y == target.Y {
		return []Point{fixed, target}
	}
	if incoming == Horizontal {
		return []Point{fixed, {X: target.X, Y: fixed.Y}, target}
	}
	return []Point{fixed, {X: fixed.X, Y: target.Y}, target}
}
