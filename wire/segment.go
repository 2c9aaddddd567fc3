// Package wire maintains the canonical representation of an orthogonal
// wire network: an arbitrary, possibly overlapping set of axis-aligned
// segments is reduced to the unique minimal decomposition consistent with
// a set of mandatory junction points.
package wire

import (
	"fmt"

	"gridwire/geometry"
)

// Segment is an axis-aligned wire span between two distinct points.
// Segments are value-like: the endpoints never mutate, and the ID is
// reassigned on every canonicalization pass. Holding an ID across a
// Normalize call is a caller bug.
type Segment struct {
	ID string
	A  geometry.Point
	B  geometry.Point
}

// Axis returns the segment's orientation. Only meaningful for segments
// that satisfy the axis-aligned invariant; diagonal pairs are rejected
// before a Segment is ever built.
func (s Segment) Axis() geometry.Axis {
	if s.A.Y == s.B.Y {
		return geometry.Horizontal
	}
	return geometry.Vertical
}

// Contains reports whether p lies on the segment, endpoints included.
func (s Segment) Contains(p geometry.Point) bool {
	if s.Axis() == geometry.Horizontal {
		return p.Y == s.A.Y &&
			p.X >= geometry.Min(s.A.X, s.B.X) &&
			p.X <= geometry.Max(s.A.X, s.B.X)
	}
	return p.X == s.A.X &&
		p.Y >= geometry.Min(s.A.Y, s.B.Y) &&
		p.Y <= geometry.Max(s.A.Y, s.B.Y)
}

// HasEndpoint reports whether p coincides exactly with either endpoint.
func (s Segment) HasEndpoint(p geometry.Point) bool {
	return s.A == p || s.B == p
}

// Other returns the endpoint opposite p. The second return is false when
// p is not an endpoint of the segment.
func (s Segment) Other(p geometry.Point) (geometry.Point, bool) {
	switch p {
	case s.A:
		return s.B, true
	case s.B:
		return s.A, true
	}
	return geometry.Point{}, false
}

// GeometryError reports a contract violation: a caller handed the
// canonicalizer a segment whose endpoints differ on both axes. Upstream
// drawing logic must never produce diagonal wires, so this fails fast
// rather than coercing the data.
type GeometryError struct {
	A, B geometry.Point
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("wire: segment (%d,%d)-(%d,%d) is not axis-aligned",
		e.A.X, e.A.Y, e.B.X, e.B.Y)
}
