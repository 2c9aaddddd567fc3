package schematic

import (
	"gridwire/geometry"
	"gridwire/idgen"
	"gridwire/wire"
)

// Ported is the capability the splicer needs from a component: its current
// port positions in world space. It deliberately knows nothing else about
// the component model, so any port-bearing value can be spliced against.
type Ported interface {
	Ports() []geometry.Point
}

// SpliceComponents canonicalizes the wire set with every two-port
// component's ports as mandatory junctions, then deletes the wire span
// directly between each such port pair where doing so cannot disconnect
// anything else. Components with 0, 1, or 3+ ports are skipped by
// contract, not as an error.
//
// A span is only deleted when the pair is axis-aligned and no segment
// endpoint other than the two ports lies strictly between them on that
// line — a foreign endpoint there means a T-junction or crossing shares
// the line, and deleting would silently sever it.
func SpliceComponents(segs []wire.Segment, comps []Ported, ids idgen.Generator) ([]wire.Segment, error) {
	var pairs [][2]geometry.Point
	var extra []geometry.Point
	for _, c := range comps {
		ports := c.Ports()
		if len(ports) != 2 {
			continue
		}
		pairs = append(pairs, [2]geometry.Point{ports[0], ports[1]})
		extra = append(extra, ports[0], ports[1])
	}

	// Cut the network at every port first, so the spans between port
	// pairs are whole segments even when no deletion follows.
	out, err := wire.Normalize(segs, extra, ids)
	if err != nil {
		return nil, err
	}

	for _, pr := range pairs {
		out = spliceSpan(out, pr[0], pr[1])
	}
	return out, nil
}

// spliceSpan removes every segment lying entirely within the closed
// interval between ports p and q, or returns segs unchanged when deletion
// would be unsafe.
func spliceSpan(segs []wire.Segment, p, q geometry.Point) []wire.Segment {
	if p == q || (p.X != q.X && p.Y != q.Y) {
		return segs
	}

	axis := geometry.Horizontal
	coord := p.Y
	lo, hi := geometry.Min(p.X, q.X), geometry.Max(p.X, q.X)
	if p.X == q.X {
		axis = geometry.Vertical
		coord = p.X
		lo, hi = geometry.Min(p.Y, q.Y), geometry.Max(p.Y, q.Y)
	}

	between := func(e geometry.Point) bool {
		if axis == geometry.Horizontal {
			return e.Y == coord && e.X > lo && e.X < hi
		}
		return e.X == coord && e.Y > lo && e.Y < hi
	}

	// Abort if any foreign endpoint sits in the open interval.
	for _, s := range segs {
		for _, e := range [2]geometry.Point{s.A, s.B} {
			if e == p || e == q {
				continue
			}
			if between(e) {
				return segs
			}
		}
	}

	kept := segs[:0]
	for _, s := range segs {
		k := s.Key()
		if k.Axis == axis && k.Coord == coord && k.Lo >= lo && k.Hi <= hi {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
