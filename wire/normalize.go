package wire

import (
	"sort"

	"gridwire/geometry"
	"gridwire/idgen"
)

// Key identifies a segment by pure geometry: orientation, the constant
// coordinate of its line, and the min/max of the varying coordinate.
// Two segments with equal Keys occupy exactly the same span regardless
// of endpoint order or id.
type Key struct {
	Axis   geometry.Axis
	Coord  int
	Lo, Hi int
}

// Key returns the geometric identity of the segment.
func (s Segment) Key() Key {
	if s.Axis() == geometry.Horizontal {
		return Key{
			Axis:  geometry.Horizontal,
			Coord: s.A.Y,
			Lo:    geometry.Min(s.A.X, s.B.X),
			Hi:    geometry.Max(s.A.X, s.B.X),
		}
	}
	return Key{
		Axis:  geometry.Vertical,
		Coord: s.A.X,
		Lo:    geometry.Min(s.A.Y, s.B.Y),
		Hi:    geometry.Max(s.A.Y, s.B.Y),
	}
}

// run is a maximal straight span on one line, produced by merging
// overlapping or end-touching segments. Runs exist only within a single
// Normalize pass; they are never stored.
type run struct {
	axis   geometry.Axis
	coord  int // y for horizontal runs, x for vertical runs
	lo, hi int // span of the varying coordinate
}

func (r run) endpoints() (geometry.Point, geometry.Point) {
	if r.axis == geometry.Horizontal {
		return geometry.Point{X: r.lo, Y: r.coord}, geometry.Point{X: r.hi, Y: r.coord}
	}
	return geometry.Point{X: r.coord, Y: r.lo}, geometry.Point{X: r.coord, Y: r.hi}
}

// contains reports whether p lies on the run, endpoints included.
func (r run) contains(p geometry.Point) bool {
	if r.axis == geometry.Horizontal {
		return p.Y == r.coord && p.X >= r.lo && p.X <= r.hi
	}
	return p.X == r.coord && p.Y >= r.lo && p.Y <= r.hi
}

// varying returns the coordinate of p that varies along the run.
func (r run) varying(p geometry.Point) int {
	if r.axis == geometry.Horizontal {
		return p.X
	}
	return p.Y
}

type lineKey struct {
	axis  geometry.Axis
	coord int
}

type span struct {
	lo, hi int
}

// Normalize converts an arbitrary set of axis-aligned segments into the
// unique minimal decomposition consistent with the mandatory junction
// points in extra. Every junction becomes a shared vertex of the segments
// touching it, no two output segments partially overlap, and every
// surviving segment receives a fresh id from ids. Re-running Normalize on
// its own output with the same extra points is a no-op up to identity.
//
// A non-axis-aligned input segment is a caller contract violation and
// returns a *GeometryError.
func Normalize(segs []Segment, extra []geometry.Point, ids idgen.Generator) ([]Segment, error) {
	// Validate, orient, and bucket by line. Zero-length pairs are dropped
	// here so no later stage sees them.
	lines := make(map[lineKey][]span)
	for _, s := range segs {
		if s.A.X != s.B.X && s.A.Y != s.B.Y {
			return nil, &GeometryError{A: s.A, B: s.B}
		}
		if s.A == s.B {
			continue
		}
		k := s.Key()
		lines[lineKey{axis: k.Axis, coord: k.Coord}] = append(
			lines[lineKey{axis: k.Axis, coord: k.Coord}], span{lo: k.Lo, hi: k.Hi})
	}

	// Merge each line's spans into maximal runs: classic interval merge,
	// treating end-touching spans as one electrical run.
	var runs []run
	for key, spans := range lines {
		sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
		cur := spans[0]
		for _, sp := range spans[1:] {
			if sp.lo <= cur.hi {
				cur.hi = geometry.Max(cur.hi, sp.hi)
				continue
			}
			runs = append(runs, run{axis: key.axis, coord: key.coord, lo: cur.lo, hi: cur.hi})
			cur = sp
		}
		runs = append(runs, run{axis: key.axis, coord: key.coord, lo: cur.lo, hi: cur.hi})
	}

	// Map iteration above is unordered; sort runs so segment emission
	// (and therefore id assignment) is deterministic.
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].axis != runs[j].axis {
			return runs[i].axis < runs[j].axis
		}
		if runs[i].coord != runs[j].coord {
			return runs[i].coord < runs[j].coord
		}
		return runs[i].lo < runs[j].lo
	})

	// Collect the junction set: run endpoints, the caller's mandatory
	// points, and every perpendicular crossing of two runs. The set is
	// complete after this single pass — splitting never generates new
	// geometric points, so no fixpoint iteration is needed.
	junctions := make(map[geometry.Point]struct{})
	for _, r := range runs {
		a, b := r.endpoints()
		junctions[a] = struct{}{}
		junctions[b] = struct{}{}
	}
	for _, p := range extra {
		junctions[p] = struct{}{}
	}
	for _, v := range runs {
		if v.axis != geometry.Vertical {
			continue
		}
		for _, h := range runs {
			if h.axis != geometry.Horizontal {
				continue
			}
			if v.coord >= h.lo && v.coord <= h.hi && h.coord >= v.lo && h.coord <= v.hi {
				junctions[geometry.Point{X: v.coord, Y: h.coord}] = struct{}{}
			}
		}
	}

	// Split every run at the junctions lying on it. Because the junction
	// set is global, a point that lands mid-span on an unrelated run (a
	// T-junction) splits that run too.
	var out []Segment
	seen := make(map[Key]struct{})
	for _, r := range runs {
		cuts := []int{r.lo, r.hi}
		for p := range junctions {
			if r.contains(p) {
				cuts = append(cuts, r.varying(p))
			}
		}
		sort.Ints(cuts)
		prev := cuts[0]
		for _, c := range cuts[1:] {
			if c == prev {
				continue
			}
			var seg Segment
			if r.axis == geometry.Horizontal {
				seg = Segment{
					A: geometry.Point{X: prev, Y: r.coord},
					B: geometry.Point{X: c, Y: r.coord},
				}
			} else {
				seg = Segment{
					A: geometry.Point{X: r.coord, Y: prev},
					B: geometry.Point{X: r.coord, Y: c},
				}
			}
			if _, dup := seen[seg.Key()]; !dup {
				seen[seg.Key()] = struct{}{}
				seg.ID = ids()
				out = append(out, seg)
			}
			prev = c
		}
	}

	return out, nil
}
