// Package schematic owns the editable sheet: the canonical wire set plus
// the symbols placed on it. The wire network itself is maintained by the
// wire package; this package supplies the component model (ports, symbol
// placement) and the port splicer that removes wire spans made redundant
// by a two-terminal component body.
package schematic

import "gridwire/geometry"

// Kind names a symbol's schematic role. The engine never interprets the
// kind beyond its port layout; it exists for rendering.
type Kind string

const (
	KindResistor  Kind = "resistor"
	KindCapacitor Kind = "capacitor"
	KindInductor  Kind = "inductor"
	KindGround    Kind = "ground"
)

// portOffsets gives each kind's port positions relative to the symbol
// origin at rotation 0. Ground is deliberately single-ported: the splicer
// must skip it by contract.
var portOffsets = map[Kind][]geometry.Point{
	KindResistor:  {{X: -2, Y: 0}, {X: 2, Y: 0}},
	KindCapacitor: {{X: -2, Y: 0}, {X: 2, Y: 0}},
	KindInductor:  {{X: -2, Y: 0}, {X: 2, Y: 0}},
	KindGround:    {{X: 0, Y: -1}},
}

// Symbol is a placed component instance. Position and Rotation are the
// only mutable fields; port world positions are always derived, never
// stored.
type Symbol struct {
	ID       string
	Kind     Kind
	Position geometry.Point
	Rotation int // quarter turns, kept in 0..3
}

// Ports returns the symbol's port positions in world space, applying the
// current rotation about the symbol origin.
func (s *Symbol) Ports() []geometry.Point {
	offsets := portOffsets[s.Kind]
	ports := make([]geometry.Point, len(offsets))
	for i, off := range offsets {
		ports[i] = s.Position.Add(geometry.RotateQuarter(off, s.Rotation))
	}
	return ports
}

// Rotate turns the symbol by the given number of quarter turns.
func (s *Symbol) Rotate(turns int) {
	s.Rotation = ((s.Rotation+turns)%4 + 4) % 4
}

// Bounds returns the symbol's occupied area: the bounding box of its
// origin and ports, used for hit testing and rendering.
func (s *Symbol) Bounds() geometry.Bounds {
	b := geometry.Bounds{Min: s.Position, Max: s.Position.Add(geometry.Point{X: 1, Y: 1})}
	for _, p := range s.Ports() {
		b.Min.X = geometry.Min(b.Min.X, p.X)
		b.Min.Y = geometry.Min(b.Min.Y, p.Y)
		b.Max.X = geometry.Max(b.Max.X, p.X+1)
		b.Max.Y = geometry.Max(b.Max.Y, p.Y+1)
	}
	return b
}

// Contains reports whether p falls inside the symbol's occupied area.
func (s *Symbol) Contains(p geometry.Point) bool {
	return s.Bounds().Contains(p)
}
