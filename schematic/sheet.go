package schematic

import (
	"gridwire/geometry"
	"gridwire/idgen"
	"gridwire/wire"
)

// Sheet is the single source of truth for an editing session: the
// canonical wire list plus every placed symbol. The wire list is only ever
// replaced wholesale by canonicalization passes; callers must not hold
// wire ids across a Canonicalize boundary.
type Sheet struct {
	Wires   []wire.Segment
	Symbols []*Symbol

	ids idgen.Generator
}

// NewSheet creates an empty sheet drawing identities from ids.
func NewSheet(ids idgen.Generator) *Sheet {
	return &Sheet{ids: ids}
}

// IDs exposes the sheet's identity source for collaborators that mint
// segments on its behalf (the reroute session at commit).
func (sh *Sheet) IDs() idgen.Generator {
	return sh.ids
}

// Symbol returns the symbol with the given id, or false if it no longer
// exists. Lookups against deleted ids are expected during drag sequences
// and are not errors.
func (sh *Sheet) Symbol(id string) (*Symbol, bool) {
	for _, s := range sh.Symbols {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// AddSymbol places a new symbol and returns it.
func (sh *Sheet) AddSymbol(kind Kind, pos geometry.Point) *Symbol {
	s := &Symbol{ID: sh.ids(), Kind: kind, Position: pos}
	sh.Symbols = append(sh.Symbols, s)
	return s
}

// RemoveSymbol deletes the symbol with the given id. Removing a missing
// id is a no-op returning false.
func (sh *Sheet) RemoveSymbol(id string) bool {
	for i, s := range sh.Symbols {
		if s.ID == id {
			sh.Symbols = append(sh.Symbols[:i], sh.Symbols[i+1:]...)
			return true
		}
	}
	return false
}

// PortWorldPositions returns the current world-space port positions of a
// symbol, or false if the symbol no longer exists.
func (sh *Sheet) PortWorldPositions(id string) ([]geometry.Point, bool) {
	s, ok := sh.Symbol(id)
	if !ok {
		return nil, false
	}
	return s.Ports(), true
}

// AddWirePath appends the legs of a corner-point polyline as new wire
// segments and re-canonicalizes the sheet. Degenerate legs are dropped.
func (sh *Sheet) AddWirePath(points []geometry.Point) error {
	for i := 1; i < len(points); i++ {
		if points[i-1] == points[i] {
			continue
		}
		sh.Wires = append(sh.Wires, wire.Segment{ID: sh.ids(), A: points[i-1], B: points[i]})
	}
	return sh.Canonicalize()
}

// RemoveWire deletes the segment with the given id and re-canonicalizes,
// letting collinear neighbours merge back together. Removing a missing id
// is a no-op returning false.
func (sh *Sheet) RemoveWire(id string) (bool, error) {
	for i, s := range sh.Wires {
		if s.ID == id {
			sh.Wires = append(sh.Wires[:i], sh.Wires[i+1:]...)
			return true, sh.Canonicalize()
		}
	}
	return false, nil
}

// Canonicalize runs the port splicer (and through it the canonicalizer)
// over the whole wire set. Every pass reassigns wire ids.
func (sh *Sheet) Canonicalize() error {
	comps := make([]Ported, len(sh.Symbols))
	for i, s := range sh.Symbols {
		comps[i] = s
	}
	wires, err := SpliceComponents(sh.Wires, comps, sh.ids)
	if err != nil {
		return err
	}
	sh.Wires = wires
	return nil
}

// WireAt returns the first wire segment passing through p, or false when
// none does.
func (sh *Sheet) WireAt(p geometry.Point) (wire.Segment, bool) {
	for _, s := range sh.Wires {
		if s.Contains(p) {
			return s, true
		}
	}
	return wire.Segment{}, false
}

// SymbolAt returns the symbol whose occupied area contains p, or false
// when the point is empty. Later placements win, matching what is drawn
// on top.
func (sh *Sheet) SymbolAt(p geometry.Point) (*Symbol, bool) {
	for i := len(sh.Symbols) - 1; i >= 0; i-- {
		if sh.Symbols[i].Contains(p) {
			return sh.Symbols[i], true
		}
	}
	return nil, false
}
