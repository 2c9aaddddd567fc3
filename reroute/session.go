// Package reroute implements the interactive drag session: wires touching
// a symbol's ports are detached when a drag begins, a live preview path is
// maintained while the symbol moves, and the preview is committed back
// into canonical wires when the drag ends.
//
// At most one session is attached at a time, and an attached session
// always commits — there is no discard path, because losing track of
// detached wires is not an acceptable failure mode.
package reroute

import (
	"gridwire/geometry"
	"gridwire/schematic"
	"gridwire/wire"
)

// Attachment records one severed wire end: the endpoint that stays put,
// the orientation the severed segment had, and the port's offset from the
// symbol position at capture time so the port tracks symbol movement.
type Attachment struct {
	Fixed        geometry.Point
	IncomingAxis geometry.Axis
	PortOffset   geometry.Point
}

// Grid is the viewport contract used to vet candidate drag positions.
type Grid interface {
	Snap(geometry.Point) geometry.Point
	InsideCanvas(geometry.Point) bool
}

// session is the attached state: which symbol is owned, the captured
// attachments, and the current preview. It lives from Begin to Commit.
type session struct {
	symbolID    string
	attachments []Attachment
	preview     []wire.Segment
}

// Manager is the drag/reroute state machine. It is either idle
// (active == nil) or attached; all mutation goes through Begin, Update,
// and Commit. Single-threaded by design, like the rest of the engine.
type Manager struct {
	sheet  *schematic.Sheet
	grid   Grid
	active *session
}

// NewManager creates an idle session manager over the given sheet.
func NewManager(sheet *schematic.Sheet, grid Grid) *Manager {
	return &Manager{sheet: sheet, grid: grid}
}

// Attached reports whether a drag session currently owns a symbol.
func (m *Manager) Attached() bool {
	return m.active != nil
}

// Owner returns the id of the owned symbol while attached.
func (m *Manager) Owner() (string, bool) {
	if m.active == nil {
		return "", false
	}
	return m.active.symbolID, true
}

// Preview returns the live preview segments. Only meaningful while
// attached; the segments carry no ids until commit.
func (m *Manager) Preview() []wire.Segment {
	if m.active == nil {
		return nil
	}
	return m.active.preview
}

// Begin starts a drag session for the given symbol. A second Begin for
// the symbol already owned is a no-op. Beginning on a different symbol
// while attached commits the active session first — ownership hands off,
// it never discards. A missing symbol id is a no-op.
func (m *Manager) Begin(symbolID string) error {
	if m.active != nil {
		if m.active.symbolID == symbolID {
			return nil
		}
		if err := m.Commit(); err != nil {
			return err
		}
	}

	sym, ok := m.sheet.Symbol(symbolID)
	if !ok {
		return nil
	}

	sess := &session{symbolID: symbolID}
	detached := make(map[string]bool)
	for _, port := range sym.Ports() {
		for _, seg := range m.sheet.Wires {
			if detached[seg.ID] || !seg.HasEndpoint(port) {
				continue
			}
			other, _ := seg.Other(port)
			sess.attachments = append(sess.attachments, Attachment{
				Fixed:        other,
				IncomingAxis: seg.Axis(),
				PortOffset:   port.Sub(sym.Position),
			})
			detached[seg.ID] = true
		}
	}

	if len(detached) > 0 {
		kept := m.sheet.Wires[:0]
		for _, seg := range m.sheet.Wires {
			if !detached[seg.ID] {
				kept = append(kept, seg)
			}
		}
		m.sheet.Wires = kept
	}

	m.active = sess
	m.refreshPreview(sym.Position)
	return nil
}

// Update moves the owned symbol to the snapped candidate position and
// regenerates the whole preview. The update is rejected (no state change)
// when the snapped position falls outside the canvas. Updating while idle
// does nothing.
func (m *Manager) Update(candidate geometry.Point) bool {
	if m.active == nil {
		return false
	}
	pos := m.grid.Snap(candidate)
	if !m.grid.InsideCanvas(pos) {
		return false
	}
	sym, ok := m.sheet.Symbol(m.active.symbolID)
	if !ok {
		// The symbol was deleted out from under the session; tear down
		// without reinserting wires for a symbol that no longer exists.
		m.active = nil
		return false
	}
	sym.Position = pos
	m.refreshPreview(pos)
	return true
}

// Commit turns every non-degenerate preview segment into a canonical wire
// with a fresh id, runs the splicer over the whole set, and returns the
// manager to idle. A zero-move drag still round-trips through
// canonicalization, which collapses any redundant result. Committing
// while idle is a no-op.
func (m *Manager) Commit() error {
	if m.active == nil {
		return nil
	}
	sess := m.active
	m.active = nil

	if _, ok := m.sheet.Symbol(sess.symbolID); !ok {
		// Owned symbol deleted mid-session: attachments are dropped.
		return nil
	}

	ids := m.sheet.IDs()
	for _, seg := range sess.preview {
		if seg.A == seg.B {
			continue
		}
		seg.ID = ids()
		m.sheet.Wires = append(m.sheet.Wires, seg)
	}
	return m.sheet.Canonicalize()
}

// SymbolDeleted tears the session down when the owned symbol is removed
// by an outside command. Attachments and preview are discarded; the
// detached wires are not reinserted.
func (m *Manager) SymbolDeleted(symbolID string) {
	if m.active != nil && m.active.symbolID == symbolID {
		m.active = nil
	}
}

// refreshPreview rebuilds the preview list from scratch for the given
// symbol position, re-running the anchor-preserving router per attachment.
func (m *Manager) refreshPreview(pos geometry.Point) {
	sess := m.active
	sess.preview = sess.preview[:0]
	for _, att := range sess.attachments {
		port := pos.Add(att.PortOffset)
		path := geometry.RouteFromAnchor(att.Fixed, port, att.IncomingAxis)
		for i := 1; i < len(path); i++ {
			if path[i-1] == path[i] {
				continue
			}
			sess.preview = append(sess.preview, wire.Segment{A: path[i-1], B: path[i]})
		}
	}
}
