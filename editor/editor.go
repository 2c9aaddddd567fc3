// Package editor is the command layer between the input front-end and the
// wire engine: a small modal state machine that translates clicks and
// drags into sheet mutations and reroute session calls. It has no
// terminal dependency, which keeps the whole layer testable headlessly.
package editor

import (
	"fmt"

	"gridwire/geometry"
	"gridwire/grid"
	"gridwire/reroute"
	"gridwire/schematic"
)

// Editor owns the sheet, the reroute session manager, and the interactive
// selection state.
type Editor struct {
	sheet   *schematic.Sheet
	grid    *grid.Grid
	session *reroute.Manager

	mode      Mode
	selected  string          // selected symbol id, "" for none
	wireStart *geometry.Point // first click of a pending wire, nil when absent
	status    string
}

// New creates an editor over the given sheet and grid.
func New(sheet *schematic.Sheet, g *grid.Grid) *Editor {
	return &Editor{
		sheet:   sheet,
		grid:    g,
		session: reroute.NewManager(sheet, g),
		mode:    ModeNormal,
	}
}

// Sheet returns the sheet under edit.
func (e *Editor) Sheet() *schematic.Sheet {
	return e.sheet
}

// Session returns the reroute session manager, exposed so the front-end
// can draw the live preview while a drag is attached.
func (e *Editor) Session() *reroute.Manager {
	return e.session
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Selected returns the selected symbol id, or "" when nothing is selected.
func (e *Editor) Selected() string {
	return e.selected
}

// PendingWireStart returns the first click of a wire being drawn, if any.
func (e *Editor) PendingWireStart() (geometry.Point, bool) {
	if e.wireStart == nil {
		return geometry.Point{}, false
	}
	return *e.wireStart, true
}

// Status returns the last status message.
func (e *Editor) Status() string {
	return e.status
}

// StartDrawWire enters wire-drawing mode.
func (e *Editor) StartDrawWire() {
	e.mode = ModeDrawWire
	e.wireStart = nil
	e.status = "wire: click start point"
}

// CancelDrawWire leaves wire-drawing mode, dropping any pending start.
func (e *Editor) CancelDrawWire() {
	if e.mode == ModeDrawWire {
		e.mode = ModeNormal
		e.wireStart = nil
		e.status = ""
	}
}

// HandleClick processes a primary click at p according to the mode.
func (e *Editor) HandleClick(p geometry.Point) error {
	p = e.grid.Snap(p)
	switch e.mode {
	case ModeDrawWire:
		return e.clickWire(p)
	default:
		return e.clickSelect(p)
	}
}

func (e *Editor) clickWire(p geometry.Point) error {
	if !e.grid.InsideCanvas(p) {
		return nil
	}
	if e.wireStart == nil {
		start := p
		e.wireStart = &start
		e.status = "wire: click end point"
		return nil
	}
	path := geometry.RouteFreeform(*e.wireStart, p)
	e.wireStart = nil
	e.status = "wire: click start point"
	return e.sheet.AddWirePath(path)
}

func (e *Editor) clickSelect(p geometry.Point) error {
	if sym, ok := e.sheet.SymbolAt(p); ok {
		// Selecting a different symbol while a session is attached must
		// commit the active session before ownership moves on.
		if owner, attached := e.session.Owner(); attached && owner != sym.ID {
			if err := e.session.Commit(); err != nil {
				return err
			}
			e.mode = ModeNormal
		}
		e.selected = sym.ID
		e.status = fmt.Sprintf("selected %s", sym.Kind)
		return nil
	}
	e.selected = ""
	e.status = ""
	return nil
}

// BeginDrag starts a reroute session for the symbol under p, if any.
// Returns true when a drag actually started.
func (e *Editor) BeginDrag(p geometry.Point) (bool, error) {
	sym, ok := e.sheet.SymbolAt(e.grid.Snap(p))
	if !ok {
		return false, nil
	}
	if err := e.session.Begin(sym.ID); err != nil {
		return false, err
	}
	e.selected = sym.ID
	e.mode = ModeDrag
	e.status = fmt.Sprintf("dragging %s", sym.Kind)
	return true, nil
}

// DragTo moves the dragged symbol to the candidate position. Out-of-bounds
// candidates are rejected without state change.
func (e *Editor) DragTo(p geometry.Point) {
	if e.mode != ModeDrag {
		return
	}
	e.session.Update(p)
}

// EndDrag commits the active reroute session and returns to normal mode.
// Ending a drag early is a normal commit, not an abort.
func (e *Editor) EndDrag() error {
	if e.mode != ModeDrag {
		return nil
	}
	e.mode = ModeNormal
	e.status = ""
	return e.session.Commit()
}

// PlaceSymbol adds a symbol of the given kind at the snapped position and
// re-canonicalizes, so existing wires are cut at the new ports.
func (e *Editor) PlaceSymbol(kind schematic.Kind, p geometry.Point) error {
	p = e.grid.Snap(p)
	if !e.grid.InsideCanvas(p) {
		return nil
	}
	sym := e.sheet.AddSymbol(kind, p)
	e.selected = sym.ID
	e.status = fmt.Sprintf("placed %s", kind)
	return e.sheet.Canonicalize()
}

// RotateSelected rotates the selected symbol a quarter turn and
// re-canonicalizes around its moved ports.
func (e *Editor) RotateSelected() error {
	sym, ok := e.sheet.Symbol(e.selected)
	if !ok {
		return nil
	}
	sym.Rotate(1)
	return e.sheet.Canonicalize()
}

// DeleteAt removes whatever sits under p: a symbol first, else a wire
// segment. Deleting the symbol owned by an attached session tears the
// session down without reinserting its detached wires.
func (e *Editor) DeleteAt(p geometry.Point) error {
	p = e.grid.Snap(p)
	if sym, ok := e.sheet.SymbolAt(p); ok {
		e.session.SymbolDeleted(sym.ID)
		// Only leave drag mode when the deleted symbol was the session
		// owner; deleting a bystander must not strand an attached session
		// past its drag-end commit.
		if e.mode == ModeDrag && !e.session.Attached() {
			e.mode = ModeNormal
		}
		if e.selected == sym.ID {
			e.selected = ""
		}
		e.sheet.RemoveSymbol(sym.ID)
		e.status = fmt.Sprintf("deleted %s", sym.Kind)
		return e.sheet.Canonicalize()
	}
	if seg, ok := e.sheet.WireAt(p); ok {
		_, err := e.sheet.RemoveWire(seg.ID)
		e.status = "deleted wire"
		return err
	}
	return nil
}
