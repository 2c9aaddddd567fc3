package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridwire/geometry"
	"gridwire/grid"
	"gridwire/idgen"
	"gridwire/schematic"
)

func newTestEditor() *Editor {
	g := grid.New(1, geometry.Bounds{
		Min: geometry.Point{X: 0, Y: 0},
		Max: geometry.Point{X: 200, Y: 200},
	})
	return New(schematic.NewSheet(idgen.Sequential("id")), g)
}

func TestDrawWire_TwoClicksPlaceElbow(t *testing.T) {
	ed := newTestEditor()
	ed.StartDrawWire()
	assert.Equal(t, ModeDrawWire, ed.Mode())

	require.NoError(t, ed.HandleClick(geometry.Point{X: 10, Y: 10}))
	start, pending := ed.PendingWireStart()
	require.True(t, pending)
	assert.Equal(t, geometry.Point{X: 10, Y: 10}, start)

	require.NoError(t, ed.HandleClick(geometry.Point{X: 40, Y: 30}))
	_, pending = ed.PendingWireStart()
	assert.False(t, pending, "second click completes the wire")
	assert.Len(t, ed.Sheet().Wires, 2, "unaligned clicks produce a two-leg elbow")
	assert.Equal(t, ModeDrawWire, ed.Mode(), "wire mode persists for chaining")
}

func TestDrawWire_EscapeCancelsPendingStart(t *testing.T) {
	ed := newTestEditor()
	ed.StartDrawWire()
	require.NoError(t, ed.HandleClick(geometry.Point{X: 10, Y: 10}))

	ed.CancelDrawWire()

	assert.Equal(t, ModeNormal, ed.Mode())
	_, pending := ed.PendingWireStart()
	assert.False(t, pending)
	assert.Empty(t, ed.Sheet().Wires)
}

func TestDragLifecycle(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 20, Y: 20}))
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 5, Y: 20}, {X: 18, Y: 20}}))

	started, err := ed.BeginDrag(geometry.Point{X: 20, Y: 20})
	require.NoError(t, err)
	require.True(t, started)
	assert.Equal(t, ModeDrag, ed.Mode())
	assert.True(t, ed.Session().Attached())

	ed.DragTo(geometry.Point{X: 50, Y: 50})
	require.NoError(t, ed.EndDrag())

	assert.Equal(t, ModeNormal, ed.Mode())
	assert.False(t, ed.Session().Attached())

	sym, ok := ed.Sheet().Symbol(ed.Selected())
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 50, Y: 50}, sym.Position)
	assert.NotEmpty(t, ed.Sheet().Wires, "the detached wire was rerouted, not lost")
}

func TestBeginDrag_EmptyCellDoesNothing(t *testing.T) {
	ed := newTestEditor()
	started, err := ed.BeginDrag(geometry.Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, ModeNormal, ed.Mode())
}

func TestSelectOtherSymbol_CommitsAttachedSession(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 20, Y: 20}))
	require.NoError(t, ed.PlaceSymbol(schematic.KindCapacitor, geometry.Point{X: 80, Y: 80}))
	second := ed.Selected()
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 5, Y: 20}, {X: 18, Y: 20}}))

	started, err := ed.BeginDrag(geometry.Point{X: 20, Y: 20})
	require.NoError(t, err)
	require.True(t, started)
	ed.DragTo(geometry.Point{X: 20, Y: 40})

	// Clicking the other symbol mid-drag must commit, never discard.
	require.NoError(t, ed.HandleClick(geometry.Point{X: 80, Y: 80}))

	assert.Equal(t, second, ed.Selected())
	assert.False(t, ed.Session().Attached())
	assert.NotEmpty(t, ed.Sheet().Wires, "preview committed on ownership change")
}

func TestDeleteAt_SymbolUnderActiveSession(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 20, Y: 20}))
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 5, Y: 20}, {X: 18, Y: 20}}))

	started, err := ed.BeginDrag(geometry.Point{X: 20, Y: 20})
	require.NoError(t, err)
	require.True(t, started)

	require.NoError(t, ed.DeleteAt(geometry.Point{X: 20, Y: 20}))

	assert.Equal(t, ModeNormal, ed.Mode())
	assert.False(t, ed.Session().Attached())
	assert.Empty(t, ed.Sheet().Symbols)
	assert.Empty(t, ed.Selected())
}

func TestDeleteAt_OtherSymbolMidDragStillCommitsOnDragEnd(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 20, Y: 20}))
	require.NoError(t, ed.PlaceSymbol(schematic.KindCapacitor, geometry.Point{X: 80, Y: 80}))
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 5, Y: 20}, {X: 18, Y: 20}}))

	started, err := ed.BeginDrag(geometry.Point{X: 20, Y: 20})
	require.NoError(t, err)
	require.True(t, started)
	ed.DragTo(geometry.Point{X: 20, Y: 40})

	// Deleting a symbol that is not the session owner must leave the
	// drag attached and still committable.
	require.NoError(t, ed.DeleteAt(geometry.Point{X: 80, Y: 80}))
	assert.Equal(t, ModeDrag, ed.Mode())
	assert.True(t, ed.Session().Attached())

	require.NoError(t, ed.EndDrag())
	assert.False(t, ed.Session().Attached(), "drag end commits the attached session")
	assert.Equal(t, ModeNormal, ed.Mode())
	assert.NotEmpty(t, ed.Sheet().Wires, "the detached wire was committed, not stranded")
}

func TestDeleteAt_WireSegment(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 5, Y: 5}, {X: 50, Y: 5}}))
	require.Len(t, ed.Sheet().Wires, 1)

	require.NoError(t, ed.DeleteAt(geometry.Point{X: 20, Y: 5}))
	assert.Empty(t, ed.Sheet().Wires)
}

func TestPlaceSymbol_OutsideCanvasIgnored(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 500, Y: 500}))
	assert.Empty(t, ed.Sheet().Symbols)
}

func TestRotateSelected_RecutsWiresAtMovedPorts(t *testing.T) {
	ed := newTestEditor()
	require.NoError(t, ed.PlaceSymbol(schematic.KindResistor, geometry.Point{X: 20, Y: 20}))
	// A vertical wire running through the future port column.
	require.NoError(t, ed.Sheet().AddWirePath([]geometry.Point{{X: 20, Y: 5}, {X: 20, Y: 15}}))
	require.Len(t, ed.Sheet().Wires, 1)

	require.NoError(t, ed.RotateSelected())

	sym, ok := ed.Sheet().Symbol(ed.Selected())
	require.True(t, ok)
	assert.Equal(t, 1, sym.Rotation)
}
