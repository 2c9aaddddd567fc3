package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridwire/editor"
	"gridwire/geometry"
	"gridwire/schematic"
	"gridwire/wire"
)

// Connectivity bits for one cell, used to resolve the box-drawing glyph
// where wire segments meet.
const (
	maskN = 1 << iota
	maskE
	maskS
	maskW
)

// wireGlyphs maps a cell's connectivity mask to its box-drawing rune.
// Junction glyphs (├ ┤ ┬ ┴ ┼) fall out of the mask directly, so crossings
// and T-junctions render correctly without pairwise merge rules.
var wireGlyphs = map[int]rune{
	maskE | maskW:                 '─',
	maskN | maskS:                 '│',
	maskS | maskE:                 '┌',
	maskS | maskW:                 '┐',
	maskN | maskE:                 '└',
	maskN | maskW:                 '┘',
	maskN | maskS | maskE:         '├',
	maskN | maskS | maskW:         '┤',
	maskE | maskW | maskS:         '┬',
	maskE | maskW | maskN:         '┴',
	maskN | maskE | maskS | maskW: '┼',
	maskN:                         '│',
	maskS:                         '│',
	maskE:                         '─',
	maskW:                         '─',
}

var symbolGlyphs = map[schematic.Kind]rune{
	schematic.KindResistor:  'R',
	schematic.KindCapacitor: 'C',
	schematic.KindInductor:  'L',
	schematic.KindGround:    '⏚',
}

var (
	styleWire     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePreview  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSymbol   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	stylePort     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// connectivity accumulates per-cell wire direction bits for a segment set.
func connectivity(segs []wire.Segment, into map[geometry.Point]int) {
	for _, s := range segs {
		if s.Axis() == geometry.Horizontal {
			lo, hi := geometry.Min(s.A.X, s.B.X), geometry.Max(s.A.X, s.B.X)
			for x := lo; x <= hi; x++ {
				bits := 0
				if x > lo {
					bits |= maskW
				}
				if x < hi {
					bits |= maskE
				}
				into[geometry.Point{X: x, Y: s.A.Y}] |= bits
			}
		} else {
			lo, hi := geometry.Min(s.A.Y, s.B.Y), geometry.Max(s.A.Y, s.B.Y)
			for y := lo; y <= hi; y++ {
				bits := 0
				if y > lo {
					bits |= maskN
				}
				if y < hi {
					bits |= maskS
				}
				into[geometry.Point{X: s.A.X, Y: y}] |= bits
			}
		}
	}
}

// draw renders the whole frame: canonical wires, the drag preview, the
// symbols, and the status bar.
func draw(screen tcell.Screen, ed *editor.Editor) {
	screen.Clear()

	cells := make(map[geometry.Point]int)
	connectivity(ed.Sheet().Wires, cells)
	for p, bits := range cells {
		if g, ok := wireGlyphs[bits]; ok {
			screen.SetContent(p.X, p.Y, g, nil, styleWire)
		}
	}

	if ed.Session().Attached() {
		preview := make(map[geometry.Point]int)
		connectivity(ed.Session().Preview(), preview)
		for p, bits := range preview {
			if g, ok := wireGlyphs[bits]; ok {
				screen.SetContent(p.X, p.Y, g, nil, stylePreview)
			}
		}
	}

	for _, sym := range ed.Sheet().Symbols {
		style := styleSymbol
		if sym.ID == ed.Selected() {
			style = styleSelected
		}
		glyph := symbolGlyphs[sym.Kind]
		screen.SetContent(sym.Position.X, sym.Position.Y, glyph, nil, style)
		for _, port := range sym.Ports() {
			screen.SetContent(port.X, port.Y, '•', nil, stylePort)
		}
	}

	if start, ok := ed.PendingWireStart(); ok {
		screen.SetContent(start.X, start.Y, '+', nil, stylePreview)
	}

	drawStatus(screen, ed)
	screen.Show()
}

func drawStatus(screen tcell.Screen, ed *editor.Editor) {
	width, height := screen.Size()
	if height == 0 {
		return
	}
	y := height - 1
	line := fmt.Sprintf(" %s  %s", ed.Mode(), ed.Status())
	help := "w:wire r/c/l/g:place x:rotate d:delete q:quit "
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	for i, r := range line {
		if i >= width {
			break
		}
		screen.SetContent(i, y, r, nil, styleStatus)
	}
	for i, r := range help {
		x := width - len(help) + i
		if x >= 0 {
			screen.SetContent(x, y, r, nil, styleStatus)
		}
	}
}
