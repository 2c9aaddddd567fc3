// Package terminal runs the interactive tcell front-end: it translates
// key and mouse events into editor commands and renders the sheet, the
// drag preview, and a status bar.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"gridwire/editor"
	"gridwire/geometry"
	"gridwire/grid"
	"gridwire/idgen"
	"gridwire/schematic"
)

// Run starts the interactive editor loop and blocks until quit.
func Run(cfg *Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	canvas := geometry.Bounds{
		Min: geometry.Point{X: 0, Y: 0},
		Max: geometry.Point{X: cfg.CanvasWidth, Y: cfg.CanvasHeight},
	}
	g := grid.New(cfg.GridPitch, canvas)
	sheet := schematic.NewSheet(idgen.Prefixed("w_", idgen.UUIDv7()))
	ed := editor.New(sheet, g)

	loop := &eventLoop{screen: screen, editor: ed, logger: logger}
	return loop.run()
}

// dragThreshold is the pointer travel, in cells, that turns a press into
// a drag instead of a click.
const dragThreshold = 1

// eventLoop holds the mouse gesture state needed to distinguish clicks
// from drags: a press only becomes a drag once the pointer moves.
type eventLoop struct {
	screen tcell.Screen
	editor *editor.Editor
	logger *slog.Logger

	mouseDown bool
	dragging  bool
	pressAt   geometry.Point
	lastMouse geometry.Point
}

func (l *eventLoop) run() error {
	for {
		draw(l.screen, l.editor)

		switch ev := l.screen.PollEvent().(type) {
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventKey:
			if quit := l.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			l.handleMouse(ev)
		}
	}
}

func (l *eventLoop) handleKey(ev *tcell.EventKey) (quit bool) {
	if ev.Key() == tcell.KeyEscape {
		l.editor.CancelDrawWire()
		return false
	}
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'w':
		l.editor.StartDrawWire()
	case 'r':
		l.command(l.editor.PlaceSymbol(schematic.KindResistor, l.lastMouse))
	case 'c':
		l.command(l.editor.PlaceSymbol(schematic.KindCapacitor, l.lastMouse))
	case 'l':
		l.command(l.editor.PlaceSymbol(schematic.KindInductor, l.lastMouse))
	case 'g':
		l.command(l.editor.PlaceSymbol(schematic.KindGround, l.lastMouse))
	case 'x':
		l.command(l.editor.RotateSelected())
	case 'd':
		l.command(l.editor.DeleteAt(l.lastMouse))
	}
	return false
}

func (l *eventLoop) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geometry.Point{X: x, Y: y}
	l.lastMouse = p

	if ev.Buttons()&tcell.Button1 != 0 {
		if !l.mouseDown {
			l.mouseDown = true
			l.pressAt = p
			return
		}
		if !l.dragging && geometry.ManhattanDistance(p, l.pressAt) >= dragThreshold &&
			l.editor.Mode() == editor.ModeNormal {
			started, err := l.editor.BeginDrag(l.pressAt)
			l.command(err)
			l.dragging = started
		}
		if l.dragging {
			l.editor.DragTo(p)
		}
		return
	}

	if !l.mouseDown {
		return
	}
	l.mouseDown = false
	if l.dragging {
		l.dragging = false
		l.command(l.editor.EndDrag())
		return
	}
	l.command(l.editor.HandleClick(p))
}

// command logs a failed editor command; the engine's only synchronous
// error is a caller-side geometry violation, so surfacing it in the log
// is enough.
func (l *eventLoop) command(err error) {
	if err != nil {
		l.logger.Error("editor command failed", "err", err)
	}
}
