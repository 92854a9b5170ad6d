// Package tui hosts a weave engine in a terminal through tcell. World units
// map onto character cells, the mouse drives the pointer, and frames are
// timed by a ticker on the host's event loop.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/weave"
)

var (
	_ weave.Host    = (*Host)(nil)
	_ weave.Surface = (*Surface)(nil)
)

// Options configures a terminal Host. Zero fields take their defaults.
type Options struct {
	// CellWidth and CellHeight are the world units covered by one cell.
	// Defaults 8 x 16, roughly a terminal glyph in pixels.
	CellWidth  float64
	CellHeight float64
	// FPS is the frame rate of Run. Default 60.
	FPS int
	// Background is the color behind the backdrop. Default black.
	Background weave.Color
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 16
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Background == (weave.Color{}) {
		o.Background = weave.ColorBlack
	}
	return o
}

// Host is a weave.Host drawing into a tcell screen. Events and frames are
// dispatched from the single goroutine running Run.
type Host struct {
	weave.Dispatcher

	screen  tcell.Screen
	opts    Options
	surface *Surface
}

// NewHost wraps an initialized screen. The caller keeps ownership of the
// screen and must call Fini after Run returns.
func NewHost(screen tcell.Screen, opts Options) *Host {
	opts = opts.withDefaults()
	h := &Host{screen: screen, opts: opts}
	var cols, rows int
	if screen != nil {
		cols, rows = screen.Size()
	}
	h.surface = newSurface(cols, rows, opts.CellWidth, opts.CellHeight, opts.Background)
	return h
}

// AcquireSurface returns the cell surface, or weave.ErrSurfaceUnavailable
// when the host has no screen.
func (h *Host) AcquireSurface() (weave.Surface, error) {
	if h.screen == nil {
		return nil, weave.ErrSurfaceUnavailable
	}
	return h.surface, nil
}

// Viewport returns the screen size in world units.
func (h *Host) Viewport() (int, int) {
	return h.surface.Size()
}

// Run polls screen events and dispatches resize, pointer and frame callbacks
// until ctx is done or the user presses Esc, q or Ctrl-C. A user quit
// returns nil; cancellation returns ctx.Err().
func (h *Host) Run(ctx context.Context) error {
	if h.screen == nil {
		return weave.ErrSurfaceUnavailable
	}
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	defer h.screen.DisableMouse()
	h.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.resize(cols, rows)
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.cellCenter(col, row)
		h.DispatchPointerMove(x, y)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	}
	return true
}

// resize reallocates the raster and notifies listeners in world units.
func (h *Host) resize(cols, rows int) {
	h.surface.Resize(cols, rows)
	h.screen.Sync()
	h.DispatchResize(h.surface.Size())
}

// frame runs the frame callbacks and presents the raster.
func (h *Host) frame() {
	h.DispatchFrame()
	h.surface.present(h.screen)
	h.screen.Show()
}

func (h *Host) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * h.opts.CellWidth, (float64(row) + 0.5) * h.opts.CellHeight
}
