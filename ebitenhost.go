package weave

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultOpacity = 0.4

// RunConfig configures the desktop window of an EbitenHost.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Opacity is the alpha the backdrop layer is composited with. Zero
	// selects the default of 0.4.
	Opacity float64
	// Background fills the window behind the backdrop layer.
	Background Color
	ShowFPS    bool
	Antialias  bool
}

// EbitenHost is a Host backed by an Ebitengine window. It implements
// ebiten.Game: the engine renders into an offscreen ImageSurface during
// Update and Draw composites that layer onto the screen.
type EbitenHost struct {
	Dispatcher

	cfg     RunConfig
	surface *ImageSurface

	width, height int // current surface size

	// Last size reported by Layout, and the last one applied from it.
	layoutW, layoutH   int
	appliedW, appliedH int
	layoutSeen         bool

	cursorX, cursorY float64
	cursorSeen       bool
	touchIDs         []ebiten.TouchID

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshots     []screenshotRequest
	updateFunc      func() error
	fps             *fpsOverlay
	closed          bool
	debug           bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewEbitenHost creates a host whose initial viewport is cfg.Width x
// cfg.Height. The size follows the window once the game loop runs.
func NewEbitenHost(cfg RunConfig) *EbitenHost {
	if cfg.Opacity <= 0 {
		cfg.Opacity = defaultOpacity
	}
	h := &EbitenHost{
		cfg:           cfg,
		width:         cfg.Width,
		height:        cfg.Height,
		surface:       NewImageSurface(cfg.Width, cfg.Height, cfg.Antialias),
		ScreenshotDir: "screenshots",
	}
	if cfg.ShowFPS {
		h.fps = newFPSOverlay()
	}
	return h
}

// Run opens the window and blocks until it is closed or the host's update
// loop terminates.
func Run(h *EbitenHost) error {
	if h.cfg.Title != "" {
		ebiten.SetWindowTitle(h.cfg.Title)
	}
	if h.cfg.Width > 0 && h.cfg.Height > 0 {
		ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(h)
}

// AcquireSurface returns the offscreen backdrop surface.
func (h *EbitenHost) AcquireSurface() (Surface, error) {
	if h.closed {
		return nil, ErrSurfaceUnavailable
	}
	return h.surface, nil
}

// Viewport returns the current surface size in pixels.
func (h *EbitenHost) Viewport() (int, int) {
	return h.width, h.height
}

// SetUpdateFunc sets a callback invoked once per frame before the frame
// callbacks fire. A non-nil error ends the game loop.
func (h *EbitenHost) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// SetDebugMode enables or disables host diagnostics. When enabled, applied
// resizes, injected events and written screenshots are logged to stderr.
// Engine stats are controlled separately by Config.Debug.
func (h *EbitenHost) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Close ends the game loop on the next Update and releases the surface.
func (h *EbitenHost) Close() {
	h.closed = true
	h.surface.Dispose()
}

// Layout implements ebiten.Game. The size is applied at the start of the
// next Update.
func (h *EbitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.layoutW, h.layoutH = outsideWidth, outsideHeight
	h.layoutSeen = true
	return outsideWidth, outsideHeight
}

// Update implements ebiten.Game. Resize and pointer events are dispatched
// before the frame callbacks so a tick always sees the latest state.
func (h *EbitenHost) Update() error {
	if h.closed {
		return ebiten.Termination
	}
	h.applyLayout()
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()
	if h.updateFunc != nil {
		if err := h.updateFunc(); err != nil {
			return err
		}
	}
	h.DispatchFrame()
	if h.fps != nil {
		h.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *EbitenHost) Draw(screen *ebiten.Image) {
	screen.Fill(h.cfg.Background.toRGBA())
	if img := h.surface.Image(); img != nil {
		var op ebiten.DrawImageOptions
		op.ColorScale.ScaleAlpha(float32(h.cfg.Opacity))
		screen.DrawImage(img, &op)
	}
	if h.fps != nil {
		h.fps.draw(screen)
	}
	h.flushScreenshots(screen)
}

// applyLayout resizes the surface when the window size reported by Layout
// changed since it was last applied. Injected resizes stay in effect until
// the window itself changes size.
func (h *EbitenHost) applyLayout() {
	if !h.layoutSeen {
		return
	}
	if h.appliedW == h.layoutW && h.appliedH == h.layoutH {
		return
	}
	h.appliedW, h.appliedH = h.layoutW, h.layoutH
	h.setSize(h.layoutW, h.layoutH)
}

// setSize resizes the surface and notifies resize listeners. Equal sizes are
// ignored.
func (h *EbitenHost) setSize(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.debugf("resize %dx%d -> %dx%d", h.width, h.height, width, height)
	h.width, h.height = width, height
	h.surface.Resize(width, height)
	h.DispatchResize(width, height)
}

// processInput consumes one injected event if any are queued, otherwise
// reads the mouse cursor (or the first touch) and dispatches a pointer move
// when it changed.
func (h *EbitenHost) processInput() {
	if h.processInjectedInput() {
		return
	}
	x, y := ebiten.CursorPosition()
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	if len(h.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(h.touchIDs[0])
	}
	h.movePointer(float64(x), float64(y))
}

// movePointer dispatches a pointer move unless the position is unchanged.
func (h *EbitenHost) movePointer(x, y float64) {
	if h.cursorSeen && x == h.cursorX && y == h.cursorY {
		return
	}
	h.cursorSeen = true
	h.cursorX, h.cursorY = x, y
	h.DispatchPointerMove(x, y)
}
