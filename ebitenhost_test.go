package weave

import (
	"errors"
	"testing"
)

func newTestHost() *EbitenHost {
	return NewEbitenHost(RunConfig{Width: 320, Height: 240})
}

func TestNewEbitenHostDefaults(t *testing.T) {
	h := newTestHost()
	if w, ht := h.Viewport(); w != 320 || ht != 240 {
		t.Errorf("Viewport = %dx%d, want 320x240", w, ht)
	}
	if h.cfg.Opacity != defaultOpacity {
		t.Errorf("Opacity = %v, want %v", h.cfg.Opacity, defaultOpacity)
	}
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
	if h.fps != nil {
		t.Error("fps overlay created without ShowFPS")
	}
}

func TestEbitenHostAcquireAfterClose(t *testing.T) {
	h := newTestHost()
	s, err := h.AcquireSurface()
	if err != nil || s == nil {
		t.Fatalf("AcquireSurface = %v, %v", s, err)
	}
	h.Close()
	if _, err := h.AcquireSurface(); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("err after Close = %v, want ErrSurfaceUnavailable", err)
	}
	if h.surface.Image() != nil {
		t.Error("surface image not released by Close")
	}
}

func TestEbitenHostApplyLayout(t *testing.T) {
	h := newTestHost()
	var sizes [][2]int
	h.OnResize(func(w, ht int) { sizes = append(sizes, [2]int{w, ht}) })

	h.applyLayout()
	if len(sizes) != 0 {
		t.Fatalf("resize before Layout: %v", sizes)
	}

	h.Layout(640, 480)
	h.applyLayout()
	h.applyLayout()
	if len(sizes) != 1 || sizes[0] != [2]int{640, 480} {
		t.Fatalf("sizes = %v, want [[640 480]]", sizes)
	}
	if w, ht := h.surface.Size(); w != 640 || ht != 480 {
		t.Errorf("surface = %dx%d, want 640x480", w, ht)
	}
}

func TestEbitenHostLayoutSameSizeNoDispatch(t *testing.T) {
	h := newTestHost()
	calls := 0
	h.OnResize(func(int, int) { calls++ })
	h.Layout(320, 240)
	h.applyLayout()
	if calls != 0 {
		t.Errorf("resize dispatched %d times for unchanged size", calls)
	}
}

func TestEbitenHostInjectedResizePersists(t *testing.T) {
	h := newTestHost()
	h.Layout(320, 240)
	h.applyLayout()

	h.InjectResize(100, 50)
	h.processInjectedInput()
	h.Layout(320, 240)
	h.applyLayout()
	if w, ht := h.Viewport(); w != 100 || ht != 50 {
		t.Errorf("Viewport = %dx%d, want injected 100x50", w, ht)
	}

	h.Layout(800, 600)
	h.applyLayout()
	if w, ht := h.Viewport(); w != 800 || ht != 600 {
		t.Errorf("Viewport = %dx%d, want 800x600 after window resize", w, ht)
	}
}

func TestEbitenHostZeroSizeSurface(t *testing.T) {
	h := newTestHost()
	h.InjectResize(0, 0)
	h.processInjectedInput()
	if h.surface.Image() != nil {
		t.Error("zero-size surface should hold no image")
	}
	h.surface.FillCircle(1, 1, 1, ColorWhite)
	h.surface.StrokeLine(0, 0, 1, 1, 1, ColorWhite)
}

func TestEbitenHostMoveDedup(t *testing.T) {
	h := newTestHost()
	var moves []Vec2
	h.OnPointerMove(func(x, y float64) { moves = append(moves, Vec2{x, y}) })

	h.movePointer(10, 20)
	h.movePointer(10, 20)
	h.movePointer(11, 20)

	if len(moves) != 2 || moves[0] != (Vec2{10, 20}) || moves[1] != (Vec2{11, 20}) {
		t.Errorf("moves = %v, want [(10,20) (11,20)]", moves)
	}
}

func TestInjectPointerMove(t *testing.T) {
	h := newTestHost()
	var got Vec2
	h.OnPointerMove(func(x, y float64) { got = Vec2{x, y} })

	h.InjectPointerMove(12.5, 40)
	if !h.processInjectedInput() {
		t.Fatal("expected injected event to be consumed")
	}
	if got != (Vec2{12.5, 40}) {
		t.Errorf("pointer = %v, want (12.5, 40)", got)
	}
	if h.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
}

func TestInjectSweep(t *testing.T) {
	h := newTestHost()
	var moves []Vec2
	h.OnPointerMove(func(x, y float64) { moves = append(moves, Vec2{x, y}) })

	h.InjectSweep(0, 0, 100, 50, 5)
	if len(h.injectQueue) != 5 {
		t.Fatalf("queued %d events, want 5", len(h.injectQueue))
	}
	for h.processInjectedInput() {
	}

	want := []Vec2{{0, 0}, {25, 12.5}, {50, 25}, {75, 37.5}, {100, 50}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestInjectSweepMinFrames(t *testing.T) {
	h := newTestHost()
	h.InjectSweep(0, 0, 10, 10, 0)
	if len(h.injectQueue) != 2 {
		t.Errorf("queued %d events, want 2", len(h.injectQueue))
	}
}

func TestInjectQueueOrder(t *testing.T) {
	h := newTestHost()
	var order []string
	h.OnPointerMove(func(float64, float64) { order = append(order, "move") })
	h.OnResize(func(int, int) { order = append(order, "resize") })

	h.InjectResize(200, 100)
	h.InjectPointerMove(5, 5)

	h.processInjectedInput()
	h.processInjectedInput()

	if len(order) != 2 || order[0] != "resize" || order[1] != "move" {
		t.Errorf("order = %v, want [resize move]", order)
	}
}

func TestEbitenHostDrivesEngine(t *testing.T) {
	h := newTestHost()
	cfg := DefaultConfig()
	cfg.Seed = 3
	e := NewEngine(h, cfg)
	if err := e.Start(ColorWhite); err != nil {
		t.Fatalf("Start: %v", err)
	}

	h.InjectResize(160, 90)
	h.processInjectedInput()
	if e.width != 160 || e.height != 90 {
		t.Errorf("engine bounds = %vx%v, want 160x90", e.width, e.height)
	}

	h.InjectPointerMove(30, 30)
	h.processInjectedInput()
	if e.pointer != (Vec2{30, 30}) {
		t.Errorf("engine pointer = %v, want (30, 30)", e.pointer)
	}

	e.Stop()
	if n := h.ListenerCount(EventFrame) + h.ListenerCount(EventResize) + h.ListenerCount(EventPointerMove); n != 0 {
		t.Errorf("listeners after Stop = %d, want 0", n)
	}
}
