package weave

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrAlreadyStarted is returned by Start on an engine that has left the
// uninitialized state.
var ErrAlreadyStarted = errors.New("weave: engine already started")

// State is the lifecycle state of an Engine.
type State uint8

const (
	StateUninitialized State = iota // created, not yet started
	StateRunning                    // ticking on the host clock
	StateStopped                    // terminal; nothing registered with the host
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Engine animates a particle web on a host surface. It owns all mutable
// animation state: the particle set, pointer position, surface bounds, theme
// color and the handles it registered with the host. An Engine must only be
// used from the host's callback goroutine.
type Engine struct {
	host     Host
	cfg      Config
	renderer *Renderer
	rng      *rand.Rand

	state   State
	surface Surface

	particles     ParticleSet
	pointer       Vec2
	width, height float64
	color         Color
	fade          *colorFade

	frameHandle  CallbackHandle
	moveHandle   CallbackHandle
	resizeHandle CallbackHandle

	ticks uint64
}

// NewEngine creates an engine bound to host. Nothing is registered with the
// host until Start.
func NewEngine(host Host, cfg Config) *Engine {
	e := &Engine{
		host:    host,
		cfg:     cfg,
		pointer: PointerSentinel,
		renderer: &Renderer{
			ParticleLineWidth: cfg.ParticleLineWidth,
			PointerLineWidth:  cfg.PointerLineWidth,
		},
	}
	if cfg.Seed != 0 {
		e.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	return e
}

// Start acquires the host surface, spawns the particles, subscribes to
// pointer and resize events and begins ticking on the host clock. If the
// surface cannot be acquired the engine stays idle in the stopped state and
// the returned error wraps ErrSurfaceUnavailable.
func (e *Engine) Start(c Color) error {
	if e.state != StateUninitialized {
		return ErrAlreadyStarted
	}

	surface, err := e.host.AcquireSurface()
	if err == nil && surface == nil {
		err = ErrSurfaceUnavailable
	}
	if err != nil {
		e.state = StateStopped
		if errors.Is(err, ErrSurfaceUnavailable) {
			return fmt.Errorf("start: %w", err)
		}
		return fmt.Errorf("start: %w: %w", ErrSurfaceUnavailable, err)
	}

	e.surface = surface
	e.color = c
	e.pointer = PointerSentinel
	e.resize(e.host.Viewport())

	e.moveHandle = e.host.OnPointerMove(e.onPointerMove)
	e.resizeHandle = e.host.OnResize(e.resize)
	e.frameHandle = e.host.Clock().RequestFrames(e.tick)
	e.state = StateRunning
	return nil
}

// UpdateColor replaces the theme color starting with the next tick. The
// particle set is left untouched. With Config.ColorFadeTicks set, the
// displayed color fades to c instead of switching at once.
func (e *Engine) UpdateColor(c Color) {
	if e.cfg.ColorFadeTicks > 0 && e.state == StateRunning {
		e.fade = newColorFade(e.color, c, e.cfg.ColorFadeTicks, ease.OutQuad)
		return
	}
	e.fade = nil
	e.color = c
}

// Stop cancels the tick and removes both listeners. It is safe to call in
// any state and more than once.
func (e *Engine) Stop() {
	if e.state == StateStopped {
		return
	}
	e.frameHandle.Remove()
	e.moveHandle.Remove()
	e.resizeHandle.Remove()
	e.frameHandle = CallbackHandle{}
	e.moveHandle = CallbackHandle{}
	e.resizeHandle = CallbackHandle{}

	e.state = StateStopped
	e.surface = nil
	e.particles = nil
	e.fade = nil
}

func (e *Engine) onPointerMove(x, y float64) {
	e.pointer = Vec2{x, y}
}

// resize records the new bounds and swaps in a freshly spawned set. A
// zero-area surface drops the set until the next non-empty resize.
func (e *Engine) resize(width, height int) {
	e.width, e.height = float64(width), float64(height)
	if width <= 0 || height <= 0 {
		e.particles = nil
		return
	}
	next := NewParticleSet(e.cfg.particleConfig(), e.width, e.height, e.rng)
	e.particles = next
}

// tick runs one advance, graph and render pass.
func (e *Engine) tick() {
	if e.state != StateRunning {
		return
	}
	e.ticks++
	if e.fade != nil {
		e.color = e.fade.Update(1)
		if e.fade.Done {
			e.fade = nil
		}
	}
	if e.width <= 0 || e.height <= 0 {
		return
	}
	e.frame()
}

// frame draws one frame. A panic from the surface drops this frame only.
func (e *Engine) frame() {
	defer func() {
		if r := recover(); r != nil {
			e.debugDroppedFrame(r)
		}
	}()

	var stats debugStats
	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
	}

	e.particles.Advance(e.width, e.height)

	if e.cfg.Debug {
		stats.advanceTime = time.Since(t0)
		t0 = time.Now()
	}

	edges := Edges(e.particles, e.pointer, e.cfg.ConnectionDistance, e.cfg.PointerFactor)
	stats.frame = e.renderer.DrawFrame(e.surface, e.particles, edges, e.color)

	if e.cfg.Debug {
		stats.renderTime = time.Since(t0)
		e.debugLog(stats)
	}
}
