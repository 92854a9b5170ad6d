package weave

import "errors"

// ErrSurfaceUnavailable is returned when a host cannot provide a drawing
// surface, for example after it has been closed.
var ErrSurfaceUnavailable = errors.New("weave: drawing surface unavailable")

// Host is the environment an Engine runs in. It owns the drawing surface,
// the pointer and resize event sources, and the per-frame clock. All
// callbacks a Host invokes run on a single goroutine.
type Host interface {
	// AcquireSurface returns the surface to draw on.
	AcquireSurface() (Surface, error)
	// Viewport returns the current surface size in world units.
	Viewport() (width, height int)
	// OnPointerMove registers a pointer-move listener in surface coordinates.
	OnPointerMove(fn func(x, y float64)) CallbackHandle
	// OnResize registers a resize listener.
	OnResize(fn func(width, height int)) CallbackHandle
	// Clock returns the host's per-frame clock.
	Clock() FrameClock
}

// FrameClock schedules host-driven repeating frame callbacks.
type FrameClock interface {
	// RequestFrames calls fn once per host frame until the returned handle
	// is removed.
	RequestFrames(fn func()) CallbackHandle
}

// EventType identifies the kind of callback held by a Dispatcher.
type EventType uint8

const (
	EventPointerMove EventType = iota // pointer moved within the surface
	EventResize                       // surface changed size
	EventFrame                        // host frame tick
)

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(x, y float64)
}

type resizeHandler struct {
	id uint32
	fn func(w, h int)
}

type frameHandler struct {
	id uint32
	fn func()
}

func (h *pointerHandler) handlerID() uint32 { return h.id }
func (h *pointerHandler) disarm()           { h.fn = nil }
func (h *resizeHandler) handlerID() uint32  { return h.id }
func (h *resizeHandler) disarm()            { h.fn = nil }
func (h *frameHandler) handlerID() uint32   { return h.id }
func (h *frameHandler) disarm()             { h.fn = nil }

type registeredHandler interface {
	handlerID() uint32
	disarm()
}

type handlerRegistry struct {
	pointerMove []*pointerHandler
	resize      []*resizeHandler
	frame       []*frameHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback. The zero value is a
// valid handle whose Remove does nothing.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires, including later in
// a dispatch that is already in progress. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id)
	case EventFrame:
		h.reg.frame = removeHandler(h.reg.frame, h.id)
	}
}

// removeHandler disarms the entry with the given id and returns a new slice
// without it. The old backing array is left intact so a dispatch ranging over
// it keeps its indices and skips the disarmed entry.
func removeHandler[T registeredHandler](s []T, id uint32) []T {
	for i := range s {
		if s[i].handlerID() == id {
			s[i].disarm()
			out := make([]T, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// Dispatcher is a handler registry hosts embed to implement the listener and
// clock parts of Host. It is not safe for concurrent use; hosts dispatch from
// their single update goroutine.
type Dispatcher struct {
	handlers handlerRegistry
}

// OnPointerMove registers a pointer-move callback.
func (d *Dispatcher) OnPointerMove(fn func(x, y float64)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerMove = append(d.handlers.pointerMove, &pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointerMove}
}

// OnResize registers a resize callback.
func (d *Dispatcher) OnResize(fn func(width, height int)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.resize = append(d.handlers.resize, &resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventResize}
}

// RequestFrames registers a callback fired on every DispatchFrame.
func (d *Dispatcher) RequestFrames(fn func()) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.frame = append(d.handlers.frame, &frameHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventFrame}
}

// Clock returns d itself as the FrameClock.
func (d *Dispatcher) Clock() FrameClock {
	return d
}

// DispatchPointerMove fires every pointer-move callback.
func (d *Dispatcher) DispatchPointerMove(x, y float64) {
	// Removal replaces the slice, so ranging over the current one is a snapshot.
	for _, h := range d.handlers.pointerMove {
		if fn := h.fn; fn != nil {
			fn(x, y)
		}
	}
}

// DispatchResize fires every resize callback.
func (d *Dispatcher) DispatchResize(width, height int) {
	for _, h := range d.handlers.resize {
		if fn := h.fn; fn != nil {
			fn(width, height)
		}
	}
}

// DispatchFrame fires every frame callback.
func (d *Dispatcher) DispatchFrame() {
	for _, h := range d.handlers.frame {
		if fn := h.fn; fn != nil {
			fn()
		}
	}
}

// ListenerCount returns the number of registered callbacks of the given type.
func (d *Dispatcher) ListenerCount(event EventType) int {
	switch event {
	case EventPointerMove:
		return len(d.handlers.pointerMove)
	case EventResize:
		return len(d.handlers.resize)
	case EventFrame:
		return len(d.handlers.frame)
	}
	return 0
}
