package weave

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticResize
)

// syntheticEvent is a single injected host event. Pointer coordinates are
// surface coordinates, identical to real cursor input.
type syntheticEvent struct {
	kind          syntheticKind
	x, y          float64
	width, height int
}

// InjectPointerMove queues a pointer move to (x, y). The event is consumed on
// the next frame's input pass, in place of the real cursor.
func (h *EbitenHost) InjectPointerMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectResize queues a surface resize. It stays in effect until the window
// itself is resized.
func (h *EbitenHost) InjectResize(width, height int) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticResize, width: width, height: height})
}

// InjectSweep queues pointer moves linearly interpolated from (fromX, fromY)
// to (toX, toY), one per frame, consuming frames frames in total. Minimum
// frames is 2 (start and end).
func (h *EbitenHost) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectPointerMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real pointer input is skipped).
func (h *EbitenHost) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		h.debugf("injected move (%g, %g), %d queued", evt.x, evt.y, len(h.injectQueue))
		h.movePointer(evt.x, evt.y)
	case syntheticResize:
		h.debugf("injected resize %dx%d, %d queued", evt.width, evt.height, len(h.injectQueue))
		h.setSize(evt.width, evt.height)
	}
	return true
}
