package weave

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many ticks pass between stats lines.
const debugLogInterval = 60

// debugStats holds per-tick timing and edge counts. Only populated when the
// engine runs in debug mode.
type debugStats struct {
	advanceTime time.Duration
	renderTime  time.Duration
	frame       FrameStats
}

// debugLog prints timing and edge counts to stderr every debugLogInterval
// ticks.
func (e *Engine) debugLog(stats debugStats) {
	if !e.cfg.Debug || e.ticks%debugLogInterval != 0 {
		return
	}
	total := stats.advanceTime + stats.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[weave] tick %d | advance: %v | graph+render: %v | total: %v\n",
		e.ticks, stats.advanceTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[weave] particles: %d | particle edges: %d | pointer edges: %d\n",
		stats.frame.Particles, stats.frame.ParticleEdges, stats.frame.PointerEdges)
}

// debugDroppedFrame reports a recovered frame failure.
func (e *Engine) debugDroppedFrame(r any) {
	if !e.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[weave] tick %d: frame dropped: %v\n", e.ticks, r)
}

// debugf prints one host diagnostic line when SetDebugMode is on.
func (h *EbitenHost) debugf(format string, args ...any) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[weave] "+format+"\n", args...)
}
