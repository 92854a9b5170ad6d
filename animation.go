package weave

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colorFade tweens the displayed theme color from one accent to the next.
// Time is measured in ticks: Update(1) is one frame.
type colorFade struct {
	from, to Color
	tween    *gween.Tween
	current  Color
	Done     bool
}

// newColorFade starts a fade from the currently displayed color to to over
// the given number of ticks. A non-positive duration finishes immediately.
func newColorFade(from, to Color, ticks int, fn ease.TweenFunc) *colorFade {
	f := &colorFade{from: from, to: to, current: from}
	if ticks <= 0 {
		f.current = to
		f.Done = true
		return f
	}
	f.tween = gween.New(0, 1, float32(ticks), fn)
	return f
}

// Update advances the fade by dt ticks and returns the color to draw with.
func (f *colorFade) Update(dt float32) Color {
	if f.Done {
		return f.current
	}
	t, finished := f.tween.Update(dt)
	if finished {
		f.current = f.to
		f.Done = true
		return f.current
	}
	f.current = f.from.BlendLab(f.to, float64(t))
	return f.current
}

// Target returns the color the fade ends on.
func (f *colorFade) Target() Color {
	return f.to
}
