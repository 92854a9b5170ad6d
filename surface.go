package weave

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing target the engine renders into. It carries a global
// alpha that multiplies the alpha of every subsequent fill and stroke until
// changed, in the manner of a 2D canvas context.
type Surface interface {
	// Size returns the surface dimensions in world units.
	Size() (width, height int)
	// Clear resets the whole surface to transparent.
	Clear()
	// SetAlpha sets the global alpha applied to later draws.
	SetAlpha(a float64)
	// FillCircle fills a disc centered at (x, y).
	FillCircle(x, y, r float64, c Color)
	// StrokeLine draws a segment from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// ImageSurface is a Surface backed by an offscreen *ebiten.Image. A zero-size
// ImageSurface holds no image and every draw is a no-op.
type ImageSurface struct {
	image     *ebiten.Image
	w, h      int
	alpha     float64
	antialias bool
}

// NewImageSurface creates a surface of the given dimensions.
func NewImageSurface(width, height int, antialias bool) *ImageSurface {
	s := &ImageSurface{alpha: 1, antialias: antialias}
	s.Resize(width, height)
	return s
}

// Image returns the backing image, or nil for a zero-size surface.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	return s.w, s.h
}

// Alpha returns the current global alpha.
func (s *ImageSurface) Alpha() float64 {
	return s.alpha
}

// Clear clears the surface to transparent.
func (s *ImageSurface) Clear() {
	if s.image != nil {
		s.image.Clear()
	}
}

// SetAlpha sets the global alpha, clamped to [0, 1].
func (s *ImageSurface) SetAlpha(a float64) {
	s.alpha = clamp01(a)
}

// FillCircle fills a disc with c scaled by the global alpha.
func (s *ImageSurface) FillCircle(x, y, r float64, c Color) {
	if s.image == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(r), s.paint(c), s.antialias)
}

// StrokeLine strokes a segment with c scaled by the global alpha.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.image == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), s.paint(c), s.antialias)
}

func (s *ImageSurface) paint(c Color) colorRGBA {
	return c.WithAlpha(c.A * s.alpha).toRGBA()
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. Non-positive dimensions leave the surface empty.
func (s *ImageSurface) Resize(width, height int) {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.w, s.h = width, height
	if width > 0 && height > 0 {
		s.image = ebiten.NewImage(width, height)
	}
}

// Dispose deallocates the underlying image. The surface reports zero size
// afterwards.
func (s *ImageSurface) Dispose() {
	s.Resize(0, 0)
}
