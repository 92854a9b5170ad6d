package weave

import "iter"

const (
	defaultParticleLineWidth = 0.2
	defaultPointerLineWidth  = 0.5
)

// Renderer draws one frame of particles and edges onto a Surface.
type Renderer struct {
	// ParticleLineWidth is the stroke width of particle-particle edges.
	ParticleLineWidth float64
	// PointerLineWidth is the stroke width of particle-pointer edges.
	PointerLineWidth float64
}

// NewRenderer returns a Renderer with the default line widths.
func NewRenderer() *Renderer {
	return &Renderer{
		ParticleLineWidth: defaultParticleLineWidth,
		PointerLineWidth:  defaultPointerLineWidth,
	}
}

// FrameStats counts what a single DrawFrame call emitted.
type FrameStats struct {
	Particles     int
	ParticleEdges int
	PointerEdges  int
}

// DrawFrame clears s, fills every particle opaque in c, then strokes every
// edge in c with its strength as alpha. All particle fills happen before the
// first alpha change, and alpha is restored to 1 when the frame ends (also on
// panic), so edge opacity never carries into particle fills.
func (r *Renderer) DrawFrame(s Surface, particles []Particle, edges iter.Seq[Edge], c Color) (stats FrameStats) {
	s.Clear()
	s.SetAlpha(1)
	defer s.SetAlpha(1)

	for i := range particles {
		p := &particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
	stats.Particles = len(particles)

	if edges == nil {
		return stats
	}
	for e := range edges {
		width := r.ParticleLineWidth
		if e.Kind == EdgePointer {
			width = r.PointerLineWidth
			stats.PointerEdges++
		} else {
			stats.ParticleEdges++
		}
		s.SetAlpha(e.Strength)
		s.StrokeLine(e.From.X, e.From.Y, e.To.X, e.To.Y, width, c)
	}
	return stats
}
