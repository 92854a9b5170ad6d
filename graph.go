package weave

import "iter"

const (
	// DefaultConnectionDistance is the particle-particle threshold D.
	DefaultConnectionDistance = 150.0
	// DefaultPointerFactor scales D into the particle-pointer threshold.
	DefaultPointerFactor = 1.5
)

// PointerSentinel is the pointer position before any pointer activity. It
// sits far outside any plausible connection distance of the surface.
var PointerSentinel = Vec2{-1000, -1000}

// EdgeKind distinguishes what an Edge connects.
type EdgeKind uint8

const (
	EdgeParticle EdgeKind = iota // particle to particle
	EdgePointer                  // particle to pointer
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeParticle:
		return "particle"
	case EdgePointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Edge is one connection of the proximity graph for a single frame.
type Edge struct {
	Kind EdgeKind
	From Vec2
	To   Vec2
	// I and J index the particle set. J is -1 for pointer edges.
	I, J int
	// Strength is in (0, 1]: 1 at zero distance, approaching 0 at the threshold.
	Strength float64
}

// Edges lazily yields the proximity graph of particles and pointer. For each
// particle in order it yields the pointer edge (if d < pointerFactor*distance)
// followed by its edges to every later particle (if d < distance). Distances
// equal to a threshold are not connected. The sequence is recomputed on each
// iteration and retains nothing.
func Edges(particles []Particle, pointer Vec2, distance, pointerFactor float64) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if distance <= 0 {
			return
		}
		pointerDistance := distance * pointerFactor
		for i := range particles {
			a := particles[i].Pos()

			if pointerDistance > 0 {
				if d := a.Dist(pointer); d < pointerDistance {
					e := Edge{Kind: EdgePointer, From: a, To: pointer, I: i, J: -1, Strength: 1 - d/pointerDistance}
					if !yield(e) {
						return
					}
				}
			}

			for j := i + 1; j < len(particles); j++ {
				b := particles[j].Pos()
				if d := a.Dist(b); d < distance {
					e := Edge{Kind: EdgeParticle, From: a, To: b, I: i, J: j, Strength: 1 - d/distance}
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}
