package weave

import "math/rand/v2"

// Particle is a single point of the backdrop. Radius is fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pos returns the particle position.
func (p Particle) Pos() Vec2 {
	return Vec2{p.X, p.Y}
}

// ParticleConfig controls how a ParticleSet is spawned.
type ParticleConfig struct {
	// Count is the number of particles in the set.
	Count int
	// Velocity is the range each velocity component is drawn from, in
	// units per tick.
	Velocity Range
	// Radius is the range of disc radii.
	Radius Range
}

// ParticleSet is an ordered, fixed-size batch of particles. It is replaced
// wholesale on resize, never grown or patched.
type ParticleSet []Particle

// NewParticleSet spawns cfg.Count particles uniformly inside a width x height
// area. A nil rng draws from the global math/rand/v2 source.
func NewParticleSet(cfg ParticleConfig, width, height float64, rng *rand.Rand) ParticleSet {
	if cfg.Count <= 0 {
		return ParticleSet{}
	}
	set := make(ParticleSet, cfg.Count)
	for i := range set {
		p := &set[i]
		p.X = randFloat(rng) * width
		p.Y = randFloat(rng) * height
		p.VX = cfg.Velocity.random(rng)
		p.VY = cfg.Velocity.random(rng)
		p.Radius = cfg.Radius.random(rng)
	}
	return set
}

// Advance moves every particle by one tick of its velocity. A particle that
// crosses a bound has that velocity component turned back inward and its
// overshoot mirrored across the bound, so positions stay inside
// [0, width] x [0, height]. This is stricter than a plain velocity flip,
// which leaves a particle outside the bounds until the next tick.
func (s ParticleSet) Advance(width, height float64) {
	for i := range s {
		p := &s[i]
		p.X += p.VX
		p.Y += p.VY
		p.X, p.VX = reflect(p.X, p.VX, width)
		p.Y, p.VY = reflect(p.Y, p.VY, height)
	}
}

// reflect bounces a coordinate against [0, limit].
func reflect(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		pos = -pos
		if vel < 0 {
			vel = -vel
		}
	case pos > limit:
		pos = 2*limit - pos
		if vel > 0 {
			vel = -vel
		}
	default:
		return pos, vel
	}
	// Bounds narrower than a single step: pin to the nearest edge.
	if pos < 0 {
		pos = 0
	} else if pos > limit {
		pos = limit
	}
	return pos, vel
}

// random returns a value in [Min, Max] drawn from rng, or from the global
// source when rng is nil.
func (r Range) random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + randFloat(rng)*(r.Max-r.Min)
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
