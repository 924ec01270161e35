package obj

import "math/rand/v2"

// ParticleColor selects one of the particle textures.
type ParticleColor int

const (
	ParticleRed ParticleColor = iota
	ParticleGreen
	ParticleBlue
)

const particleLifetime = 10

// Particle is a short-lived sparkle drawn around the dot.
type Particle struct {
	X, Y  float64
	Frame int
	Color ParticleColor
}

// Dead reports whether the particle has run through its animation.
func (p *Particle) Dead() bool {
	return p.Frame > particleLifetime
}

// Shimmer reports whether the shimmer overlay is drawn this frame.
func (p *Particle) Shimmer() bool {
	return p.Frame%2 == 0
}

// Emitter keeps a fixed number of particles alive around a point.
type Emitter struct {
	particles []Particle
	rng       *rand.Rand
}

// NewEmitter creates n particles around (x, y).
func NewEmitter(n int, x, y float64, rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	e := &Emitter{particles: make([]Particle, max(n, 0)), rng: rng}
	for i := range e.particles {
		e.particles[i] = e.spawn(x, y)
	}
	return e
}

func (e *Emitter) spawn(x, y float64) Particle {
	return Particle{
		X:     x - 5 + float64(e.rng.IntN(25)),
		Y:     y - 5 + float64(e.rng.IntN(25)),
		Frame: e.rng.IntN(5),
		Color: ParticleColor(e.rng.IntN(3)),
	}
}

// Update replaces dead particles at (x, y) and advances every particle by
// one frame.
func (e *Emitter) Update(x, y float64) {
	if e == nil {
		return
	}
	for i := range e.particles {
		if e.particles[i].Dead() {
			e.particles[i] = e.spawn(x, y)
		}
	}
	for i := range e.particles {
		e.particles[i].Frame++
	}
}

// Particles returns the live particle slice.
func (e *Emitter) Particles() []Particle {
	if e == nil {
		return nil
	}
	return e.particles
}
