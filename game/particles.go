package game

import (
	"math"
	"math/rand/v2"
)

// Particle is one short-lived celebration fragment. Purely visual.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// Life counts down in seconds; the particle dies at zero.
	Life  float64
	Color int
}

const (
	particlesPerBurst = 12
	particleLife      = 1.2
	particleSpeed     = 220
	particleGravity   = 340
)

// SpawnBurst adds one celebration burst centered on (x, y).
func (w *World) SpawnBurst(x, y float64) {
	for i := 0; i < particlesPerBurst; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := particleSpeed * (0.4 + 0.6*rand.Float64())
		w.particles = append(w.particles, Particle{
			X:     x,
			Y:     y,
			VX:    speed * math.Cos(angle),
			VY:    speed * math.Sin(angle),
			Life:  particleLife,
			Color: rand.IntN(len(Palette)),
		})
	}
}

// Particles returns the live particle slice.
func (w *World) Particles() []Particle {
	return w.particles
}

// ParticleSystem integrates and expires celebration particles every frame.
type ParticleSystem struct{}

// Execute advances particle motion and removes dead particles in place.
func (s *ParticleSystem) Execute(f *Frame) {
	dt := f.DeltaTime
	particles := f.World.particles
	alive := particles[:0]
	for i := range particles {
		p := &particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY += particleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, *p)
	}
	f.World.particles = alive
}
