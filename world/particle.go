// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"goarena/math/vec"
)

const (
	trailInterval = 0.05

	smokeLife     = 1.2
	smokeRise     = 0.3
	smokeGrowth   = 1.8 // size multiplier over a lifetime
	smokeBaseSize = 8 * Unit

	flameLife     = 0.15
	flameBaseSize = 10 * Unit

	railLife     = 0.6
	railBaseSize = 6 * Unit

	explosionParticles = 12
)

// ParticleKind selects the growth and fade curves.
type ParticleKind int

const (
	ParticleSmoke ParticleKind = iota
	ParticleFlame
	ParticleRail
)

// Particle is a billboarded effect quad. Particles never collide.
type Particle struct {
	Kind ParticleKind
	Pos  vec.Vec3
	Vel  vec.Vec3
	Age  float32
	Life float32
	Seed float32 // jitters size so puffs do not look cloned
}

func (p *Particle) update(dt float32) {
	p.Age += dt
	p.Pos = vec.Add(p.Pos, p.Vel.Scale(dt))
	if p.Kind == ParticleSmoke {
		p.Vel.Y += smokeRise * dt
	}
}

// Alive reports whether the particle still draws.
func (p *Particle) Alive() bool {
	return p.Age < p.Life
}

// frac is the normalized age in [0,1].
func (p *Particle) frac() float32 {
	if p.Life <= 0 {
		return 1
	}
	f := p.Age / p.Life
	if f > 1 {
		f = 1
	}
	return f
}

// Alpha fades smoke out linearly and flames out quadratically, so the
// flash dies faster than it shrinks.
func (p *Particle) Alpha() float32 {
	f := p.frac()
	if p.Kind == ParticleFlame {
		return (1 - f) * (1 - f)
	}
	return 1 - f
}

// Size grows smoke as it ages and shrinks flames and rail discs.
func (p *Particle) Size() float32 {
	f := p.frac()
	switch p.Kind {
	case ParticleFlame:
		return flameBaseSize * (1 + p.Seed*0.3) * (1 - 0.5*f)
	case ParticleRail:
		return railBaseSize * (1 - 0.3*f)
	default:
		return smokeBaseSize * (1 + p.Seed*0.3) * (1 + (smokeGrowth-1)*f)
	}
}

// spawnTrail drops a smoke puff and a short lived exhaust flame at
// the projectile's tail.
func (w *World) spawnTrail(p *Projectile) {
	back := p.Vel.Normalize().Scale(-2 * RocketRadius)
	tail := vec.Add(p.Pos, back)
	w.Particles = append(w.Particles,
		&Particle{
			Kind: ParticleSmoke,
			Pos:  tail,
			Vel:  vec.Vec3{Y: smokeRise * 0.5},
			Life: smokeLife,
			Seed: w.rng.Float32(),
		},
		&Particle{
			Kind: ParticleFlame,
			Pos:  tail,
			Vel:  p.Vel.Scale(0.5),
			Life: flameLife,
			Seed: w.rng.Float32(),
		},
	)
}

// spawnExplosion bursts a ring of smoke and flame at a detonation.
func (w *World) spawnExplosion(at vec.Vec3) {
	for i := 0; i < explosionParticles; i++ {
		dir := vec.Vec3{
			X: w.rng.Float32()*2 - 1,
			Y: w.rng.Float32(),
			Z: w.rng.Float32()*2 - 1,
		}
		if dir.Length() < 1e-3 {
			dir = vec.Vec3{Y: 1}
		}
		dir = dir.Normalize()
		kind := ParticleSmoke
		life := float32(smokeLife)
		if i%3 == 0 {
			kind = ParticleFlame
			life = flameLife * 2
		}
		w.Particles = append(w.Particles, &Particle{
			Kind: kind,
			Pos:  at,
			Vel:  dir.Scale(0.5 + w.rng.Float32()),
			Life: life,
			Seed: w.rng.Float32(),
		})
	}
}
