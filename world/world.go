// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goarena/anim"
	"goarena/frustum"
	"goarena/math/vec"
	"goarena/rand"
	"goarena/snd"
)

// World is the whole simulation state. Everything runs on one
// goroutine, one Update per fixed timestep.
type World struct {
	Players     []*Player
	Projectiles []*Projectile
	Particles   []*Particle
	Items       []*Item

	Events *snd.Queue
	Solid  SolidFunc
	Spawns []vec.Vec3
	Pads   []Pad

	Time float32

	log *zap.Logger
	rng *rand.Generator
}

func New(log *zap.Logger, rng *rand.Generator) *World {
	return &World{
		Events: &snd.Queue{},
		log:    log,
		rng:    rng,
	}
}

// Pad is a jump pad: standing on it launches the player.
type Pad struct {
	Pos   vec.Vec3
	Force vec.Vec3
}

// AddPlayer spawns a player at the next spawn point, telefragging
// anyone standing on it.
func (w *World) AddPlayer(name string) *Player {
	at := w.spawnPoint()
	for _, other := range w.Players {
		if !other.Dead && vec.Sub(other.Pos, at).Length() < PlayerRadius*2 {
			Telefrag(other, w.Events)
			w.log.Info("telefrag on spawn", zap.String("victim", other.Name))
		}
	}
	p := NewPlayer(name, at, w.rng)
	w.Players = append(w.Players, p)
	return p
}

func (w *World) spawnPoint() vec.Vec3 {
	if len(w.Spawns) == 0 {
		return vec.Vec3{Y: 1}
	}
	return w.Spawns[w.rng.Intn(len(w.Spawns))]
}

// hasQuad reports whether the identified player currently carries
// quad damage. Projectiles outliving their owner deal normal damage.
func (w *World) hasQuad(id uuid.UUID) bool {
	for _, p := range w.Players {
		if p.ID == id {
			return p.QuadTime > 0
		}
	}
	return false
}

// Update runs one simulation tick. Order matters: players move before
// projectiles test hits, and nothing is removed from a list while it
// is being iterated, inactive entries are swept at the very end.
func (w *World) Update(dt float32, view *frustum.Frustum) {
	w.Time += dt

	for _, p := range w.Players {
		p.updateFacing(dt)
		p.updateMove(dt, w.Solid, w.Events)
		p.updateClocks(dt)
		if p.QuadTime > 0 {
			p.QuadTime -= dt
		}
		w.updateFire(p, dt, view)
		if !p.Dead {
			for _, pad := range w.Pads {
				if vec.Sub(p.Pos, pad.Pos).Length() < PickupRadius {
					p.Vel = pad.Force
					p.State = anim.Air
					w.Events.Emit(snd.EventJump, p.Pos)
					break
				}
			}
		}
		if p.Dead {
			p.respawnIn -= dt
			if p.respawnIn <= 0 {
				at := w.spawnPoint()
				for _, other := range w.Players {
					if other != p && !other.Dead && vec.Sub(other.Pos, at).Length() < PlayerRadius*2 {
						Telefrag(other, w.Events)
					}
				}
				p.respawn(at)
			}
		}
	}

	for _, pr := range w.Projectiles {
		pr.update(w, dt, view)
	}

	for _, pa := range w.Particles {
		pa.update(dt)
	}

	w.updateItems()

	w.sweep()
}

// updateFire applies the weapon selection and, when the trigger is
// held and the weapon is off cooldown, spawns a projectile or resolves
// a hitscan trace. The shoot clock restarts so the torso attack
// animation tracks the actual shot.
func (w *World) updateFire(p *Player, dt float32, view *frustum.Frustum) {
	if !p.Dead {
		p.Weapon = p.Input.Weapon
	}
	if p.fireCooldown > 0 {
		p.fireCooldown -= dt
	}
	if p.Dead || !p.Input.Fire || p.fireCooldown > 0 {
		return
	}
	p.fireCooldown = fireInterval(p.Weapon)
	p.shootTime = 0

	dir := vec.Vec3{
		X: p.Facing * math32.Cos(p.AimAngle),
		Y: math32.Sin(p.AimAngle),
	}
	muzzle := vec.Add(p.Pos, vec.Vec3{X: p.Facing * 2 * PlayerRadius, Y: 2 * PlayerRadius})
	if Hitscan(p.Weapon) {
		w.Events.Emit(snd.EventFire, muzzle)
		w.fireHitscan(p, muzzle, dir)
		return
	}
	w.SpawnProjectile(p.ID, p.Weapon, muzzle, dir, view)
}

// sweep removes retired projectiles and dead particles in place.
func (w *World) sweep() {
	live := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		if pr.Active {
			live = append(live, pr)
		}
	}
	w.Projectiles = live

	alive := w.Particles[:0]
	for _, pa := range w.Particles {
		if pa.Alive() {
			alive = append(alive, pa)
		}
	}
	w.Particles = alive
}
