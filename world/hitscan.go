// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"sort"

	"goarena/math/vec"
)

const (
	// hitscanStep is the ray march increment against the tile grid.
	// Half a tile, so no solid tile can be stepped over.
	hitscanStep = 0.5

	railDiscSpacing = 0.6
)

// Hitscan reports whether the weapon resolves instantly instead of
// spawning a projectile.
func Hitscan(k Weapon) bool {
	return k == WeaponMachinegun || k == WeaponRailgun
}

// wallDistance marches the ray against the tile grid and returns the
// distance to the first solid cell, capped at max.
func wallDistance(from, dir vec.Vec3, max float32, solid SolidFunc) float32 {
	if solid == nil {
		return max
	}
	for t := float32(hitscanStep); t < max; t += hitscanStep {
		p := vec.Add(from, dir.Scale(t))
		if p.Y <= 0 || solid(p.X, p.Y) {
			return t
		}
	}
	return max
}

// rayHitsPlayer intersects the ray with the player's collision sphere
// and returns the distance along the ray to the closest approach.
func rayHitsPlayer(from, dir vec.Vec3, p *Player) (float32, bool) {
	center := vec.Add(p.Pos, vec.Vec3{Y: PlayerRadius})
	to := vec.Sub(center, from)
	t := vec.Dot(to, dir)
	if t < 0 {
		return 0, false
	}
	perp := vec.Sub(to, dir.Scale(t))
	if perp.Length() > PlayerRadius {
		return 0, false
	}
	return t, true
}

type hitscanHit struct {
	target *Player
	dist   float32
}

// fireHitscan resolves an instant weapon: trace to the first wall,
// collect every player sphere the ray crosses before it, then apply
// damage. The machinegun stops at the first body, the railgun drills
// through everyone in the line.
func (w *World) fireHitscan(shooter *Player, from, dir vec.Vec3) {
	dir = dir.Normalize()
	end := wallDistance(from, dir, HitscanRange, w.Solid)

	var hits []hitscanHit
	for _, target := range w.Players {
		if target.Dead || target.ID == shooter.ID {
			continue
		}
		if t, ok := rayHitsPlayer(from, dir, target); ok && t <= end {
			hits = append(hits, hitscanHit{target, t})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	quad := shooter.QuadTime > 0
	switch shooter.Weapon {
	case WeaponRailgun:
		for _, h := range hits {
			ApplyDamage(h.target, shooter.ID, RailDamage, dir, quad, w.Events)
		}
		w.spawnRailTrail(from, dir, end)
	default:
		if len(hits) > 0 {
			h := hits[0]
			ApplyDamage(h.target, shooter.ID, MachinegunDamage, dir, quad, w.Events)
			end = h.dist
		}
		w.spawnImpact(vec.Add(from, dir.Scale(end)))
	}
}

// spawnRailTrail drops a line of glowing discs along the beam.
func (w *World) spawnRailTrail(from, dir vec.Vec3, length float32) {
	for t := float32(0); t < length; t += railDiscSpacing {
		w.Particles = append(w.Particles, &Particle{
			Kind: ParticleRail,
			Pos:  vec.Add(from, dir.Scale(t)),
			Life: railLife,
			Seed: w.rng.Float32(),
		})
	}
}

// spawnImpact puts a single short flame puff where a bullet stopped.
func (w *World) spawnImpact(at vec.Vec3) {
	w.Particles = append(w.Particles, &Particle{
		Kind: ParticleFlame,
		Pos:  at,
		Life: flameLife,
		Seed: w.rng.Float32(),
	})
}
