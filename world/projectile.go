// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/google/uuid"

	"goarena/frustum"
	"goarena/math/vec"
	"goarena/snd"
)

// Weapon identifies what fired a shot. The first four spawn
// projectiles, the machinegun and railgun resolve instantly.
type Weapon int

const (
	WeaponRocket Weapon = iota
	WeaponGrenade
	WeaponPlasma
	WeaponBFG
	WeaponMachinegun
	WeaponRailgun
)

// Projectile is one ballistic body. Inactive projectiles stay in the
// list until the end of the tick and are swept out in one pass.
type Projectile struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Kind  Weapon

	Pos vec.Vec3
	Vel vec.Vec3

	// Expires is absolute world time; set at spawn from the frustum
	// visibility estimate so off screen shots die early.
	Expires float32
	Fuse    float32 // grenades only, counts down to detonation

	Active bool

	trailClock float32
}

func projectileRadius(k Weapon) float32 {
	if k == WeaponPlasma {
		return PlasmaRadius
	}
	return RocketRadius
}

func splashRadius(k Weapon) float32 {
	switch k {
	case WeaponGrenade:
		return GrenadeSplash
	case WeaponPlasma:
		return 0
	case WeaponBFG:
		return BFGSplash
	default:
		return RocketSplash
	}
}

func fireInterval(k Weapon) float32 {
	switch k {
	case WeaponPlasma, WeaponMachinegun:
		return 0.1
	case WeaponBFG:
		return 0.2
	case WeaponRailgun:
		return 1.5
	default:
		return 0.8
	}
}

func projectileDamage(k Weapon) int {
	switch k {
	case WeaponGrenade:
		return GrenadeDamage
	case WeaponPlasma:
		return PlasmaDamage
	case WeaponBFG:
		return BFGDamage
	default:
		return RocketDamage
	}
}

// SpawnProjectile fires a projectile and bounds its lifetime by how
// long it can stay on screen.
func (w *World) SpawnProjectile(owner uuid.UUID, kind Weapon, pos, dir vec.Vec3, view *frustum.Frustum) *Projectile {
	speed := float32(RocketSpeed)
	switch kind {
	case WeaponGrenade:
		speed = GrenadeSpeed
	case WeaponPlasma:
		speed = PlasmaSpeed
	case WeaponBFG:
		speed = BFGSpeed
	}
	vel := dir.Normalize().Scale(speed)

	life := float32(frustum.MaxVisibility)
	if view != nil {
		life = view.EstimateVisibilityTime(pos, vel)
	}
	p := &Projectile{
		ID:      uuid.New(),
		Owner:   owner,
		Kind:    kind,
		Pos:     pos,
		Vel:     vel,
		Expires: w.Time + life,
		Active:  true,
	}
	if kind == WeaponGrenade {
		p.Fuse = GrenadeFuse
	}
	w.Projectiles = append(w.Projectiles, p)
	w.Events.Emit(snd.EventFire, pos)
	return p
}

// update integrates one tick. Detonation and expiry only deactivate,
// removal happens at the end of the world tick.
func (p *Projectile) update(w *World, dt float32, view *frustum.Frustum) {
	if !p.Active {
		return
	}

	if p.Kind == WeaponGrenade {
		p.Vel.Y -= Gravity * dt
		p.Fuse -= dt
		if p.Fuse <= 0 {
			w.detonate(p)
			return
		}
	}

	p.Pos = vec.Add(p.Pos, p.Vel.Scale(dt))

	// Grenades bounce off the floor, everything else detonates.
	if p.Pos.Y <= 0 {
		if p.Kind == WeaponGrenade {
			p.Pos.Y = 0
			p.Vel.Y = -p.Vel.Y * grenadeBounce
			p.Vel.X *= grenadeDrag
			p.Vel.Z *= grenadeDrag
		} else {
			w.detonate(p)
			return
		}
	}

	if w.Time >= p.Expires {
		p.Active = false
		return
	}
	if view != nil && !view.ContainsSphere(p.Pos, projectileRadius(p.Kind)*4) {
		p.Active = false
		return
	}

	// Direct hits.
	for _, target := range w.Players {
		if target.Dead || target.ID == p.Owner {
			continue
		}
		if vec.Sub(target.Pos, p.Pos).Length() > PlayerRadius+projectileRadius(p.Kind) {
			continue
		}
		if p.Kind == WeaponPlasma {
			dir := vec.Sub(target.Pos, p.Pos)
			ApplyDamage(target, p.Owner, PlasmaDamage, dir, w.hasQuad(p.Owner), w.Events)
			p.Active = false
			return
		}
		w.detonate(p)
		return
	}

	// Rockets leave a smoke and flame trail.
	if p.Kind == WeaponRocket {
		p.trailClock -= dt
		for p.trailClock <= 0 {
			p.trailClock += trailInterval
			w.spawnTrail(p)
		}
	}
}

// detonate applies splash damage around the projectile and retires
// it. Distance falloff is linear to the splash radius, owners take
// self damage instead.
func (w *World) detonate(p *Projectile) {
	p.Active = false
	w.Events.Emit(snd.EventExplosion, p.Pos)
	w.spawnExplosion(p.Pos)

	radius := splashRadius(p.Kind)
	if radius <= 0 {
		return
	}
	base := projectileDamage(p.Kind)
	quad := w.hasQuad(p.Owner)
	for _, target := range w.Players {
		d := vec.Sub(target.Pos, p.Pos)
		dist := d.Length()
		if dist > radius {
			continue
		}
		damage := int(float32(base) * (1 - dist/radius))
		if damage <= 0 {
			continue
		}
		if target.ID == p.Owner {
			ApplySelfDamage(target, damage, d, quad, w.Events)
		} else {
			ApplyDamage(target, p.Owner, damage, d, quad, w.Events)
		}
	}
}
