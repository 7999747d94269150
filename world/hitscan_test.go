// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"testing"

	"goarena/math/vec"
	"goarena/snd"
)

// hitscanTargets lines up two victims at muzzle height in front of a
// grounded shooter facing +x.
func hitscanTargets(w *World) (shooter, near, far *Player) {
	shooter = w.AddPlayer("shooter")
	settle(w, shooter)
	near = w.AddPlayer("near")
	near.Pos = vec.Vec3{X: 5, Y: PlayerRadius}
	near.Health = 200
	near.Armor = 0
	far = w.AddPlayer("far")
	far.Pos = vec.Vec3{X: 10, Y: PlayerRadius}
	far.Health = 200
	far.Armor = 0
	w.Events.Drain()
	return shooter, near, far
}

func TestMachinegunHitsFirstTarget(t *testing.T) {
	w := testWorld()
	shooter, near, far := hitscanTargets(w)
	shooter.Input.Fire = true
	shooter.Input.Weapon = WeaponMachinegun

	w.Update(dt, nil)

	if got, want := near.Health, 200-MachinegunDamage; got != want {
		t.Errorf("near health = %d, want %d", got, want)
	}
	if far.Health != 200 {
		t.Errorf("far health = %d, bullet went through the first body", far.Health)
	}
	if near.Vel.X <= 0 {
		t.Errorf("near Vel.X = %f, want knockback along the shot", near.Vel.X)
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("len(Projectiles) = %d, hitscan spawned a projectile", len(w.Projectiles))
	}
	if !hasEvent(w.Events.Drain(), snd.EventFire) {
		t.Error("no fire sound emitted")
	}
}

func TestRailgunPiercesLine(t *testing.T) {
	w := testWorld()
	shooter, near, far := hitscanTargets(w)
	shooter.Input.Fire = true
	shooter.Input.Weapon = WeaponRailgun

	w.Update(dt, nil)

	if got, want := near.Health, 200-RailDamage; got != want {
		t.Errorf("near health = %d, want %d", got, want)
	}
	if got, want := far.Health, 200-RailDamage; got != want {
		t.Errorf("far health = %d, want %d, rail did not pierce", got, want)
	}
	rail := 0
	for _, pt := range w.Particles {
		if pt.Kind == ParticleRail {
			rail++
		}
	}
	if rail == 0 {
		t.Error("no rail trail particles")
	}
}

func TestHitscanStopsAtWall(t *testing.T) {
	w := testWorld()
	w.Solid = func(x, y float32) bool { return x > 2 && y < 3 }
	shooter, near, far := hitscanTargets(w)
	shooter.Input.Fire = true
	shooter.Input.Weapon = WeaponMachinegun

	w.Update(dt, nil)

	if near.Health != 200 || far.Health != 200 {
		t.Errorf("health = %d/%d, bullet passed through a wall",
			near.Health, far.Health)
	}
}

func TestRayMissesOffAxisPlayer(t *testing.T) {
	w := testWorld()
	p := w.AddPlayer("grunt")
	p.Pos = vec.Vec3{X: 5, Y: 10}
	from := vec.Vec3{Y: 2 * PlayerRadius}
	if _, ok := rayHitsPlayer(from, vec.Vec3{X: 1}, p); ok {
		t.Error("ray 10 units below the player reported a hit")
	}
	p.Pos = vec.Vec3{X: 5, Y: PlayerRadius}
	if _, ok := rayHitsPlayer(from, vec.Vec3{X: 1}, p); !ok {
		t.Error("ray through the player center reported a miss")
	}
	if _, ok := rayHitsPlayer(from, vec.Vec3{X: -1}, p); ok {
		t.Error("player behind the muzzle reported a hit")
	}
}

func TestWeaponSelectionApplies(t *testing.T) {
	w := testWorld()
	p := w.AddPlayer("sarge")
	settle(w, p)
	p.Input.Weapon = WeaponRailgun
	w.Update(dt, nil)
	if p.Weapon != WeaponRailgun {
		t.Errorf("weapon = %v, want railgun", p.Weapon)
	}
}
