// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/google/uuid"

	"goarena/math/vec"
	"goarena/snd"
)

// ApplyDamage deals damage to a player with knockback away from the
// hit direction. dir points from the damage source to the target and
// need not be normalized. quad marks an attacker carrying the quad
// damage powerup.
func ApplyDamage(target *Player, attacker uuid.UUID, damage int, dir vec.Vec3, quad bool, events *snd.Queue) {
	if target.Dead {
		return
	}
	if quad {
		damage *= quadFactor
	}

	kick := float32(damage) * knockbackScale
	if kick > knockbackMax {
		kick = knockbackMax
	}
	if l := dir.Length(); l > 1e-6 {
		target.Vel = vec.Add(target.Vel, dir.Scale(kick/l))
	}

	absorb := int(float32(damage) * armorShare)
	if absorb > target.Armor {
		absorb = target.Armor
	}
	target.Armor -= absorb
	target.Health -= damage - absorb

	if target.Health <= 0 {
		target.die(events)
		return
	}
	if target.painCooldown <= 0 {
		target.painCooldown = painThrottle
		events.Emit(snd.EventPain, target.Pos)
	}
}

// ApplySelfDamage is splash damage from the player's own projectile:
// half damage with a gentler knockback cap. The quad bonus still
// applies to the knockback and the halved damage.
func ApplySelfDamage(p *Player, damage int, dir vec.Vec3, quad bool, events *snd.Queue) {
	if p.Dead {
		return
	}
	if quad {
		damage *= quadFactor
	}

	kick := float32(damage) * selfKnockScale
	if kick > selfKnockMax {
		kick = selfKnockMax
	}
	if l := dir.Length(); l > 1e-6 {
		p.Vel = vec.Add(p.Vel, dir.Scale(kick/l))
	}

	damage /= 2
	absorb := int(float32(damage) * armorShare)
	if absorb > p.Armor {
		absorb = p.Armor
	}
	p.Armor -= absorb
	p.Health -= damage - absorb

	if p.Health <= 0 {
		p.die(events)
	}
}

// Telefrag kills a player outright, spawn collisions leave no corpse
// to argue with.
func Telefrag(target *Player, events *snd.Queue) {
	if target.Dead {
		return
	}
	target.Health -= telefragDamage
	target.die(events)
}
