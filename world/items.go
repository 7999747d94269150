// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"goarena/math/vec"
	"goarena/snd"
)

// ItemKind is a pickup type.
type ItemKind int

const (
	ItemHealth ItemKind = iota
	ItemMegaHealth
	ItemArmorShard
	ItemArmorBody
	ItemQuad
	ItemWeaponRocket
	ItemWeaponGrenade
	ItemWeaponPlasma
	ItemWeaponBFG
)

const itemRespawn = 25.0

// Item is a pickup on the arena floor. Taken items respawn in place.
type Item struct {
	Kind      ItemKind
	Pos       vec.Vec3
	Taken     bool
	respawnAt float32
}

// weaponFor maps a weapon pickup to the weapon it gives.
func weaponFor(k ItemKind) (Weapon, bool) {
	switch k {
	case ItemWeaponRocket:
		return WeaponRocket, true
	case ItemWeaponGrenade:
		return WeaponGrenade, true
	case ItemWeaponPlasma:
		return WeaponPlasma, true
	case ItemWeaponBFG:
		return WeaponBFG, true
	}
	return 0, false
}

// apply gives the item's payload. It reports whether the player could
// use it, full health walks over medkits without taking them.
func (it *Item) apply(p *Player, events *snd.Queue) bool {
	switch it.Kind {
	case ItemHealth:
		if p.Health >= 100 {
			return false
		}
		p.Health += 25
		if p.Health > 100 {
			p.Health = 100
		}
		events.Emit(snd.EventItemPickup, it.Pos)
	case ItemMegaHealth:
		if p.Health >= MaxHealth {
			return false
		}
		p.Health += 100
		if p.Health > MaxHealth {
			p.Health = MaxHealth
		}
		events.Emit(snd.EventPowerupPickup, it.Pos)
	case ItemArmorShard:
		if p.Armor >= MaxArmor {
			return false
		}
		p.Armor += 5
		if p.Armor > MaxArmor {
			p.Armor = MaxArmor
		}
		events.Emit(snd.EventItemPickup, it.Pos)
	case ItemArmorBody:
		if p.Armor >= MaxArmor {
			return false
		}
		p.Armor += 50
		if p.Armor > MaxArmor {
			p.Armor = MaxArmor
		}
		events.Emit(snd.EventItemPickup, it.Pos)
	case ItemQuad:
		p.QuadTime = quadDuration
		events.Emit(snd.EventPowerupPickup, it.Pos)
	default:
		if w, ok := weaponFor(it.Kind); ok {
			p.Weapon = w
			p.Input.Weapon = w
			events.Emit(snd.EventWeaponPickup, it.Pos)
		}
	}
	return true
}

// AddItem places a pickup, settled onto the ground below the given
// point so map editors do not have to be exact.
func (w *World) AddItem(kind ItemKind, at vec.Vec3) *Item {
	at.Y = groundBelow(at.X, at.Y, w.Solid)
	it := &Item{Kind: kind, Pos: at}
	w.Items = append(w.Items, it)
	return it
}

// updateItems respawns taken items and hands out pickups to players
// walking over them.
func (w *World) updateItems() {
	for _, it := range w.Items {
		if it.Taken {
			if w.Time >= it.respawnAt {
				it.Taken = false
			}
			continue
		}
		for _, p := range w.Players {
			if p.Dead {
				continue
			}
			if vec.Sub(p.Pos, it.Pos).Length() > PickupRadius {
				continue
			}
			if it.apply(p, w.Events) {
				it.Taken = true
				it.respawnAt = w.Time + itemRespawn
				break
			}
		}
	}
}
