// SPDX-License-Identifier: GPL-2.0-or-later

// Package world runs the single threaded arena simulation: player
// movement, projectiles, particles, combat and item pickups.
package world

// Unit converts Quake distance constants to world units. The arena
// is modeled at 70 Quake units per world unit, so the classic
// movement numbers can be used unchanged.
const Unit = 1.0 / 70.0

const (
	Gravity      = 800 * Unit
	JumpVelocity = 270 * Unit
	MaxSpeed     = 320 * Unit
	CrouchSpeed  = 100 * Unit

	groundAccel    = 10.0 // per second, fraction of wish speed
	groundFriction = 6.0
	airAccel       = 1.0

	// modelYawSpeed turns the rendered body toward the move
	// direction without snapping.
	modelYawSpeed = 12.0
)

const (
	MaxHealth = 200
	MaxArmor  = 200

	SpawnHealth = 125
	GibHealth   = -40

	// Armor soaks two thirds of incoming damage.
	armorShare = 2.0 / 3.0

	quadFactor   = 3
	quadDuration = 30.0
	respawnDelay = 3.0
	painThrottle = 0.7
)

const (
	knockbackScale = 6 * Unit
	knockbackMax   = 1000 * Unit
	selfKnockScale = 4 * Unit
	selfKnockMax   = 800 * Unit
	telefragDamage = 10000
)

const (
	RocketSpeed  = 900 * Unit
	RocketDamage = 100
	RocketSplash = 120 * Unit
	RocketRadius = 1 * Unit

	GrenadeSpeed  = 700 * Unit
	GrenadeDamage = 100
	GrenadeSplash = 150 * Unit
	GrenadeFuse   = 2.5
	grenadeBounce = 0.55
	grenadeDrag   = 0.7

	PlasmaSpeed  = 2000 * Unit
	PlasmaDamage = 20
	PlasmaRadius = 0.6 * Unit

	BFGSpeed  = 2000 * Unit
	BFGDamage = 100
	BFGSplash = 120 * Unit

	MachinegunDamage = 7
	RailDamage       = 100
	HitscanRange     = 8192 * Unit
)

const (
	PickupRadius = 64 * Unit
	PlayerRadius = 24 * Unit
)
