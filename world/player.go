// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"goarena/anim"
	qmath "goarena/math"
	"goarena/math/vec"
	"goarena/rand"
	"goarena/snd"
)

// Input is one tick of player intent, produced by the input layer or
// a bot controller.
type Input struct {
	Move   float32 // -1..1 along the arena x axis
	Aim    float32 // radians
	Jump   bool
	Crouch bool
	Fire   bool
	Weapon Weapon
}

// Player is one combatant. Position and velocity are in world units,
// x runs along the arena, y is up.
type Player struct {
	ID   uuid.UUID
	Name string

	Pos vec.Vec3
	Vel vec.Vec3

	State    anim.PlayerState
	Health   int
	Armor    int
	Weapon   Weapon
	QuadTime float32 // remaining, 0 when not active

	Input Input

	// Facing is -1 or 1 along x, ModelYaw follows it smoothly.
	Facing   float32
	ModelYaw float32
	AimAngle float32

	// Animation clocks. animTime restarts when the legs animation
	// changes, shootTime and gestureTime run independently.
	animTime    float32
	shootTime   float32
	gestureTime float32
	lastLegs    int
	aim         anim.AimState
	gesture     *anim.Gesture

	Dead         bool
	Gibbed       bool
	DeathAnim    int
	respawnIn    float32
	painCooldown float32
	fireCooldown float32

	rng *rand.Generator
}

// NewPlayer spawns a combatant with a fresh identity.
func NewPlayer(name string, pos vec.Vec3, rng *rand.Generator) *Player {
	return &Player{
		ID:      uuid.New(),
		Name:    name,
		Pos:     pos,
		State:   anim.Air,
		Health:  SpawnHealth,
		Weapon:  WeaponRocket,
		Facing:  1,
		rng:     rng,
		gesture: anim.NewGesture(rng),
	}
}

// Moving reports whether the player is actively running.
func (p *Player) Moving() bool {
	return !p.Dead && math32.Abs(p.Input.Move) > 0.01
}

// MovingBackward reports running against the facing direction.
func (p *Player) MovingBackward() bool {
	return p.Moving() && p.Input.Move*p.Facing < 0
}

// Flipped reports a model that faces -x.
func (p *Player) Flipped() bool {
	return p.Facing < 0
}

func (p *Player) maxSpeed() float32 {
	if p.State == anim.Crouching {
		return CrouchSpeed
	}
	return MaxSpeed
}

// updateMove integrates one tick of 2.5D movement: ground friction
// and acceleration, reduced air control, gravity and jumping. solid
// is the tile collision query.
func (p *Player) updateMove(dt float32, solid SolidFunc, events *snd.Queue) {
	wish := float32(0)
	if !p.Dead {
		wish = qmath.Clamp(-1, p.Input.Move, 1) * p.maxSpeed()
	}

	accel := float32(airAccel)
	if p.State != anim.Air {
		accel = groundAccel
		// Friction before acceleration, so stopping feels snappier
		// than starting.
		p.Vel.X -= p.Vel.X * groundFriction * dt
	}
	if wish != 0 {
		dir := float32(1)
		if wish < 0 {
			dir = -1
		}
		wishSpeed := wish * dir
		if add := wishSpeed - p.Vel.X*dir; add > 0 {
			step := accel * wishSpeed * dt
			if step > add {
				step = add
			}
			p.Vel.X += dir * step
		}
	}

	p.Vel.Y -= Gravity * dt

	if !p.Dead && p.Input.Jump && p.State != anim.Air {
		p.Vel.Y = JumpVelocity
		p.State = anim.Air
		events.Emit(snd.EventJump, p.Pos)
	}

	p.Pos = vec.Add(p.Pos, p.Vel.Scale(dt))

	onGround := resolveVertical(&p.Pos, &p.Vel, solid)
	switch {
	case !onGround:
		p.State = anim.Air
	case !p.Dead && p.Input.Crouch:
		p.State = anim.Crouching
	default:
		p.State = anim.Ground
	}
}

// updateFacing turns the body toward the move direction and keeps the
// aim angle for the torso overlay.
func (p *Player) updateFacing(dt float32) {
	if p.Dead {
		return
	}
	if p.Input.Move > 0.01 {
		p.Facing = 1
	} else if p.Input.Move < -0.01 {
		p.Facing = -1
	}
	target := float32(0)
	if p.Facing < 0 {
		target = math32.Pi
	}
	p.ModelYaw = qmath.TurnToward(p.ModelYaw, target, modelYawSpeed, dt)
	p.AimAngle = p.Input.Aim
}

// updateClocks advances the animation clocks, restarting the legs
// clock when the selected legs animation changes.
func (p *Player) updateClocks(dt float32) {
	p.animTime += dt
	p.shootTime += dt
	p.gestureTime += dt
	if p.painCooldown > 0 {
		p.painCooldown -= dt
	}

	legs := anim.LegsAnim(p.State, p.Moving(), p.MovingBackward())
	if legs != p.lastLegs {
		p.lastLegs = legs
		p.animTime = 0
	}
}

// Pose derives the frame selection and aim overlay for rendering.
func (p *Player) Pose(cfg *anim.Config, maxFrames int, dt float32) (legs, torso int, overlay anim.Overlay) {
	if p.Dead {
		death := cfg.Ranges[anim.BothDeath1+p.DeathAnim*2]
		frame := anim.FrameForAnim(death, p.animTime, maxFrames)
		return frame, frame, anim.Overlay{}
	}
	legs = cfg.LegsFrame(p.State, p.Moving(), p.MovingBackward(), p.animTime, maxFrames)
	if p.Input.Fire || p.shootTime < cfg.Ranges[anim.TorsoAttack].Duration() {
		torso = cfg.TorsoFrame(true, p.animTime, p.shootTime, maxFrames)
	} else {
		dur := cfg.Ranges[anim.TorsoGesture].Duration()
		gesturing, into := p.gesture.Update(p.gestureTime, dur)
		torso = cfg.GestureFrame(gesturing, p.animTime, into, maxFrames)
	}
	overlay = p.aim.Update(p.AimAngle, p.Flipped(), dt)
	return legs, torso, overlay
}

// die switches to a random death animation and schedules respawn.
func (p *Player) die(events *snd.Queue) {
	p.Dead = true
	p.DeathAnim = p.rng.Intn(3)
	p.animTime = 0
	p.respawnIn = respawnDelay
	if p.Health <= GibHealth {
		p.Gibbed = true
		events.Emit(snd.EventGib, p.Pos)
	} else {
		events.Emit(snd.EventDeath, p.Pos)
	}
}

// respawn resets the combat state at the given point.
func (p *Player) respawn(at vec.Vec3) {
	p.Pos = at
	p.Vel = vec.Vec3{}
	p.Health = SpawnHealth
	p.Armor = 0
	p.QuadTime = 0
	p.Dead = false
	p.Gibbed = false
	p.State = anim.Air
	p.animTime = 0
}
