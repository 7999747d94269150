// SPDX-License-Identifier: GPL-2.0-or-later
package anim

import (
	"github.com/chewxy/math32"

	qmath "goarena/math"
)

const (
	legsYawDeadZone = 0.3
	legsYawRamp     = 1.2
	legsYawMax      = 0.5
	legsYawSpeed    = 6.0 // rad/s follow rate

	torsoYawShare   = 0.5
	torsoRollShare  = -0.25
	torsoPitchGain  = 0.3
	torsoPitchMax   = 0.6
	headPitchMax    = 1.2
	weaponPitchGain = 0.7
	weaponPitchMax  = 1.0
)

// Overlay is the set of procedural rotations applied on top of the
// resolved tag chain, in the model's native coordinates (z up,
// x forward, y left).
type Overlay struct {
	LegsYaw     float32
	TorsoYaw    float32
	TorsoPitch  float32
	TorsoRoll   float32
	HeadPitch   float32
	WeaponPitch float32
}

// AimState carries the rate limited legs yaw between frames so the
// legs follow the aim instead of snapping.
type AimState struct {
	legsYaw float32
}

// Update derives the per part overlay from the aim angle. flip marks
// a character that faces -x, which mirrors the pitch.
func (a *AimState) Update(aimAngle float32, flip bool, dt float32) Overlay {
	var pitch float32
	if flip {
		pitch = qmath.WrapPi(math32.Pi + aimAngle)
	} else {
		pitch = -aimAngle
	}
	effective := pitch
	if flip {
		effective = -pitch
	}

	var target float32
	if math32.Abs(effective) > legsYawDeadZone {
		intensity := (math32.Abs(effective) - legsYawDeadZone) / legsYawRamp
		if intensity > 1 {
			intensity = 1
		}
		raw := math32.Copysign(intensity*legsYawRamp, effective)
		target = qmath.Clamp(-legsYawMax, raw, legsYawMax)
	}
	a.legsYaw = qmath.TurnToward(a.legsYaw, target, legsYawSpeed, dt)

	return Overlay{
		LegsYaw:     a.legsYaw,
		TorsoYaw:    a.legsYaw * torsoYawShare,
		TorsoRoll:   effective * torsoRollShare,
		TorsoPitch:  qmath.Clamp(-torsoPitchMax, pitch*torsoPitchGain, torsoPitchMax),
		HeadPitch:   qmath.Clamp(-headPitchMax, pitch, headPitchMax),
		WeaponPitch: qmath.Clamp(-weaponPitchMax, pitch*weaponPitchGain, weaponPitchMax),
	}
}

// LegsYaw exposes the current follow angle, mainly for tests.
func (a *AimState) CurrentLegsYaw() float32 {
	return a.legsYaw
}
