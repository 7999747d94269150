// SPDX-License-Identifier: GPL-2.0-or-later
package anim

import (
	"goarena/rand"
)

// PlayerState is the movement state fed in by the physics layer.
type PlayerState int

const (
	Ground PlayerState = iota
	Air
	Crouching
)

// LegsAnim selects the legs animation slot for the given movement
// state.
func LegsAnim(state PlayerState, moving, backward bool) int {
	switch state {
	case Air:
		return LegsJump
	case Crouching:
		if moving {
			return LegsWalkCr
		}
		return LegsIdleCr
	default:
		if backward {
			return LegsBack
		}
		if moving {
			return LegsRun
		}
		return LegsIdle
	}
}

// TorsoAnim selects the torso animation slot. The attack animation
// runs on its own clock, reset when a shot is fired, so retriggering
// does not jitter against the idle clock.
func TorsoAnim(shooting bool) int {
	if shooting {
		return TorsoAttack
	}
	return TorsoStand
}

// LegsFrame resolves the legs frame for the given state.
func (c *Config) LegsFrame(state PlayerState, moving, backward bool, elapsed float32, maxFrames int) int {
	return FrameForAnim(c.Ranges[LegsAnim(state, moving, backward)], elapsed, maxFrames)
}

// TorsoFrame resolves the torso frame. shootTime is the time since
// the last shot and only read while shooting.
func (c *Config) TorsoFrame(shooting bool, elapsed, shootTime float32, maxFrames int) int {
	if shooting {
		return FrameForAnim(c.Ranges[TorsoAttack], shootTime, maxFrames)
	}
	return FrameForAnim(c.Ranges[TorsoStand], elapsed, maxFrames)
}

// GestureFrame resolves the torso frame for idling bystanders, using
// the gesture animation while one is active.
func (c *Config) GestureFrame(gesturing bool, elapsed, gestureTime float32, maxFrames int) int {
	if gesturing {
		return FrameForAnim(c.Ranges[TorsoGesture], gestureTime, maxFrames)
	}
	return FrameForAnim(c.Ranges[TorsoStand], elapsed, maxFrames)
}

const (
	gesturePauseMin  = 5
	gesturePauseSpan = 3
)

// Gesture triggers the torso gesture on a randomized timer: once the
// previous gesture has played out, the next one fires after
// 5 + rand(3) seconds.
type Gesture struct {
	rng   *rand.Generator
	next  float32
	until float32
	start float32
}

func NewGesture(rng *rand.Generator) *Gesture {
	g := &Gesture{rng: rng}
	g.next = gesturePauseMin + g.rng.Float32()*gesturePauseSpan
	return g
}

// Update advances the timer. duration is the gesture animation's play
// time for the current model. It reports whether a gesture is active
// and the time into it.
func (g *Gesture) Update(now, duration float32) (bool, float32) {
	if now < g.until {
		return true, now - g.start
	}
	if now >= g.next {
		g.start = now
		g.until = now + duration
		g.next = g.until + gesturePauseMin + g.rng.Float32()*gesturePauseSpan
		return true, 0
	}
	return false, 0
}
