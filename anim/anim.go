// SPDX-License-Identifier: GPL-2.0-or-later

// Package anim holds the per model animation range table and the
// animation selection state machine for composite player models.
package anim

// Animation slots in the fixed Quake3 animation.cfg order.
const (
	BothDeath1 = iota
	BothDead1
	BothDeath2
	BothDead2
	BothDeath3
	BothDead3
	TorsoGesture
	TorsoAttack
	TorsoAttack2
	TorsoDrop
	TorsoRaise
	TorsoStand
	TorsoStand2
	LegsWalkCr
	LegsWalk
	LegsRun
	LegsBack
	LegsSwim
	LegsJump
	LegsLand
	LegsJumpB
	LegsLandB
	LegsIdle
	LegsIdleCr
	LegsTurn

	NumAnimations
)

// legsStart is the first slot of the legs block. Legs frame indices
// may need re-basing relative to this block, see Parse.
const legsStart = LegsWalkCr

// Range is one animation's frame window.
// LoopingFrames == 0 plays once and holds the last frame, otherwise
// the tail LoopingFrames frames repeat after a single lead-in pass.
type Range struct {
	FirstFrame    int
	NumFrames     int
	LoopingFrames int
	FPS           int
}

// defaultRange stands in for slots missing from a short config.
var defaultRange = Range{FirstFrame: 0, NumFrames: 1, LoopingFrames: 0, FPS: 10}

// Config is the full 25 slot table for one player model.
type Config struct {
	Ranges [NumAnimations]Range
}

// FrameForAnim derives the frame index for the given elapsed time.
// maxFrames bounds the result against the frames the model actually
// has, since configs routinely promise more than an export contains.
func FrameForAnim(r Range, elapsed float32, maxFrames int) int {
	if maxFrames <= 0 {
		return 0
	}
	framesPassed := int(elapsed * float32(r.FPS))
	if framesPassed < 0 {
		framesPassed = 0
	}
	if r.LoopingFrames == 0 {
		last := r.NumFrames - 1
		if last < 0 {
			last = 0
		}
		if framesPassed > last {
			framesPassed = last
		}
		return min(r.FirstFrame+framesPassed, maxFrames-1)
	}
	loopLen := min(r.LoopingFrames, r.NumFrames)
	if loopLen < 1 {
		loopLen = 1
	}
	if framesPassed < r.NumFrames {
		return min(r.FirstFrame+framesPassed, maxFrames-1)
	}
	loopStart := r.FirstFrame + r.NumFrames - loopLen
	loopIndex := (framesPassed - r.NumFrames) % loopLen
	return min(loopStart+loopIndex, maxFrames-1)
}

// Duration returns the play time of one full pass in seconds.
func (r Range) Duration() float32 {
	if r.FPS == 0 {
		return 0
	}
	return float32(r.NumFrames) / float32(r.FPS)
}
