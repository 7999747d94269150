// SPDX-License-Identifier: GPL-2.0-or-later
package anim

import (
	"testing"

	"github.com/chewxy/math32"

	"goarena/rand"
)

func TestLegsAnimTable(t *testing.T) {
	cases := []struct {
		state    PlayerState
		moving   bool
		backward bool
		want     int
	}{
		{Air, false, false, LegsJump},
		{Air, true, true, LegsJump},
		{Crouching, true, false, LegsWalkCr},
		{Crouching, false, false, LegsIdleCr},
		{Ground, true, true, LegsBack},
		{Ground, true, false, LegsRun},
		{Ground, false, false, LegsIdle},
	}
	for _, c := range cases {
		got := LegsAnim(c.state, c.moving, c.backward)
		if got != c.want {
			t.Errorf("LegsAnim(%v,%v,%v) = %v want %v",
				c.state, c.moving, c.backward, got, c.want)
		}
	}
}

func TestTorsoAnim(t *testing.T) {
	if TorsoAnim(true) != TorsoAttack {
		t.Errorf("shooting torso is not TorsoAttack")
	}
	if TorsoAnim(false) != TorsoStand {
		t.Errorf("idle torso is not TorsoStand")
	}
}

func TestLegsRunScenario(t *testing.T) {
	cfg := &Config{}
	for i := range cfg.Ranges {
		cfg.Ranges[i] = defaultRange
	}
	cfg.Ranges[LegsRun] = Range{FirstFrame: 50, NumFrames: 8, LoopingFrames: 8, FPS: 15}
	got := cfg.LegsFrame(Ground, true, false, 0.733, 1000)
	if got != 52 {
		t.Errorf("running legs frame = %v want 52", got)
	}
}

func TestTorsoShootClockIndependent(t *testing.T) {
	cfg := &Config{}
	cfg.Ranges[TorsoAttack] = Range{FirstFrame: 130, NumFrames: 6, LoopingFrames: 0, FPS: 15}
	cfg.Ranges[TorsoStand] = Range{FirstFrame: 151, NumFrames: 1, LoopingFrames: 15, FPS: 20}
	// a long idle time must not advance the attack animation
	got := cfg.TorsoFrame(true, 100, 0, 1000)
	if got != 130 {
		t.Errorf("fresh attack frame = %v want 130", got)
	}
	got = cfg.TorsoFrame(false, 100, 0, 1000)
	if got != 151 {
		t.Errorf("idle frame = %v want 151", got)
	}
}

func TestGestureTimer(t *testing.T) {
	g := NewGesture(rand.New(1))
	const dur = 2.0

	if active, _ := g.Update(0, dur); active {
		t.Fatalf("gesture active at t=0")
	}
	// must fire somewhere in (5,8]
	var fired float32 = -1
	for now := float32(0); now < 9; now += 0.1 {
		if active, at := g.Update(now, dur); active {
			if at != 0 {
				t.Fatalf("first active tick reports time %v", at)
			}
			fired = now
			break
		}
	}
	if fired < 5 || fired > 8.01 {
		t.Fatalf("gesture fired at %v want within (5,8]", fired)
	}
	// stays active for its duration and reports elapsed time
	active, at := g.Update(fired+1, dur)
	if !active {
		t.Errorf("gesture not active mid-play")
	}
	if math32.Abs(at-1) > 1e-5 {
		t.Errorf("gesture time = %v want 1", at)
	}
	// done after the duration, re-arms at least 5s later
	if active, _ := g.Update(fired+dur+0.1, dur); active {
		t.Errorf("gesture still active after its duration")
	}
	if active, _ := g.Update(fired+dur+4.9, dur); active {
		t.Errorf("gesture re-fired before the 5s pause")
	}
}

func TestOverlayDeadZone(t *testing.T) {
	var a AimState
	// near-horizontal aim leaves the legs alone
	ov := a.Update(-0.2, false, 10)
	if ov.LegsYaw != 0 {
		t.Errorf("legs yaw = %v want 0 inside dead zone", ov.LegsYaw)
	}
}

func TestOverlayRateLimit(t *testing.T) {
	var a AimState
	// steep aim, tiny dt: legs move at most legsYawSpeed*dt
	ov := a.Update(-1.0, false, 0.01)
	if math32.Abs(ov.LegsYaw) > 6.0*0.01+1e-6 {
		t.Errorf("legs yaw %v exceeded rate limit", ov.LegsYaw)
	}
	// with plenty of time it settles on the clamped target
	ov = a.Update(-1.0, false, 10)
	if ov.LegsYaw > legsYawMax+1e-6 {
		t.Errorf("legs yaw %v exceeds max %v", ov.LegsYaw, float32(legsYawMax))
	}
	if ov.LegsYaw <= 0 {
		t.Errorf("legs yaw %v should be positive for upward aim", ov.LegsYaw)
	}
	if math32.Abs(ov.TorsoYaw-ov.LegsYaw*0.5) > 1e-6 {
		t.Errorf("torso yaw %v want half of legs yaw %v", ov.TorsoYaw, ov.LegsYaw)
	}
}

func TestOverlayPitchClamps(t *testing.T) {
	var a AimState
	ov := a.Update(-3.0, false, 10)
	if math32.Abs(ov.HeadPitch) > headPitchMax {
		t.Errorf("head pitch %v exceeds clamp", ov.HeadPitch)
	}
	if math32.Abs(ov.WeaponPitch) > weaponPitchMax {
		t.Errorf("weapon pitch %v exceeds clamp", ov.WeaponPitch)
	}
	if math32.Abs(ov.TorsoPitch) > torsoPitchMax {
		t.Errorf("torso pitch %v exceeds clamp", ov.TorsoPitch)
	}
	// weapon leads less than the head
	if math32.Abs(ov.WeaponPitch) > math32.Abs(ov.HeadPitch) {
		t.Errorf("weapon pitch %v leads head pitch %v", ov.WeaponPitch, ov.HeadPitch)
	}
}
