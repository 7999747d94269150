// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func close(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestWrapInside(t *testing.T) {
	var a float32 = 1.5
	got := WrapPi(a)
	if !close(got, a) {
		t.Errorf("WrapPi(%v) = %v want %v", a, got, a)
	}
}

func TestWrapOver(t *testing.T) {
	a := 1.5 + 2*math32.Pi
	got := WrapPi(a)
	if !close(got, 1.5) {
		t.Errorf("WrapPi(%v) = %v want 1.5", a, got)
	}
}

func TestWrapUnder(t *testing.T) {
	a := -1.5 - 2*math32.Pi
	got := WrapPi(a)
	if !close(got, -1.5) {
		t.Errorf("WrapPi(%v) = %v want -1.5", a, got)
	}
}

func TestAngleModNegative(t *testing.T) {
	got := AngleMod(-math32.Pi / 2)
	want := 3 * math32.Pi / 2
	if !close(got, want) {
		t.Errorf("AngleMod(-Pi/2) = %v want %v", got, want)
	}
}

func TestTurnTowardLimits(t *testing.T) {
	got := TurnToward(0, 1, 6, 0.05)
	if !close(got, 0.3) {
		t.Errorf("TurnToward(0,1,6,0.05) = %v want 0.3", got)
	}
}

func TestTurnTowardReaches(t *testing.T) {
	got := TurnToward(0.29, 0.3, 6, 0.05)
	if !close(got, 0.3) {
		t.Errorf("TurnToward(0.29,0.3,6,0.05) = %v want 0.3", got)
	}
}

func TestTurnTowardShortWay(t *testing.T) {
	// crossing the -Pi/Pi seam must not go the long way around
	got := TurnToward(math32.Pi-0.1, -math32.Pi+0.1, 6, 0.01)
	if got < math32.Pi-0.1 && got > 0 {
		t.Errorf("TurnToward went the long way: %v", got)
	}
}
