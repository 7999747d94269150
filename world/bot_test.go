// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"testing"

	"goarena/math/vec"
	"goarena/rand"
)

func TestBotChasesNearestTarget(t *testing.T) {
	w := testWorld()
	self := w.AddPlayer("bot")
	self.Pos = vec.Vec3{X: 50, Y: 1}
	far := w.AddPlayer("far")
	far.Pos = vec.Vec3{X: 90, Y: 1}
	near := w.AddPlayer("near")
	near.Pos = vec.Vec3{X: 60, Y: 1}

	b := NewBot(self, rand.New(7))
	b.Think(w, dt)
	if self.Input.Move != 1 {
		t.Errorf("move toward target: want 1 got %v", self.Input.Move)
	}

	near.Pos.X = 40
	b.Think(w, dt)
	if self.Input.Move != -1 {
		t.Errorf("move toward nearest: want -1 got %v", self.Input.Move)
	}
}

func TestBotHoldsStandoff(t *testing.T) {
	w := testWorld()
	self := w.AddPlayer("bot")
	self.Pos = vec.Vec3{X: 50, Y: 1}
	other := w.AddPlayer("other")
	other.Pos = vec.Vec3{X: 52, Y: 1}

	b := NewBot(self, rand.New(7))
	b.Think(w, dt)
	if self.Input.Move != 0 {
		t.Errorf("inside standoff: want no move got %v", self.Input.Move)
	}
	if !self.Input.Fire {
		t.Error("inside weapon range: want fire")
	}
}

func TestBotHoldsFireOutOfRange(t *testing.T) {
	w := testWorld()
	self := w.AddPlayer("bot")
	self.Pos = vec.Vec3{X: 50, Y: 1}
	other := w.AddPlayer("other")
	other.Pos = vec.Vec3{X: 80, Y: 1}

	b := NewBot(self, rand.New(7))
	b.Think(w, dt)
	if self.Input.Fire {
		t.Error("out of range: want no fire")
	}
}

func TestBotIgnoresDeadTargets(t *testing.T) {
	w := testWorld()
	self := w.AddPlayer("bot")
	self.Pos = vec.Vec3{X: 50, Y: 1}
	other := w.AddPlayer("other")
	other.Pos = vec.Vec3{X: 60, Y: 1}
	other.Dead = true

	b := NewBot(self, rand.New(7))
	b.Think(w, dt)
	if self.Input.Move != 0 || self.Input.Fire {
		t.Errorf("no living target: want idle input, got %+v", self.Input)
	}
}

func TestBotJumpsWhenBlocked(t *testing.T) {
	w := testWorld()
	w.Solid = func(x, y float32) bool { return x > 51 && y < 2 }
	self := w.AddPlayer("bot")
	self.Pos = vec.Vec3{X: 50, Y: 1}
	other := w.AddPlayer("other")
	other.Pos = vec.Vec3{X: 60, Y: 1}

	b := NewBot(self, rand.New(7))
	b.jumpIn = 100
	b.Think(w, dt)
	if !self.Input.Jump {
		t.Error("blocked by wall: want jump")
	}
}
