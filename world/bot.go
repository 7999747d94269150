// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"goarena/rand"
)

// Bot steers one player with a simple chase and shoot policy.
type Bot struct {
	ID uuid.UUID

	rng    *rand.Generator
	jumpIn float32
}

func NewBot(p *Player, rng *rand.Generator) *Bot {
	return &Bot{
		ID:     p.ID,
		rng:    rng,
		jumpIn: 1 + rng.Float32()*2,
	}
}

func (w *World) playerByID(id uuid.UUID) *Player {
	for _, p := range w.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// nearestTarget picks the closest living other player.
func (b *Bot) nearestTarget(w *World, self *Player) *Player {
	var best *Player
	bestDist := float32(math32.MaxFloat32)
	for _, p := range w.Players {
		if p.ID == b.ID || p.Dead {
			continue
		}
		d := math32.Abs(p.Pos.X - self.Pos.X)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// Think writes the next tick's input for the bot's player. Chase the
// nearest player, aim at them, fire inside weapon range, hop over
// obstacles and height differences.
func (b *Bot) Think(w *World, dt float32) {
	self := w.playerByID(b.ID)
	if self == nil || self.Dead {
		return
	}
	in := Input{Weapon: self.Weapon}

	target := b.nearestTarget(w, self)
	if target == nil {
		self.Input = in
		return
	}

	dx := target.Pos.X - self.Pos.X
	dy := target.Pos.Y - self.Pos.Y

	// keep a little fighting distance so splash weapons do not gib
	// the bot itself
	const standoff = 4
	if dx > standoff {
		in.Move = 1
	} else if dx < -standoff {
		in.Move = -1
	}

	dist := math32.Abs(dx)
	in.Aim = qclampAim(math32.Atan2(dy, dist))
	in.Fire = dist < 18 && math32.Abs(dy) < 6

	b.jumpIn -= dt
	blocked := in.Move != 0 && w.Solid != nil &&
		w.Solid(self.Pos.X+in.Move*1.2, self.Pos.Y+0.5)
	if b.jumpIn <= 0 || blocked || dy > 1.5 {
		in.Jump = true
		b.jumpIn = 1 + b.rng.Float32()*2
	}

	self.Input = in
}

func qclampAim(a float32) float32 {
	const limit = math32.Pi / 3
	if a > limit {
		return limit
	}
	if a < -limit {
		return -limit
	}
	return a
}
