// SPDX-License-Identifier: GPL-2.0-or-later
package snd

import (
	"goarena/math/vec"
)

// EventKind names a game sound.
type EventKind int

const (
	EventExplosion EventKind = iota
	EventPain
	EventDeath
	EventGib
	EventJump
	EventFire
	EventWeaponPickup
	EventItemPickup
	EventPowerupPickup
	numEventKinds
)

// Event is one positional sound request raised by the simulation.
type Event struct {
	Kind EventKind
	Pos  vec.Vec3
}

// Queue collects sound events during a simulation tick. The renderer
// loop drains it once per frame. Single threaded, like the rest of
// the simulation.
type Queue struct {
	events []Event
}

// Emit appends an event.
func (q *Queue) Emit(kind EventKind, pos vec.Vec3) {
	q.events = append(q.events, Event{Kind: kind, Pos: pos})
}

// Drain returns the pending events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
