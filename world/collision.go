// SPDX-License-Identifier: GPL-2.0-or-later
package world

import (
	"github.com/chewxy/math32"

	"goarena/math/vec"
)

// SolidFunc answers whether the world is solid at a point. Tile cells
// are one world unit; y = 0 is the arena floor. A nil SolidFunc means
// floor only.
type SolidFunc func(x, y float32) bool

const groundEps = 0.01

// resolveVertical lands a falling body on the floor or on the top of
// a solid tile and reports whether it is standing. Horizontal
// movement is not blocked by tiles, the arena layouts only use them
// as platforms.
func resolveVertical(pos, vel *vec.Vec3, solid SolidFunc) bool {
	if pos.Y <= 0 {
		pos.Y = 0
		if vel.Y < 0 {
			vel.Y = 0
		}
		return true
	}
	if vel.Y > 0 || solid == nil {
		return false
	}
	probe := pos.Y - groundEps
	if !solid(pos.X, probe) {
		return false
	}
	pos.Y = math32.Floor(probe) + 1
	vel.Y = 0
	return true
}

// groundBelow finds the landing height under a point, used to settle
// dropped items. Scans down cell by cell to the floor.
func groundBelow(x, y float32, solid SolidFunc) float32 {
	if solid != nil {
		for cy := math32.Floor(y); cy > 0; cy-- {
			if solid(x, cy-groundEps) {
				return cy
			}
		}
	}
	return 0
}
