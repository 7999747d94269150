// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "github.com/chewxy/math32"

// WrapPi changes an angle in radians to be within [-Pi,Pi)
func WrapPi(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// AngleMod changes an angle in radians to be within [0,2*Pi)
func AngleMod(a float32) float32 {
	return a - math32.Floor(a/(2*math32.Pi))*2*math32.Pi
}

// TurnToward moves current toward target by at most speed*dt, taking
// the short way around the circle.
func TurnToward(current, target, speed, dt float32) float32 {
	diff := WrapPi(target - current)
	max := speed * dt
	return WrapPi(current + Clamp(-max, diff, max))
}
