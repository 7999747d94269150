// SPDX-License-Identifier: GPL-2.0-or-later

// Package gametime tracks wall clock frame timing for the render
// loop. The simulation itself steps on a fixed tick and only consumes
// the measured frame time through an accumulator.
package gametime

import (
	"time"

	"goarena/math"
)

var startTime = time.Now()

type GameTime struct {
	time       float64
	oldTime    float64
	frameTime  float64
	frameCount int
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) FrameIncrease()     { h.frameCount++ }

// UpdateTime advances the clock. Returns false if rendering now would
// exceed maxFPS. The frame time is clamped so a debugger stall or a
// window drag does not turn into a huge simulation step.
func (h *GameTime) UpdateTime(maxFPS float64) bool {
	h.time = time.Since(startTime).Seconds()
	fps := math.Clamp(10.0, maxFPS, 1000.0)
	if h.time-h.oldTime < 1/fps {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time
	h.frameTime = math.Clamp(0.001, h.frameTime, 0.1)
	return true
}
