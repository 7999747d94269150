// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd turns simulation events into positional audio. The
// world fills a Queue during its tick, the frame loop drains it into
// the speaker once per frame.
package snd

import (
	"io/fs"
	"path"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"goarena/math/vec"
)

const (
	sampleRate = beep.SampleRate(22050)

	// clipDistance is where a sound fades to silence, in world units.
	clipDistance = 30.0
)

var eventFiles = map[EventKind]string{
	EventExplosion:     "explosion.wav",
	EventPain:          "pain.wav",
	EventDeath:         "death.wav",
	EventGib:           "gib.wav",
	EventJump:          "jump.wav",
	EventFire:          "fire.wav",
	EventWeaponPickup:  "weapon_pickup.wav",
	EventItemPickup:    "item_pickup.wav",
	EventPowerupPickup: "powerup_pickup.wav",
}

// System owns the speaker and the decoded sound effects. Missing wav
// files are logged at load and their events silently dropped.
type System struct {
	log      *zap.Logger
	buffers  map[EventKind]*beep.Buffer
	listener vec.Vec3
	volume   float64
}

// NewSystem opens the speaker and preloads all event sounds from the
// asset filesystem.
func NewSystem(log *zap.Logger, fsys fs.FS, volume float64) (*System, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}
	s := &System{
		log:     log,
		buffers: make(map[EventKind]*beep.Buffer),
		volume:  volume,
	}
	for kind, name := range eventFiles {
		n := path.Join("sound", name)
		buf, err := loadWav(fsys, n)
		if err != nil {
			log.Warn("sound missing", zap.String("path", n), zap.Error(err))
			continue
		}
		s.buffers[kind] = buf
	}
	return s, nil
}

func loadWav(fsys fs.FS, name string) (*beep.Buffer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	return buf, nil
}

// SetListener moves the attenuation reference point, normally the
// camera.
func (s *System) SetListener(pos vec.Vec3) {
	s.listener = pos
}

// gain is linear distance attenuation toward clipDistance.
func (s *System) gain(pos vec.Vec3) float64 {
	d := vec.Sub(pos, s.listener).Length()
	g := 1 - float64(d)/clipDistance
	if g < 0 {
		g = 0
	}
	return g * s.volume
}

// Play starts one event sound, attenuated by distance.
func (s *System) Play(ev Event) {
	buf, ok := s.buffers[ev.Kind]
	if !ok {
		return
	}
	g := s.gain(ev.Pos)
	if g <= 0 {
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: buf.Streamer(0, buf.Len()),
		Gain:     g - 1,
	})
}

// Drain plays everything the simulation queued this frame.
func (s *System) Drain(q *Queue) {
	for _, ev := range q.Drain() {
		s.Play(ev)
	}
}

// Suspend pauses playback when the window loses focus.
func (s *System) Suspend() {
	speaker.Suspend()
}

// Resume restarts playback on focus gain.
func (s *System) Resume() {
	speaker.Resume()
}

// Close shuts the speaker down.
func (s *System) Close() {
	speaker.Close()
}
