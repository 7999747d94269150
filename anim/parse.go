// SPDX-License-Identifier: GPL-2.0-or-later
package anim

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a Quake3 animation.cfg. Blank lines, // comments, the
// sex line and anything that does not tokenize to at least four
// integers are skipped without complaint, since config files in the
// wild contain all of those. Missing trailing slots get a safe
// default instead of failing the load.
func Parse(r io.Reader) (*Config, error) {
	var ranges []Range

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "sex") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var vals [4]int
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		ranges = append(ranges, Range{
			FirstFrame:    vals[0],
			NumFrames:     vals[1],
			LoopingFrames: vals[2],
			FPS:           vals[3],
		})
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read animation config")
	}

	applySkipOffset(ranges)

	cfg := &Config{}
	for i := range cfg.Ranges {
		if i < len(ranges) {
			cfg.Ranges[i] = ranges[i]
		} else {
			cfg.Ranges[i] = defaultRange
		}
	}
	return cfg, nil
}

// applySkipOffset re-bases the legs block. Some community re-exports
// store legs frames in a separate block offset from the torso block,
// while both parts index one shared frame buffer. The offset between
// the first legs slot and the torso gesture slot is subtracted from
// every legs slot, saturating at 0.
func applySkipOffset(ranges []Range) {
	if len(ranges) <= legsStart {
		return
	}
	skip := ranges[legsStart].FirstFrame - ranges[TorsoGesture].FirstFrame
	if skip <= 0 {
		return
	}
	for i := legsStart; i < len(ranges); i++ {
		ranges[i].FirstFrame -= skip
		if ranges[i].FirstFrame < 0 {
			ranges[i].FirstFrame = 0
		}
	}
}

// LoadFile reads the animation.cfg at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open animation config")
	}
	defer f.Close()
	return Parse(f)
}
