// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandline holds the command line flags. Flags override
// the config file.
package commandline

import (
	"flag"
	"fmt"
	"strconv"

	"goarena/config"
)

var (
	debug      bool
	fullscreen bool
	noSound    bool
	window     bool

	bots = boolInt{false, 1}

	height int
	width  int

	basedir    string
	configPath string
	arenaMap   string
	model      string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&fullscreen, "f", false, "")
	flag.BoolVar(&fullscreen, "fullscreen", false, "")
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")
	flag.BoolVar(&window, "window", false, "")
	flag.BoolVar(&window, "w", false, "")

	flag.Var(&bots, "bots", "Add bots, optional count")

	flag.IntVar(&height, "height", -1, "window height, negative is unset")
	flag.IntVar(&width, "width", -1, "window width, negative is unset")

	flag.StringVar(&basedir, "basedir", "", "asset directory")
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.StringVar(&arenaMap, "map", "", "arena map name")
	flag.StringVar(&model, "model", "", "player model name")
}

func ConfigPath() string {
	return configPath
}

// Apply overrides config file values with set flags.
func Apply(cfg *config.Config) {
	if width > 0 {
		cfg.Graphics.Width = width
	}
	if height > 0 {
		cfg.Graphics.Height = height
	}
	if fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if window {
		cfg.Graphics.Fullscreen = false
	}
	if noSound {
		cfg.Audio.Muted = true
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if bots.set {
		cfg.Game.Bots = bots.num
	}
	if basedir != "" {
		cfg.Game.BaseDir = basedir
	}
	if arenaMap != "" {
		cfg.Game.Map = arenaMap
	}
	if model != "" {
		cfg.Game.Model = model
	}
}
