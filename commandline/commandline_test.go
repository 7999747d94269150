// SPDX-License-Identifier: GPL-2.0-or-later
package commandline

import (
	"flag"
	"testing"

	"goarena/config"
)

func TestBoolInt(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := boolInt{false, 4}
	b := boolInt{false, 5}
	c := boolInt{true, 6}
	d := boolInt{false, 7}
	e := boolInt{false, 8}
	f := boolInt{true, 9}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	flags.Var(&d, "d", "usage")
	flags.Var(&e, "e", "usage")
	flags.Var(&f, "f", "usage")
	if err := flags.Parse([]string{"-a", "-b=3", "-e=true", "-f=false"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if b.set != true {
		t.Errorf("b.set = %v", b.set)
	}
	if c.set != true {
		t.Errorf("c.set = %v", c.set)
	}
	if d.set != false {
		t.Errorf("d.set = %v", d.set)
	}
	if e.set != true {
		t.Errorf("e.set = %v", e.set)
	}
	if f.set != false {
		t.Errorf("f.set = %v", f.set)
	}
	if a.num != 4 {
		t.Errorf("a.num = %v", a.num)
	}
	if b.num != 3 {
		t.Errorf("b.num = %v", b.num)
	}
	if c.num != 6 {
		t.Errorf("c.num = %v", c.num)
	}
	if d.num != 7 {
		t.Errorf("d.num = %v", d.num)
	}
}

func TestApply(t *testing.T) {
	cfg := config.Default()
	width = 1920
	height = -1
	fullscreen = true
	noSound = true
	bots = boolInt{true, 3}
	model = "grunt"
	Apply(cfg)

	if cfg.Graphics.Width != 1920 {
		t.Errorf("width = %v", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != config.Default().Graphics.Height {
		t.Errorf("unset height overrode config: %v", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("fullscreen not applied")
	}
	if !cfg.Audio.Muted {
		t.Error("nosound not applied")
	}
	if cfg.Game.Bots != 3 {
		t.Errorf("bots = %v", cfg.Game.Bots)
	}
	if cfg.Game.Model != "grunt" {
		t.Errorf("model = %v", cfg.Game.Model)
	}
	if cfg.Game.Map != "arena" {
		t.Errorf("unset map overrode config: %v", cfg.Game.Map)
	}
}
