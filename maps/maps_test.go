// SPDX-License-Identifier: GPL-2.0-or-later
package maps

import (
	"os"
	"testing"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

func loadTestArena(t *testing.T) *Arena {
	t.Helper()
	a, err := Load(os.DirFS("."), "testdata/arena.tmx", zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return a
}

func TestLoadSolidGrid(t *testing.T) {
	a := loadTestArena(t)
	if a.Width != 4 || a.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", a.Width, a.Height)
	}
	cases := []struct {
		x, y float32
		want bool
	}{
		{0.5, 0.5, true}, // bottom left pair
		{1.5, 0.5, true},
		{2.5, 0.5, false},
		{2.5, 1.5, true}, // middle right pair
		{3.5, 1.5, true},
		{0.5, 1.5, false},
		{0.5, 2.5, false}, // top row empty
		{-1, 0.5, false},  // outside
		{9, 9, false},
	}
	for _, c := range cases {
		if got := a.SolidAt(c.x, c.y); got != c.want {
			t.Errorf("SolidAt(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestLoadObjects(t *testing.T) {
	a := loadTestArena(t)

	if len(a.Spawns) != 1 {
		t.Fatalf("len(Spawns) = %d, want 1", len(a.Spawns))
	}
	if s := a.Spawns[0]; s.X != 0.5 || s.Y != 0.5 {
		t.Errorf("spawn = %v, want (0.5, 0.5)", s)
	}

	if len(a.Lights) != 1 {
		t.Fatalf("len(Lights) = %d, want 1", len(a.Lights))
	}
	l := a.Lights[0]
	if l.Pos.X != 2 || l.Pos.Y != 2.5 {
		t.Errorf("light pos = %v, want (2, 2.5)", l.Pos)
	}
	if l.Radius != 6 || l.Flicker != 0.5 {
		t.Errorf("light radius/flicker = %v/%v, want 6/0.5", l.Radius, l.Flicker)
	}
	if l.Color[0] != 1 || math32.Abs(l.Color[1]-0.5) > 0.01 || l.Color[2] != 0 {
		t.Errorf("light color = %v, want orange", l.Color)
	}

	if len(a.JumpPads) != 1 {
		t.Fatalf("len(JumpPads) = %d, want 1", len(a.JumpPads))
	}
	jp := a.JumpPads[0]
	if jp.Pos.X != 3 || jp.Pos.Y != 0.5 {
		t.Errorf("jump pad pos = %v, want (3, 0.5)", jp.Pos)
	}
	if jp.Force.X != 1.5 || jp.Force.Y != 8 {
		t.Errorf("jump pad force = %v, want (1.5, 8)", jp.Force)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want [3]float32
	}{
		{"#ff0000", [3]float32{1, 0, 0}},
		{"#ff00ff00", [3]float32{0, 1, 0}}, // Tiled's #aarrggbb form
		{"", [3]float32{1, 1, 1}},
		{"nonsense", [3]float32{1, 1, 1}},
	}
	for _, c := range cases {
		if got := parseColor(c.in); got != c.want {
			t.Errorf("parseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
