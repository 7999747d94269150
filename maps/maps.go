// SPDX-License-Identifier: GPL-2.0-or-later

// Package maps loads TMX arena levels: a solid tile grid for
// movement, plus spawn points, jump pads and lights from object
// layers. One tile is one world unit, the TMX y axis is flipped so
// y = 0 is the arena floor.
package maps

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"goarena/math/vec"
)

const tileLayer = "tiles"

// JumpPad launches players that touch it.
type JumpPad struct {
	Pos   vec.Vec3
	Force vec.Vec3
}

// Light is a point light placed by the map editor.
type Light struct {
	Pos     vec.Vec3
	Color   [3]float32
	Radius  float32
	Flicker float32 // 0 = steady
}

// Arena is one loaded level.
type Arena struct {
	Name   string
	Width  int
	Height int

	solid []bool

	Spawns   []vec.Vec3
	JumpPads []JumpPad
	Lights   []Light
}

// SolidAt answers the tile collision query. Points outside the grid
// are open, the floor at y = 0 is handled by the physics itself.
func (a *Arena) SolidAt(x, y float32) bool {
	cx, cy := int(x), int(y)
	if x < 0 || y < 0 || cx >= a.Width || cy >= a.Height {
		return false
	}
	return a.solid[cy*a.Width+cx]
}

// toWorld converts TMX pixel coordinates to world units.
func (a *Arena) toWorld(m *tiled.Map, x, y float64) vec.Vec3 {
	return vec.Vec3{
		X: float32(x / float64(m.TileWidth)),
		Y: float32(a.Height) - float32(y/float64(m.TileHeight)),
	}
}

// Load parses a TMX level. Unknown object types are logged and
// skipped so maps stay forward compatible.
func Load(fsys fs.FS, path string, log *zap.Logger) (*Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrapf(err, "load TMX %s", path)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(path, ".tmx"),
		Width:  m.Width,
		Height: m.Height,
		solid:  make([]bool, m.Width*m.Height),
	}

	var found bool
	for _, layer := range m.Layers {
		if layer.Name != tileLayer {
			continue
		}
		found = true
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if layer.Tiles[y*m.Width+x].IsNil() {
					continue
				}
				// TMX rows run top down.
				wy := m.Height - y - 1
				a.solid[wy*a.Width+x] = true
			}
		}
	}
	if !found {
		return nil, errors.Errorf("%s: no %q layer", path, tileLayer)
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "spawns":
			for _, o := range og.Objects {
				a.Spawns = append(a.Spawns, a.toWorld(m, o.X, o.Y))
			}
		case "jumppads":
			for _, o := range og.Objects {
				a.JumpPads = append(a.JumpPads, JumpPad{
					Pos: a.toWorld(m, o.X, o.Y),
					Force: vec.Vec3{
						X: float32(o.Properties.GetFloat("fx")),
						Y: float32(o.Properties.GetFloat("fy")),
					},
				})
			}
		case "lights":
			for _, o := range og.Objects {
				l := Light{
					Pos:     a.toWorld(m, o.X, o.Y),
					Color:   parseColor(o.Properties.GetString("color")),
					Radius:  float32(o.Properties.GetFloat("radius")),
					Flicker: float32(o.Properties.GetFloat("flicker")),
				}
				if l.Radius <= 0 {
					l.Radius = 5
				}
				a.Lights = append(a.Lights, l)
			}
		default:
			log.Warn("unknown object group",
				zap.String("map", path),
				zap.String("group", og.Name))
		}
	}

	log.Info("arena loaded",
		zap.String("map", path),
		zap.Int("spawns", len(a.Spawns)),
		zap.Int("lights", len(a.Lights)))
	return a, nil
}

// parseColor reads a #rrggbb hex triple, defaulting to white.
func parseColor(s string) [3]float32 {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 8 {
		s = s[2:] // Tiled stores #aarrggbb
	}
	if len(s) != 6 {
		return [3]float32{1, 1, 1}
	}
	var c [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]float32{1, 1, 1}
		}
		c[i] = float32(v) / 255
	}
	return c
}
