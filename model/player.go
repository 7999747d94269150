// SPDX-License-Identifier: GPL-2.0-or-later
package model

import (
	"bytes"
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"goarena/anim"
	"goarena/md3"
)

// Part is one body part of a composite player model.
type Part struct {
	Model    *md3.Model
	ID       ID
	Textures []string
}

// PlayerModel is a composite of up to four MD3 parts plus the shared
// animation table. Parts are optional: Quake3 community model packs
// are famously inconsistent, so a missing part degrades to not
// drawing it instead of failing the load.
type PlayerModel struct {
	Name   string
	Lower  *Part
	Upper  *Part
	Head   *Part
	Weapon *Part
	Config *anim.Config
}

// Parts returns the loaded parts in draw order.
func (p *PlayerModel) Parts() []*Part {
	var out []*Part
	for _, part := range []*Part{p.Lower, p.Upper, p.Head, p.Weapon} {
		if part != nil {
			out = append(out, part)
		}
	}
	return out
}

// IDs returns the handles of all loaded parts, used to invalidate
// downstream caches on a model switch.
func (p *PlayerModel) IDs() []ID {
	var out []ID
	for _, part := range p.Parts() {
		out = append(out, part.ID)
	}
	return out
}

// Loader loads player models from an asset filesystem laid out like
// Quake3's models/players tree.
type Loader struct {
	FS       fs.FS
	Registry *Registry
	Log      *zap.Logger
}

func (l *Loader) loadPart(dir, part string) *Part {
	name := path.Join(dir, part+".md3")
	b, err := fs.ReadFile(l.FS, name)
	if err != nil {
		l.Log.Warn("player model part missing",
			zap.String("part", part),
			zap.String("path", name),
			zap.Error(err))
		return nil
	}
	m, err := md3.Load(name, bytes.NewReader(b))
	if err != nil {
		l.Log.Warn("player model part unreadable",
			zap.String("path", name),
			zap.Error(err))
		return nil
	}
	p := &Part{
		Model: m,
		ID:    l.Registry.Add(m),
	}
	for _, mesh := range m.Meshes {
		for _, s := range mesh.Shaders {
			if s != "" {
				p.Textures = append(p.Textures, l.resolveTexture(dir, s))
			}
		}
	}
	return p
}

// resolveTexture maps a shader path from the model file to a file
// next to the model, since community skins rarely ship at the path
// baked into the export.
func (l *Loader) resolveTexture(dir, shaderPath string) string {
	clean := strings.ReplaceAll(shaderPath, "\\", "/")
	local := path.Join(dir, path.Base(clean))
	if _, err := fs.Stat(l.FS, local); err == nil {
		return local
	}
	return clean
}

// LoadPlayer loads lower/upper/head and animation.cfg for the named
// model. It fails only if no part at all could be loaded.
func (l *Loader) LoadPlayer(name string) (*PlayerModel, error) {
	dir := path.Join("models", "players", name)
	pm := &PlayerModel{
		Name:  name,
		Lower: l.loadPart(dir, "lower"),
		Upper: l.loadPart(dir, "upper"),
		Head:  l.loadPart(dir, "head"),
	}
	if pm.Lower == nil && pm.Upper == nil && pm.Head == nil {
		return nil, errors.Errorf("player model %q: no parts found in %s", name, dir)
	}

	cfg, err := l.loadAnimConfig(path.Join(dir, "animation.cfg"))
	if err != nil {
		l.Log.Warn("animation config missing, using defaults",
			zap.String("model", name), zap.Error(err))
		cfg, _ = anim.Parse(strings.NewReader(""))
	}
	pm.Config = cfg
	return pm, nil
}

func (l *Loader) loadAnimConfig(name string) (*anim.Config, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return anim.Parse(f)
}

// LoadWeapon loads a weapon model for tag_weapon attachment.
func (l *Loader) LoadWeapon(name string) *Part {
	dir := path.Join("models", "weapons", name)
	return l.loadPart(dir, name)
}

// Release removes all parts from the registry. The caller must also
// invalidate silhouette and buffer caches with the returned IDs.
func (l *Loader) Release(pm *PlayerModel) []ID {
	ids := pm.IDs()
	for _, id := range ids {
		l.Registry.Remove(id)
	}
	return ids
}
