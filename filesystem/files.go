// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem layers the game's asset sources: loose files in
// the base directory shadow pk3 archives, later archives shadow
// earlier ones.
package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"goarena/pack"
)

type GameFS struct {
	layers []fs.FS
	closer []io.Closer
}

// Game builds the lookup stack for a base directory. Archives are
// mounted in reverse alphabetical order so that patch archives with
// later names win.
func Game(baseDir string, log *zap.Logger) *GameFS {
	g := &GameFS{
		layers: []fs.FS{os.DirFS(baseDir)},
	}
	paks, _ := filepath.Glob(filepath.Join(baseDir, "*.pk3"))
	sort.Sort(sort.Reverse(sort.StringSlice(paks)))
	for _, name := range paks {
		a, err := pack.Open(name)
		if err != nil {
			log.Warn("skipping unreadable pk3",
				zap.String("pk3", name),
				zap.Error(err))
			continue
		}
		g.layers = append(g.layers, a)
		g.closer = append(g.closer, a)
		log.Info("mounted pk3", zap.String("pk3", name))
	}
	return g
}

// Open implements fs.FS. The first layer that has the file wins.
func (g *GameFS) Open(name string) (fs.File, error) {
	for _, l := range g.layers {
		f, err := l.Open(name)
		if err == nil {
			return f, nil
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (g *GameFS) ReadFile(name string) ([]byte, error) {
	f, err := g.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (g *GameFS) Exists(name string) bool {
	f, err := g.Open(name)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func (g *GameFS) Close() {
	for _, c := range g.closer {
		c.Close()
	}
}
