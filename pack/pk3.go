// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads pk3 archives, which are plain zip files with
// game assets inside.
package pack

import (
	"archive/zip"
	"io/fs"

	"github.com/pkg/errors"
)

type Archive struct {
	r    *zip.ReadCloser
	name string
}

func Open(name string) (*Archive, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open pk3 %s", name)
	}
	return &Archive{r: r, name: name}, nil
}

func (a *Archive) String() string {
	return a.name
}

// Open implements fs.FS over the archive contents.
func (a *Archive) Open(name string) (fs.File, error) {
	return a.r.Open(name)
}

func (a *Archive) Close() error {
	return a.r.Close()
}
