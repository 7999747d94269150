// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.6-core/gl"
	"go.uber.org/zap"

	"goarena/glh"
)

// textureManager caches skin textures by asset path. Load failures
// are logged once and resolve to a flat white fallback so a missing
// skin never drops the mesh.
type textureManager struct {
	log    *zap.Logger
	fsys   fs.FS
	byPath map[string]glh.Texture
	white  glh.Texture
}

func newTextureManager(log *zap.Logger, fsys fs.FS) *textureManager {
	tm := &textureManager{
		log:    log,
		fsys:   fsys,
		byPath: make(map[string]glh.Texture),
	}
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.Pix[0], white.Pix[1], white.Pix[2], white.Pix[3] = 255, 255, 255, 255
	tm.white = upload(white)
	return tm
}

func upload(img *image.NRGBA) glh.Texture {
	t := glh.NewTexture2D()
	t.Bind()
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return t
}

func (tm *textureManager) get(path string) glh.Texture {
	if path == "" {
		return tm.white
	}
	if t, ok := tm.byPath[path]; ok {
		return t
	}
	img, err := tm.open(path)
	if err != nil {
		tm.log.Warn("skin texture missing",
			zap.String("path", path),
			zap.Error(err))
		tm.byPath[path] = tm.white
		return tm.white
	}
	// GL samples with t up, images store rows top down.
	t := upload(imaging.FlipV(img))
	tm.byPath[path] = t
	return t
}

func (tm *textureManager) open(path string) (image.Image, error) {
	f, err := tm.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imaging.Decode(f)
}
