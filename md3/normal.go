// SPDX-License-Identifier: GPL-2.0-or-later
package md3

import "github.com/chewxy/math32"

// DecodedNormal expands the lat/lng packed vertex normal to a unit
// vector in model space.
func (v Vertex) DecodedNormal() [3]float32 {
	lat := float32((v.Normal>>8)&0xff) * (2 * math32.Pi / 255)
	lng := float32(v.Normal&0xff) * (2 * math32.Pi / 255)
	return [3]float32{
		math32.Cos(lat) * math32.Sin(lng),
		math32.Sin(lat) * math32.Sin(lng),
		math32.Cos(lng),
	}
}
