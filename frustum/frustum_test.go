// SPDX-License-Identifier: GPL-2.0-or-later
package frustum

import (
	"testing"

	"github.com/chewxy/math32"

	"goarena/math/mtx"
	"goarena/math/vec"
)

// testFrustum is a 90 degree square frustum looking down -z from the
// origin, near 0.1 far 100.
func testFrustum() *Frustum {
	vp := mtx.Perspective(math32.Pi/2, 1, 0.1, 100)
	vp.Mul(mtx.LookAt(vec.Vec3{}, vec.Vec3{Z: -1}, vec.Vec3{Y: 1}))
	return FromViewProj(vp)
}

func TestContainsPoint(t *testing.T) {
	f := testFrustum()
	cases := []struct {
		name string
		p    vec.Vec3
		want bool
	}{
		{"center", vec.Vec3{Z: -5}, true},
		{"behind camera", vec.Vec3{Z: 5}, false},
		{"outside right", vec.Vec3{X: 10, Z: -5}, false},
		{"inside right edge", vec.Vec3{X: 4, Z: -5}, true},
		{"past far", vec.Vec3{Z: -150}, false},
		{"before near", vec.Vec3{Z: -0.05}, false},
	}
	for _, c := range cases {
		if got := f.ContainsPoint(c.p); got != c.want {
			t.Errorf("%s: ContainsPoint(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestContainsSphere(t *testing.T) {
	f := testFrustum()
	// Center outside the right plane but the sphere pokes in.
	if !f.ContainsSphere(vec.Vec3{X: 6, Z: -5}, 2) {
		t.Error("overlapping sphere culled")
	}
	if f.ContainsSphere(vec.Vec3{X: 20, Z: -5}, 2) {
		t.Error("distant sphere not culled")
	}
	if !f.ContainsSphere(vec.Vec3{Z: -5}, 0.5) {
		t.Error("fully inside sphere culled")
	}
}

func TestEstimateVisibilityTime(t *testing.T) {
	f := testFrustum()

	// Flying toward the far plane at 20 u/s from z=-5: roughly 95
	// units to cover.
	got := f.EstimateVisibilityTime(vec.Vec3{Z: -5}, vec.Vec3{Z: -20})
	if got < 4.5 || got > 5.1 {
		t.Errorf("far exit = %f, want about 4.75", got)
	}

	// Sideways through the right plane: 5/sqrt(2) units of clearance
	// closed at 10/sqrt(2) per second.
	got = f.EstimateVisibilityTime(vec.Vec3{Z: -5}, vec.Vec3{X: 10})
	if math32.Abs(got-0.5) > 0.01 {
		t.Errorf("side exit = %f, want 0.5", got)
	}

	// Already outside: minimum lifetime, not zero.
	if got := f.EstimateVisibilityTime(vec.Vec3{Z: 5}, vec.Vec3{Z: 1}); got != MinVisibility {
		t.Errorf("outside = %f, want %f", got, MinVisibility)
	}

	// Hovering in view forever: capped.
	if got := f.EstimateVisibilityTime(vec.Vec3{Z: -5}, vec.Vec3{}); got != MaxVisibility {
		t.Errorf("static = %f, want %f", got, MaxVisibility)
	}
}
