// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := Cross(x, y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, want)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{0, 3, 4}
	got := v.Normalize()
	want := Vec3{0, 0.6, 0.8}
	if got != want {
		t.Errorf("%v.Normalize() = %v want %v", v, got, want)
	}
	if NULL.Normalize() != NULL {
		t.Errorf("Normalizing the null vector must return the null vector")
	}
}

func TestDot4(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}
	if Dot4(a, b) != 20 {
		t.Errorf("Dot4(%v,%v) = %v want 20", a, b, Dot4(a, b))
	}
}

func TestNormalizePlane(t *testing.T) {
	p := Vec4{0, 3, 4, 10}
	got := p.NormalizePlane()
	want := Vec4{0, 0.6, 0.8, 2}
	if got != want {
		t.Errorf("%v.NormalizePlane() = %v want %v", p, got, want)
	}
}
