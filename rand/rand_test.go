// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import "testing"

func TestDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		if a.Uint32n(1000) != b.Uint32n(1000) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestBounds(t *testing.T) {
	g := New(3)
	for i := 0; i < 1000; i++ {
		if n := g.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d", n)
		}
		if f := g.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v", f)
		}
	}
}

func TestNewSeed(t *testing.T) {
	a := New(1)
	b := New(1)
	a.NewSeed(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uint32n(1<<30) != b.Uint32n(1<<30) {
			same = false
		}
	}
	if same {
		t.Error("reseeded generator kept the old sequence")
	}
}
