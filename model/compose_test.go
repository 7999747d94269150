// SPDX-License-Identifier: GPL-2.0-or-later
package model

import (
	"testing"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"goarena/anim"
	"goarena/math/vec"
	"goarena/md3"
)

func namedTag(name string, pos [3]float32) md3.Tag {
	t := md3.Tag{
		Position: pos,
		Axis:     [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	copy(t.Name[:], name)
	return t
}

// testPlayer builds a two frame lower + one frame upper/head/weapon
// composite with the standard tag chain. tag_torso sits one unit up
// on frame 0 and two units up on frame 1.
func testPlayer() *PlayerModel {
	lower := &md3.Model{
		Name:       "lower",
		FrameCount: 2,
		Tags: [][]md3.Tag{
			{namedTag("tag_torso", [3]float32{0, 0, 1})},
			{namedTag("tag_torso", [3]float32{0, 0, 2})},
		},
	}
	upper := &md3.Model{
		Name:       "upper",
		FrameCount: 1,
		Tags: [][]md3.Tag{
			{
				namedTag("tag_head", [3]float32{0, 0, 1}),
				namedTag("tag_weapon", [3]float32{1, 0, 0}),
			},
		},
	}
	head := &md3.Model{Name: "head", FrameCount: 1, Tags: [][]md3.Tag{{}}}
	weapon := &md3.Model{Name: "weapon", FrameCount: 1, Tags: [][]md3.Tag{{}}}
	return &PlayerModel{
		Name:   "test",
		Lower:  &Part{Model: lower},
		Upper:  &Part{Model: upper},
		Head:   &Part{Model: head},
		Weapon: &Part{Model: weapon},
	}
}

func approx(a, b vec.Vec3) bool {
	d := vec.Sub(a, b)
	return d.Length() < 1e-5
}

func TestComposeChainPositions(t *testing.T) {
	c := NewComposer(zap.NewNop())
	pm := testPlayer()
	draws := c.Compose(pm, Pose{LegsFrame: 1}, md3.IdentityOrientation())
	if len(draws) != 4 {
		t.Fatalf("len(draws) = %d, want 4", len(draws))
	}
	// lower at origin, torso at z=2 (frame 1 tag), head at z=3,
	// weapon at z=2 x=1.
	want := []vec.Vec3{
		{},
		{Z: 2},
		{Z: 3},
		{X: 1, Z: 2},
	}
	for i, d := range draws {
		if !approx(d.Orient.Origin, want[i]) {
			t.Errorf("part %d origin = %v, want %v", i, d.Orient.Origin, want[i])
		}
	}
	if draws[0].Frame != 1 {
		t.Errorf("lower frame = %d, want 1", draws[0].Frame)
	}
	if draws[2].Frame != 0 || draws[3].Frame != 0 {
		t.Error("head and weapon must draw frame 0")
	}
}

func TestComposeLegsYawRotatesTorsoMount(t *testing.T) {
	c := NewComposer(zap.NewNop())
	pm := testPlayer()
	// Move the torso mount off axis so yaw shows up in position.
	pm.Lower.Model.Tags[0][0] = namedTag("tag_torso", [3]float32{1, 0, 0})
	pose := Pose{Overlay: anim.Overlay{LegsYaw: math32.Pi / 2}}
	draws := c.Compose(pm, pose, md3.IdentityOrientation())
	// A +90 degree yaw around z carries local +x onto +y.
	if !approx(draws[1].Orient.Origin, vec.Vec3{Y: 1}) {
		t.Errorf("torso origin = %v, want (0,1,0)", draws[1].Orient.Origin)
	}
}

func TestComposeMissingHeadTagSkipsPart(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewComposer(zap.New(core))
	pm := testPlayer()
	pm.Upper.Model.Tags = [][]md3.Tag{{}} // drop tag_head and tag_weapon

	for i := 0; i < 3; i++ {
		draws := c.Compose(pm, Pose{}, md3.IdentityOrientation())
		if len(draws) != 2 {
			t.Fatalf("len(draws) = %d, want 2 without head and weapon", len(draws))
		}
		for _, d := range draws {
			if d.Part == pm.Head || d.Part == pm.Weapon {
				t.Errorf("%s drawn despite missing tag", d.Part.Model.Name)
			}
		}
	}
	if got := logs.Len(); got != 2 {
		t.Errorf("warning count = %d, want 2 (one per missing tag)", got)
	}
}

func TestComposeMissingTorsoTagUsesLegOrigin(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewComposer(zap.New(core))
	pm := testPlayer()
	pm.Lower.Model.Tags = [][]md3.Tag{{}, {}} // drop tag_torso

	for i := 0; i < 3; i++ {
		draws := c.Compose(pm, Pose{}, md3.IdentityOrientation())
		if len(draws) != 4 {
			t.Fatalf("len(draws) = %d, want 4", len(draws))
		}
		if !approx(draws[1].Orient.Origin, draws[0].Orient.Origin) {
			t.Errorf("torso origin = %v, want leg origin %v",
				draws[1].Orient.Origin, draws[0].Orient.Origin)
		}
	}
	if got := logs.Len(); got != 1 {
		t.Errorf("warning count = %d, want 1", got)
	}
}

func TestComposeWithoutLower(t *testing.T) {
	c := NewComposer(zap.NewNop())
	pm := testPlayer()
	pm.Lower = nil
	draws := c.Compose(pm, Pose{}, md3.IdentityOrientation())
	if len(draws) != 3 {
		t.Fatalf("len(draws) = %d, want 3", len(draws))
	}
	if draws[0].Part != pm.Upper {
		t.Error("first draw is not the upper part")
	}
}

func TestComposeOrthonormalAfterOverlay(t *testing.T) {
	c := NewComposer(zap.NewNop())
	pm := testPlayer()
	pose := Pose{Overlay: anim.Overlay{
		LegsYaw:     0.4,
		TorsoYaw:    0.2,
		TorsoPitch:  -0.3,
		TorsoRoll:   0.1,
		HeadPitch:   0.9,
		WeaponPitch: 0.6,
	}}
	for _, d := range c.Compose(pm, pose, md3.IdentityOrientation()) {
		for i := 0; i < 3; i++ {
			if l := d.Orient.Axis[i].Length(); math32.Abs(l-1) > 1e-4 {
				t.Errorf("%s axis %d length = %f", d.Part.Model.Name, i, l)
			}
			j := (i + 1) % 3
			if dot := vec.Dot(d.Orient.Axis[i], d.Orient.Axis[j]); math32.Abs(dot) > 1e-4 {
				t.Errorf("%s axis %d.%d dot = %f", d.Part.Model.Name, i, j, dot)
			}
		}
	}
}
