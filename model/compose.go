// SPDX-License-Identifier: GPL-2.0-or-later
package model

import (
	"go.uber.org/zap"

	"goarena/anim"
	"goarena/math/mtx"
	"goarena/md3"
)

// PartDraw is one resolved part of a composed player: which part to
// draw, at which morph frame, with which world transform.
type PartDraw struct {
	Part   *Part
	Frame  int
	World  *mtx.Matrix
	Orient md3.Orientation
}

// Pose is the per frame input to composition.
type Pose struct {
	LegsFrame  int
	TorsoFrame int
	Overlay    anim.Overlay
}

// Composer walks the tag chain lower -> tag_torso -> upper ->
// tag_head / tag_weapon and produces one PartDraw per present part.
// A missing tag_torso is logged once and the torso attaches at the
// leg origin; a missing tag_head or tag_weapon drops that part for
// the frame.
type Composer struct {
	log    *zap.Logger
	warned map[string]struct{}
}

func NewComposer(log *zap.Logger) *Composer {
	return &Composer{
		log:    log,
		warned: make(map[string]struct{}),
	}
}

func (c *Composer) warnOnce(pm *PlayerModel, name, action string) {
	key := pm.Name + "/" + name
	if _, seen := c.warned[key]; seen {
		return
	}
	c.warned[key] = struct{}{}
	c.log.Warn("attachment tag missing, "+action,
		zap.String("model", pm.Name),
		zap.String("tag", name))
}

func (c *Composer) torsoTag(pm *PlayerModel, frame int) md3.Tag {
	t, ok := pm.Lower.Model.TagByName(frame, "tag_torso")
	if ok {
		return t
	}
	c.warnOnce(pm, "tag_torso", "using parent origin")
	return md3.Tag{Axis: [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Compose resolves the full part chain at the given pose. base is the
// model root transform in world space (entity position, facing and
// scale already applied). The head and weapon are static models and
// always draw frame 0.
func (c *Composer) Compose(pm *PlayerModel, pose Pose, base md3.Orientation) []PartDraw {
	var out []PartDraw

	legs := base.RotatedZ(pose.Overlay.LegsYaw)
	if pm.Lower != nil {
		out = append(out, PartDraw{
			Part:   pm.Lower,
			Frame:  pose.LegsFrame,
			World:  legs.Mat4(),
			Orient: legs,
		})
	}

	if pm.Upper == nil {
		return out
	}

	torsoBase := legs
	if pm.Lower != nil {
		torsoBase = md3.Attach(legs, c.torsoTag(pm, pose.LegsFrame))
	}
	torso := torsoBase.
		RotatedZ(pose.Overlay.TorsoYaw).
		RotatedY(pose.Overlay.TorsoPitch).
		RotatedX(pose.Overlay.TorsoRoll)
	out = append(out, PartDraw{
		Part:   pm.Upper,
		Frame:  pose.TorsoFrame,
		World:  torso.Mat4(),
		Orient: torso,
	})

	if pm.Head != nil {
		if t, ok := pm.Upper.Model.TagByName(pose.TorsoFrame, "tag_head"); ok {
			head := md3.Attach(torso, t).RotatedY(pose.Overlay.HeadPitch)
			out = append(out, PartDraw{
				Part:   pm.Head,
				Frame:  0,
				World:  head.Mat4(),
				Orient: head,
			})
		} else {
			c.warnOnce(pm, "tag_head", "part skipped")
		}
	}

	if pm.Weapon != nil {
		if t, ok := pm.Upper.Model.TagByName(pose.TorsoFrame, "tag_weapon"); ok {
			weapon := md3.Attach(torso, t).RotatedY(pose.Overlay.WeaponPitch)
			out = append(out, PartDraw{
				Part:   pm.Weapon,
				Frame:  0,
				World:  weapon.Mat4(),
				Orient: weapon,
			})
		} else {
			c.warnOnce(pm, "tag_weapon", "part skipped")
		}
	}

	return out
}
