// SPDX-License-Identifier: GPL-2.0-or-later
package main

import (
	"flag"
	"time"

	"github.com/chewxy/math32"
	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"goarena/commandline"
	"goarena/config"
	"goarena/filesystem"
	"goarena/frustum"
	"goarena/gametime"
	"goarena/maps"
	"goarena/math/vec"
	"goarena/md3"
	"goarena/model"
	"goarena/rand"
	"goarena/render"
	"goarena/shadow"
	"goarena/snd"
	"goarena/window"
	"goarena/world"
)

const tickRate = 1.0 / 60

func main() {
	flag.Parse()
	mainthread.Run(run)
}

func run() {
	cfg, cfgErr := config.Load(commandline.ConfigPath())
	if cfgErr != nil {
		cfg = config.Default()
	}
	commandline.Apply(cfg)
	log := cfg.Logging.NewLogger()
	defer log.Sync()
	if cfgErr != nil {
		log.Warn("config file unreadable, using defaults", zap.Error(cfgErr))
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal("sdl init", zap.Error(err))
	}
	defer sdl.Quit()

	if err := window.SetMode(
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height),
		cfg.Graphics.Fullscreen, cfg.Graphics.VSync); err != nil {
		log.Fatal("window", zap.Error(err))
	}
	defer window.Shutdown()

	g, err := newGame(cfg, log)
	if err != nil {
		log.Fatal("startup", zap.Error(err))
	}
	g.loop()
}

type game struct {
	cfg *config.Config
	log *zap.Logger

	fsys     *filesystem.GameFS
	registry *model.Registry
	player   *model.PlayerModel
	composer *model.Composer
	renderer *render.Renderer
	arena    *maps.Arena
	sound    *snd.System

	world *world.World
	human *world.Player
	bots  []*world.Bot

	aim  float32
	keys map[sdl.Keycode]bool
}

func newGame(cfg *config.Config, log *zap.Logger) (*game, error) {
	g := &game{
		cfg:      cfg,
		log:      log,
		registry: model.NewRegistry(),
		composer: model.NewComposer(log),
		keys:     make(map[sdl.Keycode]bool),
	}

	g.fsys = filesystem.Game(cfg.Game.BaseDir, log)

	var err error
	g.renderer, err = render.New(log, g.fsys,
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height),
		cfg.Graphics.StencilShadow, cfg.Graphics.PlanarShadow)
	if err != nil {
		return nil, err
	}

	g.arena, err = maps.Load(g.fsys, cfg.Game.Map, log)
	if err != nil {
		return nil, err
	}
	g.renderer.SetArena(g.arena)

	loader := &model.Loader{
		FS:       g.fsys,
		Registry: g.registry,
		Log:      log,
	}
	g.player, err = loader.LoadPlayer(cfg.Game.Model)
	if err != nil {
		return nil, err
	}

	if !cfg.Audio.Muted {
		g.sound, err = snd.NewSystem(log, g.fsys, cfg.Audio.Volume)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
			g.sound = nil
		}
	}

	rng := rand.New(uint32(time.Now().UnixNano()))
	g.world = world.New(log, rng)
	g.world.Solid = g.arena.SolidAt
	g.world.Spawns = g.arena.Spawns
	for _, pad := range g.arena.JumpPads {
		g.world.Pads = append(g.world.Pads, world.Pad{Pos: pad.Pos, Force: pad.Force})
	}

	g.human = g.world.AddPlayer("player")
	for i := 0; i < cfg.Game.Bots; i++ {
		bp := g.world.AddPlayer("bot")
		g.bots = append(g.bots, world.NewBot(bp, rng))
	}
	return g, nil
}

// pumpEvents drains the SDL queue. Returns false on quit.
func (g *game) pumpEvents() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			down := e.Type == sdl.KEYDOWN
			g.keys[e.Keysym.Sym] = down
			if down && e.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				g.renderer.Resize(e.Data1, e.Data2)
			}
		}
	}
	return true
}

func (g *game) key(codes ...sdl.Keycode) bool {
	for _, c := range codes {
		if g.keys[c] {
			return true
		}
	}
	return false
}

// humanInput translates held keys into the player input for one tick.
func (g *game) humanInput(dt float32) world.Input {
	in := world.Input{Weapon: g.human.Weapon}
	if g.key(sdl.K_LEFT, sdl.K_a) {
		in.Move -= 1
	}
	if g.key(sdl.K_RIGHT, sdl.K_d) {
		in.Move += 1
	}
	const aimSpeed = 2.5
	if g.key(sdl.K_UP, sdl.K_w) {
		g.aim += aimSpeed * dt
	}
	if g.key(sdl.K_DOWN, sdl.K_s) {
		g.aim -= aimSpeed * dt
	}
	const aimLimit = math32.Pi / 2.5
	if g.aim > aimLimit {
		g.aim = aimLimit
	}
	if g.aim < -aimLimit {
		g.aim = -aimLimit
	}
	in.Aim = g.aim
	in.Jump = g.key(sdl.K_SPACE)
	in.Crouch = g.key(sdl.K_c, sdl.K_LCTRL)
	in.Fire = g.key(sdl.K_x, sdl.K_RCTRL)
	switch {
	case g.key(sdl.K_1):
		in.Weapon = world.WeaponRocket
	case g.key(sdl.K_2):
		in.Weapon = world.WeaponGrenade
	case g.key(sdl.K_3):
		in.Weapon = world.WeaponPlasma
	case g.key(sdl.K_4):
		in.Weapon = world.WeaponBFG
	case g.key(sdl.K_5):
		in.Weapon = world.WeaponMachinegun
	case g.key(sdl.K_6):
		in.Weapon = world.WeaponRailgun
	}
	return in
}

// playerOrientation builds the world transform for a composed player.
// The models are z up with x forward, the arena is y up, one world
// unit is 1/Unit model units.
func playerOrientation(p *world.Player) md3.Orientation {
	s, c := math32.Sincos(p.ModelYaw)
	const u = world.Unit
	return md3.Orientation{
		Origin: vec.Add(p.Pos, vec.Vec3{Y: world.PlayerRadius}),
		Axis: [3]vec.Vec3{
			{X: c * u, Z: -s * u},
			{X: -s * u, Z: -c * u},
			{Y: u},
		},
	}
}

func weaponColor(k world.Weapon) [4]float32 {
	switch k {
	case world.WeaponPlasma:
		return [4]float32{0.3, 0.5, 1, 0.9}
	case world.WeaponBFG:
		return [4]float32{0.3, 1, 0.3, 0.9}
	default:
		return [4]float32{1, 0.7, 0.3, 0.9}
	}
}

func itemColor(k world.ItemKind) [4]float32 {
	switch k {
	case world.ItemHealth, world.ItemMegaHealth:
		return [4]float32{1, 0.3, 0.3, 0.8}
	case world.ItemArmorShard, world.ItemArmorBody:
		return [4]float32{0.9, 0.9, 0.2, 0.8}
	case world.ItemQuad:
		return [4]float32{0.4, 0.6, 1, 0.9}
	default:
		return [4]float32{0.8, 0.4, 0.2, 0.8}
	}
}

// buildScene composes every player and collects shadow casters and
// sprites for the renderer.
func (g *game) buildScene(dt float32) *render.Scene {
	s := &render.Scene{Time: g.world.Time}

	maxFrames := 0
	if g.player.Lower != nil {
		maxFrames = g.player.Lower.Model.FrameCount
	}
	for _, p := range g.world.Players {
		if p.Gibbed {
			continue
		}
		legs, torso, overlay := p.Pose(g.player.Config, maxFrames, dt)
		pose := model.Pose{LegsFrame: legs, TorsoFrame: torso, Overlay: overlay}
		parts := g.composer.Compose(g.player, pose, playerOrientation(p))
		s.Parts = append(s.Parts, parts...)
		for _, pd := range parts {
			s.Casters = append(s.Casters, shadow.Caster{
				ID:    pd.Part.ID,
				Model: pd.Part.Model,
				Frame: pd.Frame,
				World: pd.World,
			})
		}
	}

	for _, pt := range g.world.Particles {
		c := [4]float32{0.5, 0.5, 0.5, pt.Alpha()}
		switch pt.Kind {
		case world.ParticleFlame:
			c = [4]float32{1, 0.6, 0.2, pt.Alpha()}
		case world.ParticleRail:
			c = [4]float32{0.3, 1, 0.6, pt.Alpha()}
		}
		s.Sprites = append(s.Sprites, render.Sprite{
			Pos: pt.Pos, Size: pt.Size(), Color: c,
		})
	}
	for _, pr := range g.world.Projectiles {
		s.Sprites = append(s.Sprites, render.Sprite{
			Pos: pr.Pos, Size: 0.35, Color: weaponColor(pr.Kind),
		})
	}
	for _, it := range g.world.Items {
		if it.Taken {
			continue
		}
		pulse := 0.35 + 0.08*math32.Sin(g.world.Time*4)
		s.Sprites = append(s.Sprites, render.Sprite{
			Pos:   vec.Add(it.Pos, vec.Vec3{Y: 0.3}),
			Size:  pulse,
			Color: itemColor(it.Kind),
		})
	}
	return s
}

func (g *game) loop() {
	const maxFPS = 240
	var gt gametime.GameTime
	gt.Reset()
	var acc float32

	for {
		if !g.pumpEvents() {
			return
		}
		if !gt.UpdateTime(maxFPS) {
			continue
		}
		gt.FrameIncrease()
		acc += float32(gt.FrameTime())

		eye := vec.Add(g.human.Pos, vec.Vec3{Y: 3, Z: 12})
		center := vec.Add(g.human.Pos, vec.Vec3{Y: 1})
		g.renderer.SetCamera(eye, center)
		view := frustum.FromViewProj(g.renderer.ViewProj())

		for acc >= tickRate {
			acc -= tickRate
			g.human.Input = g.humanInput(tickRate)
			for _, b := range g.bots {
				b.Think(g.world, tickRate)
			}
			g.world.Update(tickRate, view)
		}

		g.renderer.Frame(g.buildScene(tickRate))

		if g.sound != nil {
			g.sound.SetListener(g.human.Pos)
			g.sound.Drain(g.world.Events)
		} else {
			g.world.Events.Drain()
		}

		window.EndRendering()
	}
}
