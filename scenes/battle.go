package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/bastion/assets"
	"github.com/automoto/bastion/battle"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/fonts"
	"github.com/automoto/bastion/systems"
	"github.com/automoto/bastion/systems/factory"
	"github.com/automoto/bastion/systems/records"
	"github.com/automoto/bastion/systems/render"
	"github.com/automoto/bastion/systems/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// BattleScene runs a battle simulation in the window, one tick per frame.
type BattleScene struct {
	sim          *battle.Simulation
	level        *assets.Level
	sceneChanger SceneChanger
	levels       battle.LevelSource
	paused       bool
	recorded     bool
	record       records.LevelRecord
	newBest      bool
	once         sync.Once
}

func NewBattleScene(sc SceneChanger, levels battle.LevelSource, level *assets.Level) *BattleScene {
	return &BattleScene{sceneChanger: sc, levels: levels, level: level}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	input := bs.sceneChanger.Input()
	switch {
	case input.JustPressed(cfg.ActionBack):
		bs.sceneChanger.ChangeScene(NewLevelSelectScene(bs.sceneChanger, bs.levels))
		return
	case input.JustPressed(cfg.ActionRestart):
		bs.sceneChanger.ChangeScene(NewBattleScene(bs.sceneChanger, bs.levels, bs.level))
		return
	case input.JustPressed(cfg.ActionPause):
		bs.paused = !bs.paused
	case input.JustPressed(cfg.ActionToggleHitRadius):
		cfg.Debug.ShowHitRadius = !cfg.Debug.ShowHitRadius
	case input.JustPressed(cfg.ActionToggleAim):
		cfg.Debug.ShowAimVectors = !cfg.Debug.ShowAimVectors
	}

	if bs.paused {
		return
	}
	bs.sim.Step(1 / float64(cfg.C.TPS))

	if !bs.recorded && bs.sim.Cleared() {
		bs.recorded = true
		bs.record, bs.newBest = records.Clear(bs.level.Name, bs.sim.Clock().Elapsed, bs.sim.Stats().ShotsFired)
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.sim == nil {
		return
	}
	bs.sim.ECS().Draw(screen)

	if bs.paused {
		drawCentered(screen, "PAUSED", fonts.Title, screen.Bounds().Dy()/2)
	} else if bs.sim.Cleared() {
		msg := fmt.Sprintf("%s cleared in %.1fs", bs.level.Name, bs.sim.Clock().Elapsed)
		drawCentered(screen, msg, fonts.Title, screen.Bounds().Dy()/2)

		best := fmt.Sprintf("best %.1fs", bs.record.BestTime)
		if bs.newBest {
			best = "new best!"
		}
		drawCentered(screen, best, fonts.HUD, screen.Bounds().Dy()/2+40)
	}
}

func (bs *BattleScene) configure() {
	sound.PreloadAll()

	bs.sim = battle.New(bs.level)
	e := bs.sim.ECS()

	factory.CreateCamera(e, 0, 0)

	// Host systems run after the battle systems of each tick
	systems.RegisterEffects(e)
	systems.RegisterAudio(e)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(sound.Update)

	e.AddRenderer(cfg.Default, render.DrawBattle)
	e.AddRenderer(cfg.Default, render.DrawHealthBars)
	e.AddRenderer(cfg.Default, render.DrawDebug)
	e.AddRenderer(cfg.Default, render.DrawHUD)
}

func drawCentered(screen *ebiten.Image, msg string, name fonts.FontName, y int) {
	face := name.Get()
	width := text.BoundString(face, msg).Dx()
	text.Draw(screen, msg, face, (screen.Bounds().Dx()-width)/2, y, cfg.UI.TextColor)
}
