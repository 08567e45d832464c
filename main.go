package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/bastion/assets"
	"github.com/automoto/bastion/battle"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/fonts"
	"github.com/automoto/bastion/scenes"
	"github.com/automoto/bastion/systems/input"
	"github.com/automoto/bastion/systems/records"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	input  components.InputData
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Input returns the action state shared by every scene
func (g *Game) Input() *components.InputData {
	return &g.input
}

// NewGame opens the level select menu, or goes straight into levelName when
// it is set.
func NewGame(levelName string) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.FontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	levels := assets.NewLevelLoader()
	if levelName == "" {
		g.scene = scenes.NewLevelSelectScene(g, levels)
		return g, nil
	}

	level, err := battle.LoadLevel(levels, levelName)
	if err != nil {
		return nil, err
	}
	g.scene = scenes.NewBattleScene(g, levels, level)
	return g, nil
}

func (g *Game) Update() error {
	input.Poll(&g.input)
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "Level to start (\"default\" for the built-in layout, empty for the menu)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	hitRadius := flag.Bool("hitradius", false, "Draw the collision radius around targets")
	aim := flag.Bool("aim", false, "Draw projectile direction vectors")
	verbose := flag.Bool("verbose", false, "Log ignored despawns and level warnings")
	keepDead := flag.Bool("keep-dead", false, "Leave targets in play after their health reaches zero")
	flag.Parse()

	config.Audio.Enabled = !*mute
	config.Debug.ShowHitRadius = *hitRadius
	config.Debug.ShowAimVectors = *aim
	config.Debug.Verbose = *verbose
	config.Combat.RemoveDeadTargets = !*keepDead

	if err := records.Init(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame(*levelName)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
