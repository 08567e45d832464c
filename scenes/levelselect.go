package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/bastion/battle"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems/records"
	"github.com/automoto/bastion/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelSelectScene lists the built-in layout and every level file.
type LevelSelectScene struct {
	sceneChanger SceneChanger
	levels       battle.LevelSource
	names        []string
	selected     int
	menuUI       *ui.LevelSelectUI
	once         sync.Once
}

func NewLevelSelectScene(sc SceneChanger, levels battle.LevelSource) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, levels: levels}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)

	input := ls.sceneChanger.Input()
	switch {
	case input.JustPressed(cfg.ActionMenuUp):
		ls.selected = (ls.selected + len(ls.names) - 1) % len(ls.names)
		ls.menuUI.SetSelected(ls.selected)
	case input.JustPressed(cfg.ActionMenuDown):
		ls.selected = (ls.selected + 1) % len(ls.names)
		ls.menuUI.SetSelected(ls.selected)
	case input.JustPressed(cfg.ActionMenuSelect):
		ls.start(ls.names[ls.selected])
		return
	}

	ls.menuUI.Update()
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.menuUI == nil {
		return
	}
	ls.menuUI.UI.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.names = []string{battle.DefaultLevelName}
	names, err := ls.levels.Names()
	if err != nil {
		log.Printf("list levels: %v", err)
	}
	ls.names = append(ls.names, names...)

	entries := make([]ui.LevelEntry, 0, len(ls.names))
	for _, name := range ls.names {
		entries = append(entries, ui.LevelEntry{Name: name, Detail: recordSummary(name)})
	}

	ls.menuUI = ui.NewLevelSelectUI(cfg.C.Title, entries, ls.start)
	ls.menuUI.SetSelected(ls.selected)
	if err != nil {
		ls.menuUI.SetStatus("level files unavailable")
	}
}

func (ls *LevelSelectScene) start(name string) {
	level, err := battle.LoadLevel(ls.levels, name)
	if err != nil {
		log.Printf("start %s: %v", name, err)
		ls.menuUI.SetStatus(fmt.Sprintf("cannot load %s", name))
		return
	}
	ls.sceneChanger.ChangeScene(NewBattleScene(ls.sceneChanger, ls.levels, level))
}

func recordSummary(level string) string {
	record, err := records.Load(level)
	if err != nil || record == nil {
		return ""
	}
	return fmt.Sprintf("best %.1fs (%d shots), %d clears", record.BestTime, record.BestShots, record.Clears)
}
