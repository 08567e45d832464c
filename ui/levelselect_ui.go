package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one selectable row in the level menu
type LevelEntry struct {
	Name   string
	Detail string // Best time or other record summary, may be empty
}

// LevelSelectUI holds the ebitenui interface for the level menu
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(name string)

	markers     []*widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(title string, entries []LevelEntry, onSelect func(name string)) *LevelSelectUI {
	ui := &LevelSelectUI{OnSelect: onSelect}
	ui.loadFonts()
	ui.buildUI(title, entries)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *LevelSelectUI) buildUI(title string, entries []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, entry := range entries {
		contentContainer.AddChild(ui.buildRow(entry))
	}

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) buildRow(entry LevelEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	marker := widget.NewLabel(
		widget.LabelOpts.Text(" ", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 0, 255},
		}),
	)
	ui.markers = append(ui.markers, marker)
	row.AddChild(marker)

	name := entry.Name
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(name, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(name)
			}
		}),
	)
	row.AddChild(button)

	detail := widget.NewLabel(
		widget.LabelOpts.Text(entry.Detail, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 170, 190, 255},
		}),
	)
	row.AddChild(detail)

	return row
}

// SetSelected moves the keyboard marker to row i
func (ui *LevelSelectUI) SetSelected(i int) {
	for j, marker := range ui.markers {
		if j == i {
			marker.Label = ">"
		} else {
			marker.Label = " "
		}
	}
}

func (ui *LevelSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
