package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/neon-arena/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the dialog shown once a run has ended.
type GameOverUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onPlayAgain func()) *GameOverUI {
	ui := &GameOverUI{
		OnPlayAgain: onPlayAgain,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *GameOverUI) buildUI() {
	// Transparent root so the faded arena stays visible behind the dialog
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	dialog := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	))
	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Message, &ui.normalFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	))

	playAgainButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 110, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(cfg.GameOver.ButtonLabel, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Cyan,
			Hover:   cfg.White,
			Pressed: cfg.Magenta,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlayAgain != nil {
				ui.OnPlayAgain()
			}
		}),
	)
	dialog.AddChild(playAgainButton)

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("or press Enter", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	rootContainer.AddChild(dialog)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}
