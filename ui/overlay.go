package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is shown while the cursor is released. It reports the controller
// tuning and lets the player switch the speed clamp policy.
type PauseUI struct {
	UI     *ebitenui.UI
	Player *components.PlayerData

	OnResume func()
	OnQuit   func()

	clampButton *widget.Button
	speedLabel  *widget.Label
	modeLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

func NewPauseUI(player *components.PlayerData, onResume, onQuit func()) *PauseUI {
	pui := &PauseUI{
		Player:   player,
		OnResume: onResume,
		OnQuit:   onQuit,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	pui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &pui.titleFace, &widget.LabelColor{Idle: cfg.White}),
	))

	pui.speedLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{Idle: cfg.LightBlue}),
	)
	panel.AddChild(pui.speedLabel)

	pui.modeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{Idle: cfg.Gray}),
	)
	panel.AddChild(pui.modeLabel)

	pui.clampButton = pui.button("", 200, func() {
		if pui.Player.ClampMode == cfg.ClampHorizontal {
			pui.Player.ClampMode = cfg.ClampFull
		} else {
			pui.Player.ClampMode = cfg.ClampHorizontal
		}
		pui.UpdateUI()
	})
	panel.AddChild(pui.clampButton)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(pui.button("Resume", 95, func() {
		if pui.OnResume != nil {
			pui.OnResume()
		}
	}))
	buttons.AddChild(pui.button("Quit", 95, func() {
		if pui.OnQuit != nil {
			pui.OnQuit()
		}
	}))
	panel.AddChild(buttons)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Esc toggles mouse look", &pui.smallFace, &widget.LabelColor{Idle: cfg.Gray}),
	))

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes labels from the player state.
func (pui *PauseUI) UpdateUI() {
	p := pui.Player
	if pui.speedLabel != nil {
		pui.speedLabel.Label = fmt.Sprintf("target %.1f  accel %.1f  jump %.1f", p.TargetSpeed, p.Acceleration, p.JumpImpulse)
	}
	if pui.modeLabel != nil {
		pui.modeLabel.Label = fmt.Sprintf("movement: %s", p.Mode)
	}
	if pui.clampButton != nil {
		if textWidget := pui.clampButton.Text(); textWidget != nil {
			textWidget.Label = fmt.Sprintf("Clamp: %s", p.ClampMode)
		}
	}
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
	if !pui.initialized {
		pui.initialized = true
		pui.UpdateUI()
	}
}
