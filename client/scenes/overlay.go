package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/shapesort/client/fonts"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndOverlay is the card shown over the board once a session is won or lost.
type EndOverlay struct {
	onReplay func()
	ui       *ebitenui.UI
	visible  bool
}

func NewEndOverlay(onReplay func()) *EndOverlay {
	return &EndOverlay{
		onReplay: onReplay,
	}
}

// Show builds the card for outcome and final score.
func (o *EndOverlay) Show(outcome types.Outcome, score int) {
	o.renderUI(outcome, score)
	o.visible = true
}

func (o *EndOverlay) Hide() {
	o.visible = false
}

func (o *EndOverlay) Visible() bool {
	return o.visible
}

func (o *EndOverlay) renderUI(outcome types.Outcome, score int) {
	title := "You win!"
	titleColor := color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	if outcome == types.OutcomeLost {
		title = "Time's up!"
		titleColor = color.NRGBA{R: 255, G: 85, B: 85, A: 255}
	}

	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(title, fonts.MPlusTitleFont, titleColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Final score: %d", score), fonts.TTFNormalFont, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Play again", fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		if o.onReplay != nil {
			o.onReplay()
		}
	})
	rootContainer.AddChild(button)

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *EndOverlay) Update() {
	if !o.visible || o.ui == nil {
		return
	}
	o.ui.Update()
}

func (o *EndOverlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.ui == nil {
		return
	}
	o.ui.Draw(screen)
}
