package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/shapesort/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var urgentColor = color.RGBA{0xff, 0x44, 0x44, 0xff}

// HUD shows the score and the remaining time.
type HUD struct {
	*BaseObject

	score   int
	seconds int
	urgent  bool
}

var _ GameObject = &HUD{}

func NewHUD(id string, zIndex int) *HUD {
	return &HUD{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
	}
}

func (h *HUD) SetScore(score int) {
	h.score = score
}

func (h *HUD) SetTimer(seconds int, urgent bool) {
	h.seconds = seconds
	h.urgent = urgent
}

func (h *HUD) Score() int {
	return h.score
}

func (h *HUD) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	lineHeight := float64(f.Metrics().Height >> 6)
	margin := 12.0

	scoreText := fmt.Sprintf("Score: %d", h.score)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin+lineHeight)
	op.ColorScale.ScaleWithColor(color.Black)
	text.DrawWithOptions(screen, scoreText, f, op)

	timerText := fmt.Sprintf("Time: %d", h.seconds)
	bounds, _ := font.BoundString(f, timerText)
	width := float64((bounds.Max.X - bounds.Min.X) >> 6)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())-width-margin, margin+lineHeight)
	if h.urgent {
		op.ColorScale.ScaleWithColor(urgentColor)
	} else {
		op.ColorScale.ScaleWithColor(color.Black)
	}
	text.DrawWithOptions(screen, timerText, f, op)
}
