package objects

import (
	"github.com/cbodonnell/shapesort/client/fonts"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MessageBanner shows the current feedback message centered near the top of the screen.
// It has no timer of its own; the session hides it.
type MessageBanner struct {
	*BaseObject

	text    string
	kind    types.MessageKind
	visible bool
}

var _ GameObject = &MessageBanner{}

func NewMessageBanner(id string, zIndex int) *MessageBanner {
	return &MessageBanner{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
	}
}

func (m *MessageBanner) Show(text string, kind types.MessageKind) {
	m.text = text
	m.kind = kind
	m.visible = true
}

func (m *MessageBanner) Hide() {
	m.visible = false
}

func (m *MessageBanner) Visible() bool {
	return m.visible
}

func (m *MessageBanner) Text() string {
	return m.text
}

func (m *MessageBanner) Draw(screen *ebiten.Image) {
	if !m.visible || m.text == "" {
		return
	}
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, m.text)
	width := float64((bounds.Max.X - bounds.Min.X) >> 6)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-width)/2, 72)
	op.ColorScale.ScaleWithColor(MessageColor(m.kind))
	text.DrawWithOptions(screen, m.text, f, op)
}
