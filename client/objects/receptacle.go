package objects

import (
	"github.com/cbodonnell/shapesort/client/fonts"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ReceptacleObject draws the footprint of a bin and its label.
type ReceptacleObject struct {
	*BaseObject

	receptacle *types.Receptacle
	projector  Projector
}

var _ GameObject = &ReceptacleObject{}

func NewReceptacleObject(receptacle *types.Receptacle, projector Projector, zIndex int) *ReceptacleObject {
	return &ReceptacleObject{
		BaseObject: NewBaseObject(receptacle.ID, &NewBaseObjectOpts{ZIndex: zIndex}),
		receptacle: receptacle,
		projector:  projector,
	}
}

func (o *ReceptacleObject) Draw(screen *ebiten.Image) {
	lo, hi := o.receptacle.Bounds.Min, o.receptacle.Bounds.Max
	DrawGroundQuad(screen, o.projector, lo.X(), lo.Z(), hi.X(), hi.Z(), withAlpha(KindColor(o.receptacle.Accepts), 0x90))

	label := o.receptacle.Accepts.String()
	x, y, ok := o.projector.WorldToScreen(mgl64.Vec3{o.receptacle.Bounds.Center().X(), 0, hi.Z()})
	if !ok {
		return
	}
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, label)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64((bounds.Max.X-bounds.Min.X)>>6)/2, y+float64(f.Metrics().Height>>6))
	text.DrawWithOptions(screen, label, f, op)
}
