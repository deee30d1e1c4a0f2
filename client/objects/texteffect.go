package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/shapesort/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is a short lived label, such as a score delta, that drifts upward and fades out.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	speed float64
	ttl   float64
	life  float64
}

type NewTextEffectOptions struct {
	Text string
	// X and Y are the screen position of the center of the text.
	X float64
	Y float64
	// Color defaults to white.
	Color color.Color
	// Speed is the upward drift in pixels per second.
	Speed float64
	// TTL is the time to live in seconds.
	TTL    float64
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		speed:      opts.Speed,
		ttl:        opts.TTL,
		life:       opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	dt := 1 / float64(ebiten.TPS())
	o.y -= o.speed * dt
	o.ttl -= dt
	if o.ttl <= 0 {
		if err := o.RemoveFromParent(); err != nil {
			return fmt.Errorf("failed to remove text effect from parent: %w", err)
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-float64((bounds.Max.X-bounds.Min.X)>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	if o.life > 0 {
		op.ColorScale.ScaleAlpha(float32(o.ttl / o.life))
	}
	text.DrawWithOptions(screen, o.text, f, op)
}
