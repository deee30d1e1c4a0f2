package objects

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Projector maps world points to screen pixels.
type Projector interface {
	WorldToScreen(p mgl64.Vec3) (float64, float64, bool)
}

var whiteSubImage *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawGroundQuad fills the ground rectangle spanning (minX, minZ) to (maxX, maxZ).
func DrawGroundQuad(screen *ebiten.Image, projector Projector, minX, minZ, maxX, maxZ float64, clr color.Color) {
	corners := []mgl64.Vec3{
		{minX, 0, minZ},
		{maxX, 0, minZ},
		{maxX, 0, maxZ},
		{minX, 0, maxZ},
	}
	path := &vector.Path{}
	for i, c := range corners {
		x, y, ok := projector.WorldToScreen(c)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, whiteImage(), op)
}

// projectedRadius returns the on-screen length of a world distance r measured sideways from center.
func projectedRadius(projector Projector, center mgl64.Vec3, r float64) (float32, bool) {
	cx, cy, ok := projector.WorldToScreen(center)
	if !ok {
		return 0, false
	}
	ex, ey, ok := projector.WorldToScreen(center.Add(mgl64.Vec3{r, 0, 0}))
	if !ok {
		return 0, false
	}
	return float32(mgl64.Vec2{ex - cx, ey - cy}.Len()), true
}
