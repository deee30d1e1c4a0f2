package objects

import (
	"fmt"
	"sort"

	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeObject draws one draggable shape and removes itself once the shape is sorted.
type ShapeObject struct {
	*BaseObject

	shape     *types.DraggableObject
	projector Projector
}

var _ GameObject = &ShapeObject{}

func NewShapeObject(shape *types.DraggableObject, projector Projector) *ShapeObject {
	return &ShapeObject{
		BaseObject: NewBaseObject(shape.ID, nil),
		shape:      shape,
		projector:  projector,
	}
}

func (o *ShapeObject) Shape() *types.DraggableObject {
	return o.shape
}

func (o *ShapeObject) Update() error {
	if !o.shape.Destroyed() {
		return nil
	}
	if err := o.RemoveFromParent(); err != nil {
		return fmt.Errorf("failed to remove shape %s from parent: %v", o.shape.ID, err)
	}
	return nil
}

func (o *ShapeObject) Draw(screen *ebiten.Image) {
	pos := o.shape.Position
	half := o.shape.Kind.HalfExtents()
	clr := KindColor(o.shape.Kind)

	// shadow on the ground
	ground := mgl64.Vec3{pos.X(), 0, pos.Z()}
	if gx, gy, ok := o.projector.WorldToScreen(ground); ok {
		if r, ok := projectedRadius(o.projector, ground, half.X()); ok {
			vector.DrawFilledCircle(screen, float32(gx), float32(gy), r, shadowColor, true)
		}
	}

	cx, cy, ok := o.projector.WorldToScreen(pos)
	if !ok {
		return
	}
	r, ok := projectedRadius(o.projector, pos, half.X())
	if !ok {
		return
	}
	x, y := float32(cx), float32(cy)

	switch o.shape.Kind {
	case types.ShapeKindCube:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, true)
		if o.shape.IsHeld {
			vector.StrokeRect(screen, x-r, y-r, 2*r, 2*r, 2, highlightColor, true)
		}
	case types.ShapeKindSphere:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		if o.shape.IsHeld {
			vector.StrokeCircle(screen, x, y, r, 2, highlightColor, true)
		}
	case types.ShapeKindCapsule:
		// two caps joined by a body as wide as the radius allows
		offset := mgl64.Vec3{0, half.Y() - half.X(), 0}
		tx, ty, okTop := o.projector.WorldToScreen(pos.Add(offset))
		bx, by, okBottom := o.projector.WorldToScreen(pos.Sub(offset))
		if !okTop || !okBottom {
			return
		}
		vector.StrokeLine(screen, float32(tx), float32(ty), float32(bx), float32(by), 2*r, clr, true)
		vector.DrawFilledCircle(screen, float32(tx), float32(ty), r, clr, true)
		vector.DrawFilledCircle(screen, float32(bx), float32(by), r, clr, true)
		if o.shape.IsHeld {
			vector.StrokeCircle(screen, float32(tx), float32(ty), r, 2, highlightColor, true)
			vector.StrokeCircle(screen, float32(bx), float32(by), r, 2, highlightColor, true)
		}
	}
}

// ShapeLayer holds shape objects and draws them back to front.
type ShapeLayer struct {
	*BaseObject
}

var _ GameObject = &ShapeLayer{}

func NewShapeLayer(id string, zIndex int) *ShapeLayer {
	return &ShapeLayer{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
	}
}

// Has reports whether a shape object with id is in the layer.
func (l *ShapeLayer) Has(id string) bool {
	return l.children.Get(id) != nil
}

// GetChildren returns the shapes ordered by distance from the camera,
// farthest first, with the held shape on top.
func (l *ShapeLayer) GetChildren() []GameObject {
	children := append([]GameObject(nil), l.BaseObject.GetChildren()...)
	sort.SliceStable(children, func(i, j int) bool {
		a, aok := children[i].(*ShapeObject)
		b, bok := children[j].(*ShapeObject)
		if !aok || !bok {
			return false
		}
		if a.shape.IsHeld != b.shape.IsHeld {
			return b.shape.IsHeld
		}
		return a.shape.Position.Z() < b.shape.Position.Z()
	})
	return children
}

// AddChild adds a child and makes the layer its parent.
func (l *ShapeLayer) AddChild(id string, child GameObject) error {
	if err := l.BaseObject.AddChild(id, child); err != nil {
		return err
	}
	child.SetParent(l)
	return nil
}
