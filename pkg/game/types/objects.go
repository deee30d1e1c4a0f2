package types

import (
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// DraggableObject is a shape the player can pick up and sort.
type DraggableObject struct {
	ID       string
	Kind     ShapeKind
	Position mgl64.Vec3
	IsHeld   bool
	// Object is the collision proxy of the shape footprint
	Object *resolv.Object

	destroyed bool
}

func NewDraggableObject(id string, kind ShapeKind, position mgl64.Vec3) *DraggableObject {
	return &DraggableObject{
		ID:       id,
		Kind:     kind,
		Position: position,
	}
}

// Bounds returns the box enclosing the shape at its current position.
func (o *DraggableObject) Bounds() kinematic.AABB {
	return kinematic.NewAABB(o.Position, o.Kind.HalfExtents())
}

func (o *DraggableObject) Destroyed() bool {
	return o.destroyed
}

// Destroy marks the object as removed from play. It reports false if it already was.
func (o *DraggableObject) Destroy() bool {
	if o.destroyed {
		return false
	}
	o.destroyed = true
	o.IsHeld = false
	return true
}

// Receptacle is a bin accepting exactly one kind of shape.
type Receptacle struct {
	ID      string
	Accepts ShapeKind
	Bounds  kinematic.AABB
	// Object is the collision proxy of the bin footprint
	Object *resolv.Object
}
