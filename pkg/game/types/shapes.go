package types

import (
	"fmt"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind identifies the category a shape is sorted by.
type ShapeKind uint8

const (
	ShapeKindUnknown ShapeKind = iota
	ShapeKindCube
	ShapeKindCapsule
	ShapeKindSphere
)

// ShapeKinds lists every valid kind.
var ShapeKinds = []ShapeKind{ShapeKindCube, ShapeKindCapsule, ShapeKindSphere}

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindCube:
		return "Cube"
	case ShapeKindCapsule:
		return "Capsule"
	case ShapeKindSphere:
		return "Sphere"
	}
	return "Unknown"
}

// Tag returns the collision tag of the kind.
func (k ShapeKind) Tag() string {
	switch k {
	case ShapeKindCube:
		return "cube"
	case ShapeKindCapsule:
		return "capsule"
	case ShapeKindSphere:
		return "sphere"
	}
	return ""
}

func (k ShapeKind) Valid() bool {
	return k >= ShapeKindCube && k <= ShapeKindSphere
}

// HalfExtents returns the half size of the box enclosing a shape of this kind.
func (k ShapeKind) HalfExtents() mgl64.Vec3 {
	switch k {
	case ShapeKindCube:
		h := constants.CubeSize / 2
		return mgl64.Vec3{h, h, h}
	case ShapeKindCapsule:
		return mgl64.Vec3{constants.CapsuleRadius, constants.CapsuleHeight / 2, constants.CapsuleRadius}
	case ShapeKindSphere:
		r := constants.SphereRadius
		return mgl64.Vec3{r, r, r}
	}
	return mgl64.Vec3{}
}

// ParseShapeKind parses a collision tag into a ShapeKind.
func ParseShapeKind(tag string) (ShapeKind, error) {
	switch tag {
	case "cube":
		return ShapeKindCube, nil
	case "capsule":
		return ShapeKindCapsule, nil
	case "sphere":
		return ShapeKindSphere, nil
	}
	return ShapeKindUnknown, fmt.Errorf("unknown shape tag: %q", tag)
}
