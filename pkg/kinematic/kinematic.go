package kinematic

// This package includes the geometry used to move shapes kinematically:
// rays, planes, axis-aligned boxes and a perspective camera.

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Epsilon is the tolerance used to detect rays parallel to a plane or slab.
	Epsilon float64 = 1e-9
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Ray is a half-line starting at Origin and pointing along Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal·p = Distance.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// GroundPlane is the plane y = 0 facing up.
var GroundPlane = Plane{Normal: Up, Distance: 0}

// Raycast returns the distance along r at which it crosses the plane.
// It reports false when the ray is parallel to the plane or points away from it.
func (p Plane) Raycast(r Ray) (float64, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	t := (p.Distance - p.Normal.Dot(r.Origin)) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectGround projects the ray onto the ground plane.
func (r Ray) IntersectGround() (mgl64.Vec3, bool) {
	t, ok := GroundPlane.Raycast(r)
	if !ok {
		return mgl64.Vec3{}, false
	}
	p := r.At(t)
	// pin to the plane exactly
	p[1] = 0
	return p, true
}

// AABB is an axis-aligned box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB returns the box centred on center with the given half extents.
func NewAABB(center, halfExtents mgl64.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether the interiors of the two boxes intersect.
// Boxes that only touch on a face do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] <= o.Min[i] || o.Max[i] <= b.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// IntersectAABB returns the distance along r to the first point inside b.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectAABB(b AABB) (float64, bool) {
	tmin := 0.0
	tmax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(r.Direction[i]) < Epsilon {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Direction[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Planar drops the vertical component of v.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}
