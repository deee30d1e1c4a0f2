package collisions

import (
	"math"

	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/solarlune/resolv"
)

const (
	// TagSortable marks draggable shapes in the collision space.
	TagSortable string = "sortable"
	// TagReceptacle marks bins in the collision space.
	TagReceptacle string = "receptacle"
)

// Arena maps the ground plane (x, z) onto a resolv space used as the
// overlap broad phase. World units are scaled so resolv cells stay integral.
type Arena struct {
	space *resolv.Space
	minX  float64
	minZ  float64
	scale float64
}

// NewArenaOptions contains options for creating a new Arena.
type NewArenaOptions struct {
	// MinX and MinZ are the world coordinates of the arena corner.
	MinX float64
	MinZ float64
	// Width and Depth are the arena extents in world units.
	Width float64
	Depth float64
	// Scale is the number of space units per world unit.
	Scale float64
	// CellSize is the resolv cell size in space units.
	CellSize int
}

func NewArena(opts NewArenaOptions) *Arena {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cell := opts.CellSize
	if cell <= 0 {
		cell = 1
	}
	w := int(math.Ceil(opts.Width * scale))
	h := int(math.Ceil(opts.Depth * scale))
	return &Arena{
		space: resolv.NewSpace(w, h, cell, cell),
		minX:  opts.MinX,
		minZ:  opts.MinZ,
		scale: scale,
	}
}

func (a *Arena) Space() *resolv.Space {
	return a.space
}

// ToSpace converts a ground position to space coordinates.
func (a *Arena) ToSpace(x, z float64) (float64, float64) {
	return (x - a.minX) * a.scale, (z - a.minZ) * a.scale
}

// NewObject creates a resolv object covering the footprint of bounds and adds it to the space.
func (a *Arena) NewObject(bounds kinematic.AABB, data interface{}, tags ...string) *resolv.Object {
	x, y := a.ToSpace(bounds.Min.X(), bounds.Min.Z())
	size := bounds.Size()
	obj := resolv.NewObject(x, y, size.X()*a.scale, size.Z()*a.scale, tags...)
	obj.Data = data
	a.space.Add(obj)
	return obj
}

// Place moves obj so that it covers the footprint of bounds.
func (a *Arena) Place(obj *resolv.Object, bounds kinematic.AABB) {
	x, y := a.ToSpace(bounds.Min.X(), bounds.Min.Z())
	size := bounds.Size()
	obj.Position.X = x
	obj.Position.Y = y
	obj.Size.X = size.X() * a.scale
	obj.Size.Y = size.Z() * a.scale
	obj.Update()
}

func (a *Arena) Remove(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	a.space.Remove(obj)
}

// Candidates returns the objects sharing cells with obj that carry any of the tags.
// The result is a broad-phase superset; callers refine it with exact bounds.
func (a *Arena) Candidates(obj *resolv.Object, tags ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	collision := obj.Check(0, 0, tags...)
	if collision == nil {
		return nil
	}
	return collision.Objects
}
