package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/shapesort/pkg/collisions"
	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateReceptacle is returned when a second bin is added for the same kind.
	ErrDuplicateReceptacle = errors.New("a receptacle already accepts this kind")
	// ErrUnknownShape is returned when a shape or bin has no valid kind.
	ErrUnknownShape = errors.New("unknown shape kind")
)

// Scene owns the shapes and bins of a session and their collision proxies.
type Scene struct {
	arena       *collisions.Arena
	objects     map[string]*types.DraggableObject
	order       []string
	receptacles []*types.Receptacle
}

func NewScene(arena *collisions.Arena) *Scene {
	return &Scene{
		arena:   arena,
		objects: make(map[string]*types.DraggableObject),
	}
}

// NewDefaultScene creates an empty scene over the default arena.
func NewDefaultScene() *Scene {
	return NewScene(collisions.NewArena(collisions.NewArenaOptions{
		MinX:     constants.ArenaMinX,
		MinZ:     constants.ArenaMinZ,
		Width:    constants.ArenaWidth,
		Depth:    constants.ArenaDepth,
		Scale:    constants.ArenaScale,
		CellSize: constants.ArenaCellSize,
	}))
}

// AddObject places a new shape of the given kind.
func (s *Scene) AddObject(kind types.ShapeKind, position mgl64.Vec3) (*types.DraggableObject, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("failed to add object: %w", ErrUnknownShape)
	}
	obj := types.NewDraggableObject(uuid.New().String(), kind, position)
	obj.Object = s.arena.NewObject(obj.Bounds(), obj, collisions.TagSortable, kind.Tag())
	s.objects[obj.ID] = obj
	s.order = append(s.order, obj.ID)
	return obj, nil
}

// AddReceptacle places a bin accepting kind. Each kind has at most one bin.
func (s *Scene) AddReceptacle(accepts types.ShapeKind, bounds kinematic.AABB) (*types.Receptacle, error) {
	if !accepts.Valid() {
		return nil, fmt.Errorf("failed to add receptacle: %w", ErrUnknownShape)
	}
	for _, r := range s.receptacles {
		if r.Accepts == accepts {
			return nil, fmt.Errorf("failed to add %s receptacle: %w", accepts, ErrDuplicateReceptacle)
		}
	}
	r := &types.Receptacle{
		ID:      uuid.New().String(),
		Accepts: accepts,
		Bounds:  bounds,
	}
	r.Object = s.arena.NewObject(bounds, r, collisions.TagReceptacle, accepts.Tag())
	s.receptacles = append(s.receptacles, r)
	return r, nil
}

func (s *Scene) Receptacles() []*types.Receptacle {
	return s.receptacles
}

// ReceptacleFor returns the bin accepting kind, if the scene has one.
func (s *Scene) ReceptacleFor(kind types.ShapeKind) (*types.Receptacle, bool) {
	for _, r := range s.receptacles {
		if r.Accepts == kind {
			return r, true
		}
	}
	return nil, false
}

// Object returns a live shape by id.
func (s *Scene) Object(id string) (*types.DraggableObject, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// Objects returns the live shapes in insertion order.
func (s *Scene) Objects() []*types.DraggableObject {
	objects := make([]*types.DraggableObject, 0, len(s.order))
	for _, id := range s.order {
		objects = append(objects, s.objects[id])
	}
	return objects
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Move sets the position of a live shape and refreshes its collision proxy.
func (s *Scene) Move(obj *types.DraggableObject, position mgl64.Vec3) {
	if obj.Destroyed() {
		return
	}
	obj.Position = position
	if obj.Object != nil {
		s.arena.Place(obj.Object, obj.Bounds())
	}
}

// Remove destroys a shape. It reports false if the shape was already destroyed,
// so callers can treat removal as the single point that consumes an object.
func (s *Scene) Remove(obj *types.DraggableObject) bool {
	if !obj.Destroy() {
		return false
	}
	s.arena.Remove(obj.Object)
	delete(s.objects, obj.ID)
	for i, id := range s.order {
		if id == obj.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every shape, leaving the bins in place.
func (s *Scene) Clear() {
	for _, obj := range s.Objects() {
		s.Remove(obj)
	}
}

// Pick returns the nearest live shape hit by the ray.
func (s *Scene) Pick(ray kinematic.Ray) (*types.DraggableObject, bool) {
	var nearest *types.DraggableObject
	best := math.Inf(1)
	for _, id := range s.order {
		obj := s.objects[id]
		d, ok := ray.IntersectAABB(obj.Bounds())
		if !ok || d >= best {
			continue
		}
		best = d
		nearest = obj
	}
	return nearest, nearest != nil
}

// Overlapping returns the live shapes whose volume intersects the bin.
func (s *Scene) Overlapping(r *types.Receptacle) []*types.DraggableObject {
	var overlapping []*types.DraggableObject
	for _, candidate := range s.arena.Candidates(r.Object, collisions.TagSortable) {
		obj, ok := candidate.Data.(*types.DraggableObject)
		if !ok || obj.Destroyed() {
			continue
		}
		if !obj.Bounds().Overlaps(r.Bounds) {
			continue
		}
		overlapping = append(overlapping, obj)
	}
	return overlapping
}
