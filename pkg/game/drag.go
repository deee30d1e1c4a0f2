package game

import (
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/cbodonnell/shapesort/pkg/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Raycaster turns screen coordinates into world rays.
type Raycaster interface {
	ScreenPointToRay(x, y float64) (kinematic.Ray, error)
}

// DragController moves one shape at a time across the ground plane.
type DragController struct {
	scene     *Scene
	raycaster Raycaster

	held   *types.DraggableObject
	height float64
	// offset is the planar distance from the pointer to the held shape
	offset mgl64.Vec3
}

func NewDragController(scene *Scene, raycaster Raycaster) *DragController {
	return &DragController{
		scene:     scene,
		raycaster: raycaster,
	}
}

// Held returns the shape being dragged, or nil.
func (d *DragController) Held() *types.DraggableObject {
	if d.held != nil && d.held.Destroyed() {
		d.held = nil
	}
	return d.held
}

// OnPointerDown picks up the nearest shape under the pointer.
// It is ignored while a shape is already held.
func (d *DragController) OnPointerDown(x, y float64) bool {
	if d.Held() != nil {
		log.Trace("Pointer down at (%.0f, %.0f) ignored, shape %s is held", x, y, d.held.ID)
		return false
	}
	if d.raycaster == nil {
		return false
	}
	ray, err := d.raycaster.ScreenPointToRay(x, y)
	if err != nil {
		log.Debug("Failed to cast pointer ray: %v", err)
		return false
	}
	obj, ok := d.scene.Pick(ray)
	if !ok || !obj.Kind.Valid() {
		return false
	}

	d.offset = mgl64.Vec3{}
	if ground, ok := ray.IntersectGround(); ok {
		d.offset = kinematic.Planar(obj.Position.Sub(ground))
	}
	d.height = obj.Position.Y()
	d.held = obj
	obj.IsHeld = true
	log.Debug("Picked up %s %s", obj.Kind, obj.ID)
	return true
}

// OnPointerMove drags the held shape so it stays under the pointer at its pickup height.
// It reports whether the shape moved.
func (d *DragController) OnPointerMove(x, y float64) bool {
	obj := d.Held()
	if obj == nil || d.raycaster == nil {
		return false
	}
	ray, err := d.raycaster.ScreenPointToRay(x, y)
	if err != nil {
		return false
	}
	ground, ok := ray.IntersectGround()
	if !ok {
		return false
	}
	d.scene.Move(obj, mgl64.Vec3{
		ground.X() + d.offset.X(),
		d.height,
		ground.Z() + d.offset.Z(),
	})
	return true
}

// OnPointerUp releases the held shape where it is.
func (d *DragController) OnPointerUp() {
	d.Release()
}

// Release clears the held state.
func (d *DragController) Release() {
	if d.held == nil {
		return
	}
	d.held.IsHeld = false
	d.held = nil
}
