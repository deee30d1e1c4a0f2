package game

import (
	"fmt"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/go-gl/mathgl/mgl64"
)

// Spawner populates a scene with shapes and bins.
type Spawner func(scene *Scene) error

// DefaultCamera returns the camera framing the default layout in a width x height viewport.
func DefaultCamera(width, height int) (*kinematic.Camera, error) {
	return kinematic.NewCamera(kinematic.NewCameraOptions{
		Eye:    mgl64.Vec3{0, constants.CameraEyeY, constants.CameraEyeZ},
		Target: mgl64.Vec3{0, 0, constants.CameraTargetZ},
		FovY:   constants.CameraFovY,
		Near:   constants.CameraNear,
		Far:    constants.CameraFar,
		Width:  width,
		Height: height,
	})
}

// DefaultReceptacleBounds returns the volume of the bin accepting kind in the default layout.
func DefaultReceptacleBounds(kind types.ShapeKind) kinematic.AABB {
	x := float64(int(kind)-2) * constants.ReceptacleSpacing
	return kinematic.NewAABB(
		mgl64.Vec3{x, constants.ReceptacleHeight / 2, constants.ReceptacleRowZ},
		mgl64.Vec3{constants.ReceptacleWidth / 2, constants.ReceptacleHeight / 2, constants.ReceptacleDepth / 2},
	)
}

// SpawnDefaultReceptacles adds the missing bins of the default layout.
func SpawnDefaultReceptacles(scene *Scene) error {
	for _, kind := range types.ShapeKinds {
		if _, ok := scene.ReceptacleFor(kind); ok {
			continue
		}
		if _, err := scene.AddReceptacle(kind, DefaultReceptacleBounds(kind)); err != nil {
			return fmt.Errorf("failed to add receptacle: %v", err)
		}
	}
	return nil
}

// SpawnDefaultLayout replaces the shapes of the scene with the default grid
// and makes sure every bin exists. Shapes rest on the ground plane.
func SpawnDefaultLayout(scene *Scene) error {
	if err := SpawnDefaultReceptacles(scene); err != nil {
		return err
	}
	scene.Clear()

	total := constants.ShapesPerKind * len(types.ShapeKinds)
	width := float64(constants.LayoutColumns-1) * constants.LayoutSpacing
	for i := 0; i < total; i++ {
		// interleave kinds so neighbouring shapes differ
		kind := types.ShapeKinds[i%len(types.ShapeKinds)]
		col := i % constants.LayoutColumns
		row := i / constants.LayoutColumns
		position := mgl64.Vec3{
			-width/2 + float64(col)*constants.LayoutSpacing,
			kind.HalfExtents().Y(),
			constants.LayoutStartZ + float64(row)*constants.LayoutSpacing,
		}
		if _, err := scene.AddObject(kind, position); err != nil {
			return fmt.Errorf("failed to add object: %v", err)
		}
	}
	return nil
}
