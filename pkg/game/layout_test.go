package game

import (
	"testing"

	"github.com/cbodonnell/shapesort/pkg/game/constants"
	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnDefaultLayout(t *testing.T) {
	scene := NewDefaultScene()
	require.NoError(t, SpawnDefaultLayout(scene))

	assert.Len(t, scene.Receptacles(), len(types.ShapeKinds))
	for _, kind := range types.ShapeKinds {
		r, ok := scene.ReceptacleFor(kind)
		require.True(t, ok, kind.String())
		assert.Empty(t, scene.Overlapping(r), "no shape starts inside the %s bin", kind)
	}

	counts := map[types.ShapeKind]int{}
	for _, obj := range scene.Objects() {
		counts[obj.Kind]++
		assert.InDelta(t, 0, obj.Bounds().Min.Y(), 1e-9, "shapes rest on the ground")
	}
	for _, kind := range types.ShapeKinds {
		assert.Equal(t, constants.ShapesPerKind, counts[kind], kind.String())
	}

	// spawning again replaces the shapes and keeps the bins
	require.NoError(t, SpawnDefaultLayout(scene))
	assert.Equal(t, constants.ShapesPerKind*len(types.ShapeKinds), scene.Len())
	assert.Len(t, scene.Receptacles(), len(types.ShapeKinds))
}

func TestDefaultReceptacleBounds_disjoint(t *testing.T) {
	for i, a := range types.ShapeKinds {
		for _, b := range types.ShapeKinds[i+1:] {
			assert.False(t, DefaultReceptacleBounds(a).Overlaps(DefaultReceptacleBounds(b)), "%s and %s", a, b)
		}
	}
}
