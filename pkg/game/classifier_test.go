package game

import (
	"testing"

	"github.com/cbodonnell/shapesort/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestIsCorrect(t *testing.T) {
	for _, kind := range types.ShapeKinds {
		for _, bin := range types.ShapeKinds {
			assert.Equal(t, kind == bin, IsCorrect(kind, bin), "%s into %s", kind, bin)
		}
		assert.False(t, IsCorrect(types.ShapeKindUnknown, kind))
		assert.False(t, IsCorrect(kind, types.ShapeKindUnknown))
	}
}

func TestReceptacleFor(t *testing.T) {
	seen := map[types.ShapeKind]bool{}
	for _, kind := range types.ShapeKinds {
		bin, ok := ReceptacleFor(kind)
		assert.True(t, ok)
		assert.False(t, seen[bin], "bin %s accepts more than one kind", bin)
		seen[bin] = true
	}
	_, ok := ReceptacleFor(types.ShapeKindUnknown)
	assert.False(t, ok)
}
