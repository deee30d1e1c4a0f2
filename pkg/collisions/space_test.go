package collisions

import (
	"testing"

	"github.com/cbodonnell/shapesort/pkg/kinematic"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArena() *Arena {
	return NewArena(NewArenaOptions{
		MinX:     -10,
		MinZ:     -10,
		Width:    20,
		Depth:    20,
		Scale:    100,
		CellSize: 50,
	})
}

func box(x, z float64) kinematic.AABB {
	return kinematic.NewAABB(mgl64.Vec3{x, 0.5, z}, mgl64.Vec3{0.5, 0.5, 0.5})
}

func TestArena_ToSpace(t *testing.T) {
	a := newTestArena()
	x, y := a.ToSpace(-10, -10)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = a.ToSpace(0, 2.5)
	assert.InDelta(t, 1000, x, 1e-9)
	assert.InDelta(t, 1250, y, 1e-9)
}

func TestArena_NewObject(t *testing.T) {
	a := newTestArena()
	obj := a.NewObject(box(0, 0), "payload", TagSortable, "cube")

	assert.InDelta(t, 950, obj.Position.X, 1e-9)
	assert.InDelta(t, 950, obj.Position.Y, 1e-9)
	assert.InDelta(t, 100, obj.Size.X, 1e-9)
	assert.InDelta(t, 100, obj.Size.Y, 1e-9)
	assert.Equal(t, "payload", obj.Data)
	assert.True(t, obj.HasTags(TagSortable))
	assert.NotNil(t, obj.Space)
}

func TestArena_Candidates(t *testing.T) {
	a := newTestArena()
	bin := a.NewObject(kinematic.NewAABB(mgl64.Vec3{0, 0.5, -6}, mgl64.Vec3{1.5, 0.5, 1.5}), nil, TagReceptacle)
	near := a.NewObject(box(0, -6), nil, TagSortable)
	far := a.NewObject(box(6, 6), nil, TagSortable)

	got := a.Candidates(bin, TagSortable)
	require.Len(t, got, 1)
	assert.Same(t, near, got[0])

	a.Place(far, box(1, -5.5))
	got = a.Candidates(bin, TagSortable)
	assert.Len(t, got, 2)

	a.Remove(near)
	a.Remove(near)
	got = a.Candidates(bin, TagSortable)
	require.Len(t, got, 1)
	assert.Same(t, far, got[0])
}
