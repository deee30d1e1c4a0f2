package kinematic

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane_Raycast(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		wantOK bool
		wantT  float64
	}{
		{
			name:   "straight down",
			ray:    NewRay(mgl64.Vec3{1, 5, 2}, mgl64.Vec3{0, -1, 0}),
			wantOK: true,
			wantT:  5,
		},
		{
			name:   "parallel",
			ray:    NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0}),
			wantOK: false,
		},
		{
			name:   "pointing away",
			ray:    NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 1, 0}),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GroundPlane.Raycast(tt.ray)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantT, got, 1e-9)
			}
		})
	}
}

func TestRay_IntersectGround(t *testing.T) {
	r := NewRay(mgl64.Vec3{0, 4, 4}, mgl64.Vec3{0, -1, -1})
	p, ok := r.IntersectGround()
	require.True(t, ok)
	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.Equal(t, 0.0, p.Y())
	assert.InDelta(t, 0, p.Z(), 1e-9)

	_, ok = NewRay(mgl64.Vec3{0, 4, 4}, mgl64.Vec3{0, 0, -1}).IntersectGround()
	assert.False(t, ok)
}

func TestAABB_Overlaps(t *testing.T) {
	a := NewAABB(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{name: "same", b: a, want: true},
		{name: "partial", b: NewAABB(mgl64.Vec3{0.7, 0.5, 0}, mgl64.Vec3{0.5, 0.5, 0.5}), want: true},
		{name: "touching face", b: NewAABB(mgl64.Vec3{1, 0.5, 0}, mgl64.Vec3{0.5, 0.5, 0.5}), want: false},
		{name: "apart", b: NewAABB(mgl64.Vec3{3, 0.5, 3}, mgl64.Vec3{0.5, 0.5, 0.5}), want: false},
		{name: "above", b: NewAABB(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0.5, 0.5, 0.5}), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestRay_IntersectAABB(t *testing.T) {
	box := NewAABB(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	d, ok := NewRay(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0}).IntersectAABB(box)
	require.True(t, ok)
	assert.InDelta(t, 9, d, 1e-9)

	_, ok = NewRay(mgl64.Vec3{2, 10, 0}, mgl64.Vec3{0, -1, 0}).IntersectAABB(box)
	assert.False(t, ok)

	d, ok = NewRay(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{1, 0, 0}).IntersectAABB(box)
	require.True(t, ok)
	assert.Equal(t, 0.0, d)

	_, ok = NewRay(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0}).IntersectAABB(box)
	assert.False(t, ok)
}

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := NewCamera(NewCameraOptions{
		Eye:    mgl64.Vec3{0, 12, 12},
		Target: mgl64.Vec3{0, 0, 0},
		FovY:   50,
		Near:   0.1,
		Far:    100,
		Width:  640,
		Height: 480,
	})
	require.NoError(t, err)
	return c
}

func TestCamera_ScreenPointToRay_center(t *testing.T) {
	c := newTestCamera(t)

	r, err := c.ScreenPointToRay(320, 240)
	require.NoError(t, err)
	p, ok := r.IntersectGround()
	require.True(t, ok)
	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Z(), 1e-6)
}

func TestCamera_roundTrip(t *testing.T) {
	c := newTestCamera(t)

	points := []mgl64.Vec3{
		{-4, 0, 3},
		{5, 0, -6},
		{0, 0, 2.5},
	}
	for _, want := range points {
		x, y, ok := c.WorldToScreen(want)
		require.True(t, ok)
		r, err := c.ScreenPointToRay(x, y)
		require.NoError(t, err)
		got, ok := r.IntersectGround()
		require.True(t, ok)
		assert.InDelta(t, want.X(), got.X(), 1e-6)
		assert.InDelta(t, want.Z(), got.Z(), 1e-6)
	}
}

func TestCamera_screenOrientation(t *testing.T) {
	c := newTestCamera(t)

	// nearer points appear lower on screen, +x appears to the right
	_, yNear, ok := c.WorldToScreen(mgl64.Vec3{0, 0, 4})
	require.True(t, ok)
	_, yFar, ok := c.WorldToScreen(mgl64.Vec3{0, 0, -4})
	require.True(t, ok)
	assert.Greater(t, yNear, yFar)

	xRight, _, ok := c.WorldToScreen(mgl64.Vec3{3, 0, 0})
	require.True(t, ok)
	assert.Greater(t, xRight, 320.0)

	_, _, ok = c.WorldToScreen(mgl64.Vec3{0, 12, 20})
	assert.False(t, ok)
}

func TestNewCamera_invalid(t *testing.T) {
	_, err := NewCamera(NewCameraOptions{Eye: mgl64.Vec3{0, 10, 0}, Target: mgl64.Vec3{0, 0, 0}, FovY: 50, Near: 0.1, Far: 100, Width: 640, Height: 480})
	assert.Error(t, err, "looking straight down with the default up vector")

	_, err = NewCamera(NewCameraOptions{Eye: mgl64.Vec3{0, 10, 10}, FovY: 50, Near: 0.1, Far: 100, Width: 0, Height: 480})
	assert.Error(t, err)
}
