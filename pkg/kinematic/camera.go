package kinematic

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularProjection is returned when the camera matrices cannot be inverted.
var ErrSingularProjection = errors.New("camera projection is singular")

// Camera is a perspective camera that maps screen pixels to world rays.
// Screen coordinates have their origin at the top-left corner, y pointing down.
type Camera struct {
	eye    mgl64.Vec3
	target mgl64.Vec3
	up     mgl64.Vec3
	width  int
	height int

	view       mgl64.Mat4
	projection mgl64.Mat4
}

// NewCameraOptions contains options for creating a new Camera.
type NewCameraOptions struct {
	// Eye is the camera position.
	Eye mgl64.Vec3
	// Target is the point the camera looks at.
	Target mgl64.Vec3
	// Up is the camera up hint; defaults to the world up axis.
	Up mgl64.Vec3
	// FovY is the vertical field of view in degrees.
	FovY float64
	// Near and Far are the clip plane distances.
	Near float64
	Far  float64
	// Width and Height are the viewport size in pixels.
	Width  int
	Height int
}

func NewCamera(opts NewCameraOptions) (*Camera, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", opts.Width, opts.Height)
	}
	if opts.Near <= 0 || opts.Far <= opts.Near {
		return nil, fmt.Errorf("invalid clip planes near=%v far=%v", opts.Near, opts.Far)
	}
	if opts.FovY <= 0 || opts.FovY >= 180 {
		return nil, fmt.Errorf("invalid field of view %v", opts.FovY)
	}
	up := opts.Up
	if up.Len() < Epsilon {
		up = Up
	}
	forward := opts.Target.Sub(opts.Eye)
	if forward.Len() < Epsilon {
		return nil, fmt.Errorf("camera eye and target coincide")
	}
	if forward.Normalize().Cross(up.Normalize()).Len() < Epsilon {
		return nil, fmt.Errorf("camera up vector is parallel to the view direction")
	}

	aspect := float64(opts.Width) / float64(opts.Height)
	return &Camera{
		eye:        opts.Eye,
		target:     opts.Target,
		up:         up,
		width:      opts.Width,
		height:     opts.Height,
		view:       mgl64.LookAtV(opts.Eye, opts.Target, up),
		projection: mgl64.Perspective(mgl64.DegToRad(opts.FovY), aspect, opts.Near, opts.Far),
	}, nil
}

func (c *Camera) Eye() mgl64.Vec3 {
	return c.eye
}

func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

// ScreenPointToRay returns the world ray through the given screen pixel.
func (c *Camera) ScreenPointToRay(x, y float64) (Ray, error) {
	// window coordinates have y pointing up
	winY := float64(c.height) - y
	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, c.view, c.projection, 0, 0, c.width, c.height)
	if err != nil {
		return Ray{}, fmt.Errorf("%w: %v", ErrSingularProjection, err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, c.view, c.projection, 0, 0, c.width, c.height)
	if err != nil {
		return Ray{}, fmt.Errorf("%w: %v", ErrSingularProjection, err)
	}
	dir := far.Sub(near)
	if dir.Len() < Epsilon {
		return Ray{}, ErrSingularProjection
	}
	return NewRay(near, dir), nil
}

// WorldToScreen projects a world point to screen pixels.
// It reports false for points behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (float64, float64, bool) {
	clip := c.projection.Mul4(c.view).Mul4x1(p.Vec4(1))
	if clip.W() <= Epsilon {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) * float64(c.width) / 2
	y := float64(c.height) - (ndc.Y()+1)*float64(c.height)/2
	return x, y, true
}
