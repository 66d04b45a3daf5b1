// Package camera provides the viewer cameras. Surfaces are Z-up.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/projective/pkg/math"
	"github.com/Faultbox/projective/pkg/surface"
)

var worldUp = mgl32.Vec3{0, 0, 1}

// Projection returns a perspective matrix for a vertical fov in degrees.
func Projection(fovDegrees float32, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, 0.01, 100)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center   mgl32.Vec3
	Distance float32
	Yaw      float32 // around Z, radians
	Pitch    float32 // above the XY plane, radians

	MinDistance float32
	MaxDistance float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera looking at the origin.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:        distance,
		Yaw:             0.6,
		Pitch:           0.4,
		MinDistance:     0.1,
		MaxDistance:     50,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sy, cy := gomath.Sincos(float64(c.Yaw))
	sp, cp := gomath.Sincos(float64(c.Pitch))
	offset := mgl32.Vec3{float32(cp * cy), float32(cp * sy), float32(sp)}
	return c.Center.Add(offset.Mul(c.Distance))
}

// View returns the view matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, worldUp)
}

// HandleDrag rotates by a mouse drag in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.DragSensitivity, -1.5, 1.5)
}

// HandleZoom moves toward the center by wheel steps.
func (c *OrbitCamera) HandleZoom(steps float32) {
	c.Distance -= steps * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers on a bounding box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(b surface.Bounds) {
	c.Center = toMgl(b.Center())
	size := b.Size()
	extent := max(size.X, size.Y, size.Z)
	c.Distance = mgl32.Clamp(extent*1.8, c.MinDistance, c.MaxDistance)
}

// SurfaceCamera rides on the surface at a grid cell, lifted along the
// surface normal and looking along increasing u.
type SurfaceCamera struct {
	Height float32
}

// View returns the view matrix for the frame at the camera's cell.
func (c *SurfaceCamera) View(f surface.Frame) mgl32.Mat4 {
	up := toMgl(f.Normal)
	if f.Normal.IsZero() {
		up = worldUp
	}
	forward := toMgl(f.Tangent)
	if f.Tangent.IsZero() || gomath.Abs(float64(forward.Dot(up))) > 0.999 {
		forward = perpendicular(up)
	}

	eye := toMgl(f.Position).Add(up.Mul(c.Height))
	return mgl32.LookAtV(eye, eye.Add(forward), up)
}

func perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if gomath.Abs(float64(v.X())) > 0.9 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	return v.Cross(axis).Normalize()
}

func toMgl(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
