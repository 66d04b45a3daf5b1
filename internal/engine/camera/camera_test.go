package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/projective/pkg/math"
	"github.com/Faultbox/projective/pkg/surface"
)

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera(5)
	c.Yaw, c.Pitch = 0, 0
	if got := c.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{5, 0, 0}, 1e-5) {
		t.Errorf("Position() = %v, want (5,0,0)", got)
	}

	c.Pitch = 1.5
	if got := c.Position(); got.Z() < 4.9 {
		t.Errorf("high pitch Position() = %v, want near the Z axis", got)
	}
}

func TestOrbitViewLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera(3)
	c.Center = mgl32.Vec3{1, 2, 3}

	// The center maps onto the -Z view axis.
	p := c.View().Mul4x1(c.Center.Vec4(1))
	if !mgl32.FloatEqualThreshold(p.X(), 0, 1e-4) || !mgl32.FloatEqualThreshold(p.Y(), 0, 1e-4) {
		t.Errorf("center in view space = %v, want on the view axis", p)
	}
	if !mgl32.FloatEqualThreshold(p.Z(), -3, 1e-4) {
		t.Errorf("center depth = %v, want -3", p.Z())
	}
}

func TestOrbitClamps(t *testing.T) {
	c := NewOrbitCamera(2)
	c.HandleDrag(0, 10000)
	if c.Pitch != 1.5 {
		t.Errorf("Pitch = %v, want clamped to 1.5", c.Pitch)
	}
	for range 100 {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want MinDistance %v", c.Distance, c.MinDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera(1)
	c.FitToBounds(surface.Bounds{
		Min: math.Vec3{X: -1, Y: -1, Z: 0},
		Max: math.Vec3{X: 3, Y: 1, Z: 1},
	})
	if c.Center != (mgl32.Vec3{1, 0, 0.5}) {
		t.Errorf("Center = %v, want (1,0,0.5)", c.Center)
	}
	if !mgl32.FloatEqualThreshold(c.Distance, 7.2, 1e-4) {
		t.Errorf("Distance = %v, want 7.2", c.Distance)
	}
}

func TestSurfaceCameraView(t *testing.T) {
	c := &SurfaceCamera{Height: 0.5}
	f := surface.Frame{
		Position: math.Vec3{X: 1},
		Normal:   math.Vec3{X: 1},
		Tangent:  math.Vec3{Y: 1},
	}
	view := c.View(f)

	// The eye sits 0.5 above the surface point, so the point itself is
	// straight below in view space.
	p := view.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, -0.5, 0}, 1e-5) {
		t.Errorf("surface point in view space = %v, want (0,-0.5,0)", p)
	}
}

func TestSurfaceCameraDegenerateFrame(t *testing.T) {
	c := &SurfaceCamera{Height: 1}
	view := c.View(surface.Frame{})
	for i, v := range view {
		if v != v { // NaN
			t.Fatalf("view[%d] is NaN", i)
		}
	}
}

func TestProjection(t *testing.T) {
	p := Projection(45, 800, 0)
	if p != mgl32.Perspective(mgl32.DegToRad(45), 1, 0.01, 100) {
		t.Error("zero height should fall back to a square aspect")
	}
}
