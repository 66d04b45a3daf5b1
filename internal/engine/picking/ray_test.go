package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/projective/pkg/math"
	"github.com/Faultbox/projective/pkg/surface"
)

func TestIntersectAABB(t *testing.T) {
	box := surface.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name  string
		ray   Ray
		wantT float32
		hit   bool
	}{
		{"from outside", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}}, 4, true},
		{"from inside", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}}, 1, true},
		{"pointing away", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}}, 0, false},
		{"parallel outside", Ray{mgl32.Vec3{0, 5, 5}, mgl32.Vec3{0, 0, -1}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit || (hit && !mgl32.FloatEqualThreshold(got, tt.wantT, 1e-5)) {
				t.Errorf("IntersectAABB() = (%v, %v), want (%v, %v)", got, hit, tt.wantT, tt.hit)
			}
		})
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1, 0, 0}
	c := mgl32.Vec3{0, 1, 0}

	down := Ray{mgl32.Vec3{0.25, 0.25, 2}, mgl32.Vec3{0, 0, -1}}
	if got, ok := down.IntersectTriangle(a, b, c); !ok || !mgl32.FloatEqualThreshold(got, 2, 1e-5) {
		t.Errorf("front hit = (%v, %v), want (2, true)", got, ok)
	}

	up := Ray{mgl32.Vec3{0.25, 0.25, -1}, mgl32.Vec3{0, 0, 1}}
	if _, ok := up.IntersectTriangle(a, b, c); !ok {
		t.Error("back face should also be hit")
	}

	miss := Ray{mgl32.Vec3{0.75, 0.75, 2}, mgl32.Vec3{0, 0, -1}}
	if _, ok := miss.IntersectTriangle(a, b, c); ok {
		t.Error("ray outside the triangle should miss")
	}

	if _, ok := down.IntersectTriangle(a, a, c); ok {
		t.Error("degenerate triangle should never be hit")
	}
}

func TestPickTrianglePlane(t *testing.T) {
	opts := surface.Options{Closure: surface.Closure{OpenU: true, OpenV: true}}
	grid := surface.Grid{U: 5, V: 5}
	buf := surface.New(surface.UnitPlane(), opts).Generate(grid.U, grid.V)

	// Unit plane in 4x4 quads; (0.6, 0.3) lies in quad (2, 1).
	r := Ray{Origin: mgl32.Vec3{0.6, 0.3, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	hit, ok := PickTriangle(r, buf)
	if !ok {
		t.Fatal("expected a hit")
	}
	if u, v := surface.QuadOf(grid, opts.Closure, hit.Triangle); u != 2 || v != 1 {
		t.Errorf("picked quad (%d,%d), want (2,1)", u, v)
	}
	if !hit.Point.ApproxEqualThreshold(mgl32.Vec3{0.6, 0.3, 0}, 1e-5) {
		t.Errorf("hit point = %v", hit.Point)
	}
}

func TestPickTriangleMiss(t *testing.T) {
	buf := surface.New(surface.UnitPlane(), surface.Options{}).Generate(4, 4)
	r := Ray{Origin: mgl32.Vec3{5, 5, 3}, Direction: mgl32.Vec3{0, 0, -1}}
	if _, ok := PickTriangle(r, buf); ok {
		t.Error("expected a miss")
	}
	if _, ok := PickTriangle(r, &surface.VertexBuffer{}); ok {
		t.Error("empty buffer should never be hit")
	}
}

func TestScreenToRayCenter(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	inv := proj.Mul4(view).Inv()

	r := ScreenToRay(50, 50, 100, 100, inv)
	if !r.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Errorf("center ray direction = %v, want (0,0,-1)", r.Direction)
	}
	if !mgl32.FloatEqualThreshold(r.Origin.X(), 0, 1e-4) || !mgl32.FloatEqualThreshold(r.Origin.Y(), 0, 1e-4) {
		t.Errorf("center ray origin = %v, want on the Z axis", r.Origin)
	}
}
