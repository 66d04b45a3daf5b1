// Package picking provides ray casting against generated surface meshes.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/projective/pkg/surface"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are in the same units as viewportW/H.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, p mgl32.Vec4) mgl32.Vec3 {
	w := inv.Mul4x1(p)
	if w.W() != 0 {
		return w.Vec3().Mul(1 / w.W())
	}
	return w.Vec3()
}

// IntersectAABB tests ray intersection with a bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box surface.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := range 3 {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance to the triangle (a, b, c), hitting
// either face.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (t float32, hit bool) {
	const epsilon = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false // parallel or degenerate
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	return t, t >= 0
}

// Hit is the nearest triangle a ray passes through.
type Hit struct {
	Triangle int
	Distance float32
	Point    mgl32.Vec3
}

// PickTriangle returns the nearest triangle of buf hit by the ray.
func PickTriangle(r Ray, buf *surface.VertexBuffer) (Hit, bool) {
	if buf.VertexCount() == 0 {
		return Hit{}, false
	}
	if _, ok := r.IntersectAABB(buf.Bounds()); !ok {
		return Hit{}, false
	}

	best := Hit{Triangle: -1, Distance: float32(gomath.MaxFloat32)}
	for tri := range buf.TriangleCount() {
		a := vec(buf, 3*tri)
		b := vec(buf, 3*tri+1)
		c := vec(buf, 3*tri+2)
		if t, ok := r.IntersectTriangle(a, b, c); ok && t < best.Distance {
			best.Triangle = tri
			best.Distance = t
		}
	}
	if best.Triangle < 0 {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}

func vec(buf *surface.VertexBuffer, i int) mgl32.Vec3 {
	p := buf.Position(i)
	return mgl32.Vec3{p.X, p.Y, p.Z}
}
