package surface

import (
	gomath "math"
	"math/cmplx"

	"github.com/Faultbox/projective/pkg/math"
)

// Plane is a bilinear patch through four corners.
// Corners are ordered (0,0), (1,0), (1,1), (0,1) in parameter space.
type Plane struct {
	Corners [4]math.Vec3
}

// UnitPlane returns the unit square in the XY plane.
func UnitPlane() Plane {
	return Plane{Corners: [4]math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}}
}

// UV implements Function. The last cell on each axis maps to 1.
func (p Plane) UV(g Grid, u, v int) math.Vec2 {
	return math.Vec2{X: span(u, g.U), Y: span(v, g.V)}
}

// Position implements Function.
func (p Plane) Position(uv math.Vec2) math.Vec3 {
	bottom := math.Lerp(p.Corners[0], p.Corners[1], uv.X)
	top := math.Lerp(p.Corners[3], p.Corners[2], uv.X)
	return math.Lerp(bottom, top, uv.Y)
}

// Torus is a ring torus around the Z axis.
type Torus struct {
	Radius     float32 // distance from the center to the tube center
	TubeRadius float32
}

// UV implements Function.
func (t Torus) UV(g Grid, u, v int) math.Vec2 {
	return AngularUV(g, u, v)
}

// Position implements Function.
func (t Torus) Position(uv math.Vec2) math.Vec3 {
	su, cu := gomath.Sincos(float64(uv.X))
	sv, cv := gomath.Sincos(float64(uv.Y))
	ring := float64(t.Radius) + float64(t.TubeRadius)*cv
	return math.Vec3{
		X: float32(ring * cu),
		Y: float32(ring * su),
		Z: float32(float64(t.TubeRadius) * sv),
	}
}

// Boy is Boy's surface, an immersion of the real projective plane, in the
// Bryant-Kusner parametrization over the closed unit disk. The parameter
// coordinate is polar: X is the radius in [0,1], Y the angle.
type Boy struct {
	Scale float32
}

// UV implements Function. The radius axis reaches 1 at cell U-1; the
// angular axis is periodic.
func (b Boy) UV(g Grid, u, v int) math.Vec2 {
	return math.Vec2{X: span(u, g.U), Y: frac(v, g.V) * 2 * gomath.Pi}
}

var sqrt5 = complex(gomath.Sqrt(5), 0)

// Position implements Function.
func (b Boy) Position(uv math.Vec2) math.Vec3 {
	w := cmplx.Rect(float64(uv.X), float64(uv.Y))
	w3 := w * w * w
	w4 := w3 * w
	w6 := w3 * w3
	den := w6 + sqrt5*w3 - 1

	g1 := -1.5 * imag(w*(1-w4)/den)
	g2 := -1.5 * real(w*(1+w4)/den)
	g3 := imag((1+w6)/den) - 0.5
	g := g1*g1 + g2*g2 + g3*g3

	s := float64(b.Scale)
	if s == 0 {
		s = 1
	}
	return math.Vec3{
		X: float32(s * g1 / g),
		Y: float32(s * g2 / g),
		Z: float32(s * g3 / g),
	}
}

// CrossCap is the cross-cap model of the projective plane. It has a
// segment of self-intersection ending in two pinch points and collapses
// to a single point at v = 0.
type CrossCap struct {
	Scale float32
}

// UV implements Function. X is the periodic angle, Y runs over [0,π/2].
func (c CrossCap) UV(g Grid, u, v int) math.Vec2 {
	return math.Vec2{X: frac(u, g.U) * 2 * gomath.Pi, Y: span(v, g.V) * gomath.Pi / 2}
}

// Position implements Function.
func (c CrossCap) Position(uv math.Vec2) math.Vec3 {
	su, cu := gomath.Sincos(float64(uv.X))
	sv, cv := gomath.Sincos(float64(uv.Y))
	s2v := 2 * sv * cv

	s := float64(c.Scale)
	if s == 0 {
		s = 1
	}
	return math.Vec3{
		X: float32(s * cu * s2v),
		Y: float32(s * su * s2v),
		Z: float32(s * (cv*cv - cu*cu*sv*sv)),
	}
}
