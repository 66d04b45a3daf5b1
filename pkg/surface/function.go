// Package surface tessellates parametric surfaces into triangle meshes.
//
// A surface is any Function: a mapping from integer grid indices to a
// parameter coordinate, and from a parameter coordinate to a 3D point.
// Generator samples a Function over a U×V grid, emits two triangles per
// grid quad, computes flat or smooth normals and packs the result into a
// single float32 VertexBuffer ready for upload with glBufferData.
package surface

import (
	gomath "math"

	"github.com/Faultbox/projective/pkg/math"
)

// Grid holds the segment counts of one generation request.
type Grid struct {
	U, V int
}

// Index returns the position-array index of grid cell (u, v).
func (g Grid) Index(u, v int) int {
	return u*g.V + v
}

// Cells returns the number of grid cells.
func (g Grid) Cells() int {
	if g.U <= 0 || g.V <= 0 {
		return 0
	}
	return g.U * g.V
}

// Function is the capability a surface must provide.
type Function interface {
	// UV maps grid cell (u, v) of g into the function's parameter domain.
	UV(g Grid, u, v int) math.Vec2
	// Position maps a parameter coordinate to a point on the surface.
	Position(uv math.Vec2) math.Vec3
}

// Funcs adapts a pair of plain functions to the Function interface.
type Funcs struct {
	UVFunc       func(g Grid, u, v int) math.Vec2
	PositionFunc func(uv math.Vec2) math.Vec3
}

// UV implements Function.
func (f Funcs) UV(g Grid, u, v int) math.Vec2 {
	return f.UVFunc(g, u, v)
}

// Position implements Function.
func (f Funcs) Position(uv math.Vec2) math.Vec3 {
	return f.PositionFunc(uv)
}

// UnitUV maps (u, v) to [0,1)×[0,1). Cell U-1 stops one step short of 1,
// so a periodic function closes cleanly across the seam.
func UnitUV(g Grid, u, v int) math.Vec2 {
	return math.Vec2{X: frac(u, g.U), Y: frac(v, g.V)}
}

// AngularUV maps (u, v) to [0,2π)×[0,2π).
func AngularUV(g Grid, u, v int) math.Vec2 {
	return UnitUV(g, u, v).Scale(2 * gomath.Pi)
}

// frac returns i/n, or 0 for an empty axis.
func frac(i, n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(i) / float32(n)
}

// span returns i/(n-1) so that the last cell lands exactly on 1.
// Used by functions whose domain is meant to be left open.
func span(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}
