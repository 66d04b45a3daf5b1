package surface

import "github.com/Faultbox/projective/pkg/math"

// Frame is a local coordinate frame at a grid cell.
type Frame struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec3 // along increasing u
}

// FrameAt samples fn around cell (u, v) and returns its local frame. The
// normal comes from finite differences to the neighbouring cells, using
// the same winding as the generated triangles. On an open axis the last
// cell differences backwards. Indices outside the grid are wrapped.
func FrameAt(fn Function, g Grid, c Closure, u, v int) Frame {
	if g.Cells() == 0 {
		return Frame{}
	}
	u = wrap(u, g.U)
	v = wrap(v, g.V)
	at := func(u, v int) math.Vec3 {
		return fn.Position(fn.UV(g, u, v))
	}

	p := at(u, v)
	du := difference(at, p, u, v, g.U, c.OpenU, true)
	dv := difference(at, p, u, v, g.V, c.OpenV, false)

	return Frame{
		Position: p,
		Normal:   du.Cross(dv).Normalize(),
		Tangent:  du.Normalize(),
	}
}

func difference(at func(u, v int) math.Vec3, p math.Vec3, u, v, n int, open, alongU bool) math.Vec3 {
	i := v
	if alongU {
		i = u
	}
	step := func(j int) math.Vec3 {
		if alongU {
			return at(j, v)
		}
		return at(u, j)
	}
	if open && i == n-1 {
		if n < 2 {
			return math.Vec3{}
		}
		return p.Sub(step(i - 1))
	}
	return step((i + 1) % n).Sub(p)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
