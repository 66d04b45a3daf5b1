package surface

import (
	"fmt"
	"strings"

	"github.com/Faultbox/projective/pkg/math"
)

// Shading selects how vertex normals are computed.
type Shading int

const (
	// ShadingFlat gives every vertex of a triangle that triangle's face normal.
	ShadingFlat Shading = iota
	// ShadingSmooth gives every vertex the averaged normal of its grid cell.
	ShadingSmooth
)

// String returns the config name of the shading mode.
func (s Shading) String() string {
	switch s {
	case ShadingFlat:
		return "flat"
	case ShadingSmooth:
		return "smooth"
	default:
		return fmt.Sprintf("Shading(%d)", int(s))
	}
}

// ParseShading parses "flat" or "smooth".
func ParseShading(name string) (Shading, error) {
	switch strings.ToLower(name) {
	case "flat":
		return ShadingFlat, nil
	case "smooth":
		return ShadingSmooth, nil
	default:
		return 0, fmt.Errorf("unknown shading %q", name)
	}
}

// Closure selects which parameter axes wrap around. The zero value closes
// both axes: cell U-1 connects back to cell 0, and likewise for V.
type Closure struct {
	OpenU bool
	OpenV bool
}

// Options configures a Generator.
type Options struct {
	Shading Shading
	Layout  Layout
	Closure Closure
}

// Generator tessellates a Function. It keeps no state between calls and
// may be used from several goroutines at once.
type Generator struct {
	fn   Function
	opts Options
}

// New creates a generator for fn.
func New(fn Function, opts Options) *Generator {
	return &Generator{fn: fn, opts: opts}
}

// Options returns the generator options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate tessellates the surface over a uSegments×vSegments grid and
// packs the result using the configured layout. Non-positive segment
// counts produce an empty buffer.
func (g *Generator) Generate(uSegments, vSegments int) *VertexBuffer {
	m := g.Mesh(uSegments, vSegments)
	return m.Pack(g.opts.Layout)
}

// Mesh runs the tessellation and returns unpacked per-vertex arrays.
func (g *Generator) Mesh(uSegments, vSegments int) *Mesh {
	grid := Grid{U: uSegments, V: vSegments}
	if grid.Cells() == 0 {
		return &Mesh{Grid: grid}
	}

	t := newTessellation(grid, g.opts.Closure)
	t.samplePositions(g.fn)
	m := t.triangulate(g.fn)

	switch g.opts.Shading {
	case ShadingSmooth:
		t.averageNormals()
		m.Normals = t.smoothNormals(m.Normals)
	default:
		m.Normals = t.flatNormals(m.Normals)
	}
	return m
}

// QuadCount returns the number of quads the grid emits for a closure.
func QuadCount(g Grid, c Closure) int {
	if g.Cells() == 0 {
		return 0
	}
	return quadsAlong(g.U, c.OpenU) * quadsAlong(g.V, c.OpenV)
}

// QuadOf returns the anchor cell of the quad that emitted triangle tri.
// Triangles come in pairs per quad, u-major, so tri/2 walks the quads.
func QuadOf(g Grid, c Closure, tri int) (u, v int) {
	vq := quadsAlong(g.V, c.OpenV)
	if vq <= 0 || tri < 0 {
		return 0, 0
	}
	q := tri / 2
	return q / vq, q % vq
}

func quadsAlong(n int, open bool) int {
	if open {
		return n - 1
	}
	return n
}

// tessellation is the scratch state of one Generate call.
type tessellation struct {
	grid    Grid
	closure Closure

	positions []math.Vec3
	faces     []math.Vec3 // one face normal per emitted triangle

	normalSum   []math.Vec3
	divideCount []int
	cellNormal  []math.Vec3
}

func newTessellation(grid Grid, closure Closure) *tessellation {
	n := grid.Cells()
	return &tessellation{
		grid:        grid,
		closure:     closure,
		positions:   make([]math.Vec3, n),
		normalSum:   make([]math.Vec3, n),
		divideCount: make([]int, n),
	}
}

// samplePositions evaluates the surface at every grid cell.
func (t *tessellation) samplePositions(fn Function) {
	for u := range t.grid.U {
		for v := range t.grid.V {
			t.positions[t.grid.Index(u, v)] = fn.Position(fn.UV(t.grid, u, v))
		}
	}
}

// forEachHalfQuad calls visit for triangle A then triangle B of every quad,
// in emission order.
func (t *tessellation) forEachHalfQuad(visit func(u, v, h int)) {
	uq := quadsAlong(t.grid.U, t.closure.OpenU)
	vq := quadsAlong(t.grid.V, t.closure.OpenV)
	for u := range uq {
		for v := range vq {
			visit(u, v, 0)
			visit(u, v, 1)
		}
	}
}

// halfQuad returns the grid coordinates of the three corners of half h of
// the quad anchored at (u, v). Half 0 uses quad corners 0,1,2 and half 1
// uses 0,2,3, so both share corner 0 and the diagonal.
func (t *tessellation) halfQuad(u, v, h int) [3][2]int {
	u1 := (u + 1) % t.grid.U
	v1 := (v + 1) % t.grid.V
	quad := [4][2]int{{u, v}, {u1, v}, {u1, v1}, {u, v1}}
	return [3][2]int{quad[0], quad[1+h], quad[2+h]}
}

// triangulate emits positions and UVs for every triangle and accumulates
// face normals into the per-cell sums.
func (t *tessellation) triangulate(fn Function) *Mesh {
	vertices := 6 * QuadCount(t.grid, t.closure)
	m := &Mesh{
		Grid:      t.grid,
		Positions: make([]math.Vec3, 0, vertices),
		UVs:       make([]math.Vec2, 0, vertices),
		Normals:   make([]math.Vec3, 0, vertices),
	}
	t.faces = make([]math.Vec3, 0, vertices/3)

	t.forEachHalfQuad(func(u, v, h int) {
		corners := t.halfQuad(u, v, h)
		var idx [3]int
		var p [3]math.Vec3
		for k, c := range corners {
			idx[k] = t.grid.Index(c[0], c[1])
			p[k] = t.positions[idx[k]]
		}

		n := math.FaceNormal(p[0], p[1], p[2])
		t.faces = append(t.faces, n)

		for k, c := range corners {
			m.Positions = append(m.Positions, p[k])
			m.UVs = append(m.UVs, fn.UV(t.grid, c[0], c[1]))
			t.normalSum[idx[k]] = t.normalSum[idx[k]].Add(n)
			t.divideCount[idx[k]]++
		}
	})
	return m
}

// flatNormals repeats each face normal for its three vertices.
func (t *tessellation) flatNormals(dst []math.Vec3) []math.Vec3 {
	for _, n := range t.faces {
		dst = append(dst, n, n, n)
	}
	return dst
}

// averageNormals divides each cell's normal sum by the number of triangle
// corners that touched it, then rescales to unit length.
func (t *tessellation) averageNormals() {
	t.cellNormal = make([]math.Vec3, len(t.normalSum))
	for i, sum := range t.normalSum {
		if t.divideCount[i] == 0 {
			continue
		}
		t.cellNormal[i] = sum.Scale(1 / float32(t.divideCount[i])).Normalize()
	}
}

// smoothNormals assigns each emitted vertex the averaged normal of the cell
// it came from, walking the quads in the same order as triangulate.
func (t *tessellation) smoothNormals(dst []math.Vec3) []math.Vec3 {
	t.forEachHalfQuad(func(u, v, h int) {
		for _, c := range t.halfQuad(u, v, h) {
			dst = append(dst, t.cellNormal[t.grid.Index(c[0], c[1])])
		}
	})
	return dst
}
