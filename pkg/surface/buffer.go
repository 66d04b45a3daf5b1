package surface

import (
	"fmt"
	"strings"

	"github.com/Faultbox/projective/pkg/math"
)

// Vertex attribute sizes, in floats.
const (
	PositionSize    = 3
	NormalSize      = 3
	UVSize          = 2
	FloatsPerVertex = PositionSize + NormalSize + UVSize

	// FloatBytes is the size of one buffer element.
	FloatBytes = 4
)

// Layout selects how a VertexBuffer arranges its attributes.
type Layout int

const (
	// LayoutBlock stores all positions, then all normals, then all UVs:
	// [n*3 position][n*3 normal][n*2 uv].
	LayoutBlock Layout = iota
	// LayoutInterleaved stores [x,y,z,nx,ny,nz,u,v] per vertex.
	LayoutInterleaved
)

// String returns the config name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutBlock:
		return "block"
	case LayoutInterleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout parses "block" or "interleaved".
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "block":
		return LayoutBlock, nil
	case "interleaved":
		return LayoutInterleaved, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", name)
	}
}

// Mesh holds unpacked per-vertex arrays in emission order. Vertices are
// not shared: every triangle owns its three.
type Mesh struct {
	Grid      Grid
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Pack copies the mesh into a single float buffer.
func (m *Mesh) Pack(layout Layout) *VertexBuffer {
	n := m.VertexCount()
	b := &VertexBuffer{
		Data:   make([]float32, n*FloatsPerVertex),
		Layout: layout,
		Grid:   m.Grid,
	}
	for i := range n {
		b.set(i, m.Positions[i], m.Normals[i], m.UVs[i])
	}
	return b
}

// Attribute describes where one vertex attribute lives in the buffer,
// in the terms glVertexAttribPointer expects.
type Attribute struct {
	Name   string
	Size   int // components
	Stride int // bytes
	Offset int // bytes
}

// VertexBuffer is the packed output of a Generator.
type VertexBuffer struct {
	Data   []float32
	Layout Layout
	Grid   Grid
}

// VertexCount returns the number of vertices in the buffer.
func (b *VertexBuffer) VertexCount() int {
	return len(b.Data) / FloatsPerVertex
}

// TriangleCount returns the number of triangles in the buffer.
func (b *VertexBuffer) TriangleCount() int {
	return b.VertexCount() / 3
}

// SizeBytes returns the size of Data in bytes.
func (b *VertexBuffer) SizeBytes() int {
	return len(b.Data) * FloatBytes
}

// Attributes returns position, normal and UV attribute descriptors, in
// shader location order.
func (b *VertexBuffer) Attributes() []Attribute {
	if b.Layout == LayoutInterleaved {
		stride := FloatsPerVertex * FloatBytes
		return []Attribute{
			{Name: "position", Size: PositionSize, Stride: stride, Offset: 0},
			{Name: "normal", Size: NormalSize, Stride: stride, Offset: PositionSize * FloatBytes},
			{Name: "uv", Size: UVSize, Stride: stride, Offset: (PositionSize + NormalSize) * FloatBytes},
		}
	}
	n := b.VertexCount()
	return []Attribute{
		{Name: "position", Size: PositionSize, Stride: PositionSize * FloatBytes, Offset: 0},
		{Name: "normal", Size: NormalSize, Stride: NormalSize * FloatBytes, Offset: n * PositionSize * FloatBytes},
		{Name: "uv", Size: UVSize, Stride: UVSize * FloatBytes, Offset: n * (PositionSize + NormalSize) * FloatBytes},
	}
}

// offsets returns the float index of vertex i's position, normal and UV.
func (b *VertexBuffer) offsets(i int) (pos, norm, uv int) {
	if b.Layout == LayoutInterleaved {
		base := i * FloatsPerVertex
		return base, base + PositionSize, base + PositionSize + NormalSize
	}
	n := b.VertexCount()
	return i * PositionSize, n*PositionSize + i*NormalSize, n*(PositionSize+NormalSize) + i*UVSize
}

func (b *VertexBuffer) set(i int, p, n math.Vec3, uv math.Vec2) {
	po, no, uo := b.offsets(i)
	b.Data[po], b.Data[po+1], b.Data[po+2] = p.X, p.Y, p.Z
	b.Data[no], b.Data[no+1], b.Data[no+2] = n.X, n.Y, n.Z
	b.Data[uo], b.Data[uo+1] = uv.X, uv.Y
}

// Position returns the position of vertex i.
func (b *VertexBuffer) Position(i int) math.Vec3 {
	o, _, _ := b.offsets(i)
	return math.Vec3{X: b.Data[o], Y: b.Data[o+1], Z: b.Data[o+2]}
}

// Normal returns the normal of vertex i.
func (b *VertexBuffer) Normal(i int) math.Vec3 {
	_, o, _ := b.offsets(i)
	return math.Vec3{X: b.Data[o], Y: b.Data[o+1], Z: b.Data[o+2]}
}

// UV returns the texture coordinate of vertex i.
func (b *VertexBuffer) UV(i int) math.Vec2 {
	_, _, o := b.offsets(i)
	return math.Vec2{X: b.Data[o], Y: b.Data[o+1]}
}

// Mesh unpacks the buffer into separate arrays.
func (b *VertexBuffer) Mesh() *Mesh {
	n := b.VertexCount()
	m := &Mesh{
		Grid:      b.Grid,
		Positions: make([]math.Vec3, n),
		Normals:   make([]math.Vec3, n),
		UVs:       make([]math.Vec2, n),
	}
	for i := range n {
		m.Positions[i] = b.Position(i)
		m.Normals[i] = b.Normal(i)
		m.UVs[i] = b.UV(i)
	}
	return m
}

// Relayout returns a copy of the buffer in the given layout.
func (b *VertexBuffer) Relayout(layout Layout) *VertexBuffer {
	return b.Mesh().Pack(layout)
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (bb Bounds) Center() math.Vec3 {
	return bb.Min.Add(bb.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (bb Bounds) Size() math.Vec3 {
	return bb.Max.Sub(bb.Min)
}

// Bounds returns the bounding box of all vertex positions. An empty
// buffer has zero bounds.
func (b *VertexBuffer) Bounds() Bounds {
	n := b.VertexCount()
	if n == 0 {
		return Bounds{}
	}
	first := b.Position(0)
	bb := Bounds{Min: first, Max: first}
	for i := 1; i < n; i++ {
		p := b.Position(i)
		bb.Min = bb.Min.Min(p)
		bb.Max = bb.Max.Max(p)
	}
	return bb
}
