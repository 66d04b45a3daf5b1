package surface

import (
	"testing"

	"github.com/Faultbox/projective/pkg/math"
)

func TestLayoutsAgree(t *testing.T) {
	opts := Options{Shading: ShadingSmooth}
	block := New(testTorus(), opts).Generate(6, 5)
	opts.Layout = LayoutInterleaved
	inter := New(testTorus(), opts).Generate(6, 5)

	if len(block.Data) != len(inter.Data) {
		t.Fatalf("lengths differ: %d vs %d", len(block.Data), len(inter.Data))
	}
	for i := range block.VertexCount() {
		if block.Position(i) != inter.Position(i) {
			t.Fatalf("vertex %d: positions differ", i)
		}
		if block.Normal(i) != inter.Normal(i) {
			t.Fatalf("vertex %d: normals differ", i)
		}
		if block.UV(i) != inter.UV(i) {
			t.Fatalf("vertex %d: UVs differ", i)
		}
	}
}

func TestBlockLayoutOffsets(t *testing.T) {
	m := &Mesh{
		Positions: []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}, {X: 7, Y: 8, Z: 9}},
		Normals:   []math.Vec3{{Z: 1}, {Z: 1}, {Z: 1}},
		UVs:       []math.Vec2{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}, {X: 0.5, Y: 0.6}},
	}
	want := []float32{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		0, 0, 1, 0, 0, 1, 0, 0, 1,
		0.1, 0.2, 0.3, 0.4, 0.5, 0.6,
	}
	got := m.Pack(LayoutBlock).Data
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Data[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	inter := m.Pack(LayoutInterleaved).Data
	wantInter := []float32{1, 2, 3, 0, 0, 1, 0.1, 0.2}
	for i, w := range wantInter {
		if inter[i] != w {
			t.Errorf("interleaved Data[%d] = %v, want %v", i, inter[i], w)
		}
	}
}

func TestAttributes(t *testing.T) {
	buf := New(testTorus(), Options{}).Generate(2, 2) // 24 vertices
	n := buf.VertexCount()

	tests := []struct {
		layout Layout
		want   []Attribute
	}{
		{LayoutBlock, []Attribute{
			{Name: "position", Size: 3, Stride: 12, Offset: 0},
			{Name: "normal", Size: 3, Stride: 12, Offset: n * 12},
			{Name: "uv", Size: 2, Stride: 8, Offset: n * 24},
		}},
		{LayoutInterleaved, []Attribute{
			{Name: "position", Size: 3, Stride: 32, Offset: 0},
			{Name: "normal", Size: 3, Stride: 32, Offset: 12},
			{Name: "uv", Size: 2, Stride: 32, Offset: 24},
		}},
	}
	for _, tt := range tests {
		got := buf.Relayout(tt.layout).Attributes()
		if len(got) != len(tt.want) {
			t.Fatalf("%v: %d attributes, want %d", tt.layout, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v: attribute %d = %+v, want %+v", tt.layout, i, got[i], tt.want[i])
			}
		}
	}
	if buf.SizeBytes() != n*FloatsPerVertex*4 {
		t.Errorf("SizeBytes() = %d, want %d", buf.SizeBytes(), n*FloatsPerVertex*4)
	}
}

func TestRelayoutRoundTrip(t *testing.T) {
	buf := New(testTorus(), Options{}).Generate(5, 3)
	back := buf.Relayout(LayoutInterleaved).Relayout(LayoutBlock)
	for i := range buf.Data {
		if buf.Data[i] != back.Data[i] {
			t.Fatalf("Data[%d] = %v after round trip, want %v", i, back.Data[i], buf.Data[i])
		}
	}
}

func TestBounds(t *testing.T) {
	e, _ := Lookup("plane")
	buf := New(e.Function, Options{Closure: e.Closure}).Generate(3, 3)

	bb := buf.Bounds()
	if bb.Min != (math.Vec3{}) || bb.Max != (math.Vec3{X: 1, Y: 1}) {
		t.Errorf("Bounds() = %+v, want [0,0,0]-[1,1,0]", bb)
	}
	if c := bb.Center(); c != (math.Vec3{X: 0.5, Y: 0.5}) {
		t.Errorf("Center() = %v", c)
	}

	empty := New(e.Function, Options{}).Generate(0, 3)
	if empty.Bounds() != (Bounds{}) {
		t.Errorf("empty Bounds() = %+v, want zero", empty.Bounds())
	}
}

func TestParseLayout(t *testing.T) {
	for _, name := range []string{"block", "interleaved"} {
		l, err := ParseLayout(name)
		if err != nil {
			t.Fatalf("ParseLayout(%q): %v", name, err)
		}
		if l.String() != name {
			t.Errorf("ParseLayout(%q).String() = %q", name, l.String())
		}
	}
	if _, err := ParseLayout("soa"); err == nil {
		t.Error("expected error for unknown layout")
	}
}
