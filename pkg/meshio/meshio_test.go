package meshio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/projective/pkg/surface"
)

func testBuffer(layout surface.Layout) *surface.VertexBuffer {
	e, _ := surface.Lookup("torus")
	return surface.New(e.Function, surface.Options{Layout: layout, Closure: e.Closure}).Generate(3, 2)
}

func TestWriteOBJ(t *testing.T) {
	buf := testBuffer(surface.LayoutBlock)

	var out bytes.Buffer
	if err := WriteOBJ(&out, buf, "torus"); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	counts := map[string]int{}
	var lastFace string
	for _, line := range strings.Split(out.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		counts[fields[0]]++
		if fields[0] == "f" {
			lastFace = line
		}
	}

	n := buf.VertexCount() // 36
	if counts["v"] != n || counts["vt"] != n || counts["vn"] != n {
		t.Errorf("v/vt/vn = %d/%d/%d, want %d each", counts["v"], counts["vt"], counts["vn"], n)
	}
	if counts["f"] != buf.TriangleCount() {
		t.Errorf("faces = %d, want %d", counts["f"], buf.TriangleCount())
	}
	if counts["o"] != 1 {
		t.Errorf("object lines = %d, want 1", counts["o"])
	}
	if want := "f 34/34/34 35/35/35 36/36/36"; lastFace != want {
		t.Errorf("last face = %q, want %q", lastFace, want)
	}
}

func TestRawRoundTrip(t *testing.T) {
	for _, layout := range []surface.Layout{surface.LayoutBlock, surface.LayoutInterleaved} {
		buf := testBuffer(layout)

		var out bytes.Buffer
		if err := WriteRaw(&out, buf); err != nil {
			t.Fatalf("WriteRaw: %v", err)
		}
		if got, want := out.Len(), 20+buf.SizeBytes(); got != want {
			t.Errorf("%v: file size = %d, want %d", layout, got, want)
		}

		back, err := ReadRaw(&out)
		if err != nil {
			t.Fatalf("ReadRaw: %v", err)
		}
		if back.Layout != layout || back.Grid != buf.Grid {
			t.Errorf("header = %v %v, want %v %v", back.Layout, back.Grid, layout, buf.Grid)
		}
		if len(back.Data) != len(buf.Data) {
			t.Fatalf("len = %d, want %d", len(back.Data), len(buf.Data))
		}
		for i := range buf.Data {
			if back.Data[i] != buf.Data[i] {
				t.Fatalf("Data[%d] = %v, want %v", i, back.Data[i], buf.Data[i])
			}
		}
	}
}

func TestReadRawErrors(t *testing.T) {
	if _, err := ReadRaw(bytes.NewReader([]byte("NOPE0000000000000000"))); !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("bad magic: err = %v, want ErrInvalidMagic", err)
	}
	if _, err := ReadRaw(bytes.NewReader([]byte("SR"))); err == nil {
		t.Error("short header: expected error")
	}

	var out bytes.Buffer
	if err := WriteRaw(&out, testBuffer(surface.LayoutBlock)); err != nil {
		t.Fatal(err)
	}
	truncated := out.Bytes()[:out.Len()-4]
	if _, err := ReadRaw(bytes.NewReader(truncated)); err == nil {
		t.Error("truncated data: expected error")
	}
}
