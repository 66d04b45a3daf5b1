package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/projective/pkg/math"
	"github.com/Faultbox/projective/pkg/surface"
)

func TestBBoxWireframeVertices(t *testing.T) {
	v := BBoxWireframeVertices(0, 0, 0, 1, 2, 3)
	if len(v) != BBoxWireframeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(v), BBoxWireframeVertexCount*3)
	}
	for i := 0; i < len(v); i += 3 {
		x, y, z := v[i], v[i+1], v[i+2]
		if (x != 0 && x != 1) || (y != 0 && y != 2) || (z != 0 && z != 3) {
			t.Fatalf("vertex %d = (%v,%v,%v) is not a box corner", i/3, x, y, z)
		}
	}
}

func TestBoundsWireframePadding(t *testing.T) {
	b := surface.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	v := BoundsWireframe(b, 0.5)
	for _, f := range v {
		if f != -1.5 && f != 1.5 {
			t.Fatalf("coordinate %v, want ±1.5", f)
		}
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "projective")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// 2x2: bottom row red, top row blue (GL order is bottom-up).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	name, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(name), "projective_2024-05-01_12-00-00") {
		t.Errorf("filename = %s", name)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Errorf("top-left pixel should be blue after the flip")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
