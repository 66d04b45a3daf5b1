package renderer

import (
	"testing"

	"github.com/Faultbox/projective/pkg/surface"
)

func TestUVScale(t *testing.T) {
	tests := []struct {
		name string
		fn   surface.Function
		want float32
	}{
		{"unit domain", surface.UnitPlane(), 1},
		{"angular domain", surface.Torus{Radius: 1, TubeRadius: 0.3}, 1 / (2 * 3.14159265 * 3 / 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := surface.New(tt.fn, surface.Options{}).Generate(4, 4)
			got := uvScale(buf)
			if d := got - tt.want; d > 1e-4 || d < -1e-4 {
				t.Errorf("uvScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUVScaleEmpty(t *testing.T) {
	if got := uvScale(&surface.VertexBuffer{}); got != 1 {
		t.Errorf("uvScale(empty) = %v, want 1", got)
	}
}
