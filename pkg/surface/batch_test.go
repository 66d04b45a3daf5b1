package surface

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateAll(t *testing.T) {
	reqs := make([]Request, 0, len(Catalog()))
	for _, e := range Catalog() {
		reqs = append(reqs, Request{
			Function:  e.Function,
			Options:   Options{Shading: ShadingSmooth, Closure: e.Closure},
			USegments: 10,
			VSegments: 12,
		})
	}

	bufs, err := GenerateAll(context.Background(), reqs)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(bufs) != len(reqs) {
		t.Fatalf("got %d buffers, want %d", len(bufs), len(reqs))
	}
	for i, req := range reqs {
		want := New(req.Function, req.Options).Generate(req.USegments, req.VSegments)
		if len(bufs[i].Data) != len(want.Data) {
			t.Fatalf("request %d: length %d, want %d", i, len(bufs[i].Data), len(want.Data))
		}
		for j := range want.Data {
			if bufs[i].Data[j] != want.Data[j] {
				t.Fatalf("request %d: Data[%d] differs from sequential run", i, j)
			}
		}
	}
}

func TestGenerateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateAll(ctx, []Request{{Function: testTorus(), USegments: 4, VSegments: 4}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
