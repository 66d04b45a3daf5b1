package surface

import (
	"context"
	"sync"
)

// Request is one independent generation job.
type Request struct {
	Function  Function
	Options   Options
	USegments int
	VSegments int
}

// GenerateAll runs every request on its own goroutine. Each generation
// owns its arrays, so no locking is involved. Cancelling ctx stops
// requests that have not started yet; a generation that has started
// always runs to completion. Results are returned in request order.
func GenerateAll(ctx context.Context, reqs []Request) ([]*VertexBuffer, error) {
	out := make([]*VertexBuffer, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			out[i] = New(req.Function, req.Options).Generate(req.USegments, req.VSegments)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
