// Package meshio writes generated surface buffers to disk.
package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/projective/pkg/surface"
)

// WriteOBJ writes buf as a Wavefront OBJ object. Every emitted vertex gets
// its own v/vt/vn line since the buffer does not share vertices.
func WriteOBJ(w io.Writer, buf *surface.VertexBuffer, name string) error {
	bw := bufio.NewWriter(w)
	n := buf.VertexCount()

	fmt.Fprintf(bw, "# %d vertices, %d triangles, %dx%d grid\n", n, buf.TriangleCount(), buf.Grid.U, buf.Grid.V)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for i := range n {
		p := buf.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := range n {
		uv := buf.UV(i)
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i := range n {
		nm := buf.Normal(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", nm.X, nm.Y, nm.Z)
	}

	// OBJ indices are 1-based.
	for t := range buf.TriangleCount() {
		a, b, c := 3*t+1, 3*t+2, 3*t+3
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}
