// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/projective/pkg/surface"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around a surface's bounds.
const DefaultBBoxPadding = 0.02

// BBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func BBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, minX, maxY, minZ,
		minX, maxY, minZ, minX, minY, minZ,
		// Top face
		minX, minY, maxZ, maxX, minY, maxZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, minY, maxZ,
		// Vertical edges
		minX, minY, minZ, minX, minY, maxZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		minX, maxY, minZ, minX, maxY, maxZ,
	}
}

// BoundsWireframe creates wireframe vertices around mesh bounds, expanded by
// padding on all sides.
func BoundsWireframe(b surface.Bounds, padding float32) []float32 {
	return BBoxWireframeVertices(
		b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding,
		b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding,
	)
}
