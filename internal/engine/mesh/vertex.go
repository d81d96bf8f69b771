// Package mesh builds interleaved position+color vertex buffers for the renderer.
//
// Every buffer produced here uses the same layout: 6 float32 per vertex,
// position.xyz followed by color.rgb, with consecutive vertices grouped by
// the primitive the buffer is drawn as.
package mesh

import "github.com/Faultbox/rlb/pkg/math"

// Vertex layout of every buffer in this package.
const (
	PositionComponents  = 3
	ColorComponents     = 3
	FloatsPerVertex     = PositionComponents + ColorComponents
	VerticesPerTriangle = 3
	FloatsPerTriangle   = FloatsPerVertex * VerticesPerTriangle

	// StrideBytes is the byte distance between consecutive vertices.
	StrideBytes = FloatsPerVertex * 4
	// ColorOffsetBytes is the byte offset of the color attribute within a vertex.
	ColorOffsetBytes = PositionComponents * 4
)

// Polygon is an ordered, closed outline. Points are assumed coplanar and
// non-self-intersecting; nothing here checks that.
type Polygon []math.Vec3

// Mesh is a flat interleaved vertex buffer. It is built fresh per call and
// carries no identity beyond its contents.
type Mesh struct {
	Vertices []float32
}

// Empty reports whether the mesh holds no vertex data.
func (m Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// VertexCount returns the number of whole vertices in the buffer.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// TriangleCount returns the number of whole triangles in the buffer.
func (m Mesh) TriangleCount() int {
	return len(m.Vertices) / FloatsPerTriangle
}

// appendVertex appends one interleaved vertex to buf.
func appendVertex(buf []float32, pos, color math.Vec3) []float32 {
	return append(buf, pos.X, pos.Y, pos.Z, color.X, color.Y, color.Z)
}
