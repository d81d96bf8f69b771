package mesh

import (
	"errors"

	"github.com/Faultbox/rlb/pkg/math"
)

// ErrNoPoints is returned by Points for an empty point list.
var ErrNoPoints = errors.New("attempted to draw empty points list")

// Line returns the two-vertex buffer for a line segment.
func Line(start, end, color math.Vec3) Mesh {
	buf := make([]float32, 0, 2*FloatsPerVertex)
	buf = appendVertex(buf, start, color)
	buf = appendVertex(buf, end, color)
	return Mesh{Vertices: buf}
}

// Points returns one vertex per point, all sharing color.
func Points(points []math.Vec3, color math.Vec3) (Mesh, error) {
	if len(points) == 0 {
		return Mesh{}, ErrNoPoints
	}
	buf := make([]float32, 0, len(points)*FloatsPerVertex)
	for _, p := range points {
		buf = appendVertex(buf, p, color)
	}
	return Mesh{Vertices: buf}, nil
}
