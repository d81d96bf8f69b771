package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/rlb/pkg/math"
)

// MinPolygonVertices is the smallest outline Extrude accepts.
const MinPolygonVertices = 3

// ErrTooFewVertices is returned when an outline has fewer than MinPolygonVertices points.
var ErrTooFewVertices = errors.New("not enough vertices to extrude a solid shape")

// Layout selects what Extrude writes ahead of the side walls.
type Layout int

const (
	// LayoutWalls emits only the side-wall triangles: 36 floats per base edge.
	LayoutWalls Layout = iota

	// LayoutLegacy prepends the bottom-cap and top-cap vertex runs (one vertex
	// per base point each) before the walls. The cap runs are not triangulated
	// faces; they reproduce the buffer shape older consumers were built against.
	LayoutLegacy
)

// String returns the config name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutWalls:
		return "walls"
	case LayoutLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout maps a config name to a Layout. Unknown names yield LayoutWalls and false.
func ParseLayout(name string) (Layout, bool) {
	switch name {
	case "", "walls":
		return LayoutWalls, true
	case "legacy":
		return LayoutLegacy, true
	default:
		return LayoutWalls, false
	}
}

// Extrude builds the side walls of the prism standing on base, lifted by
// height along Z, every vertex colored color. Caps are not filled.
//
// For each edge i -> next (next wraps to 0 after the last point) two
// triangles are written:
//
//	A: base[i], base[next], base[i]+h
//	B: base[next], base[next]+h, base[i]+h
//
// An outline with fewer than 3 points yields an empty Mesh and an error
// wrapping ErrTooFewVertices. Any height, including zero or negative, is accepted.
func Extrude(base Polygon, height float32, color math.Vec3) (Mesh, error) {
	return ExtrudeLayout(base, height, color, LayoutWalls)
}

// ExtrudeLayout is Extrude with an explicit buffer layout.
func ExtrudeLayout(base Polygon, height float32, color math.Vec3, layout Layout) (Mesh, error) {
	n := len(base)
	if n < MinPolygonVertices {
		return Mesh{}, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewVertices, n, MinPolygonVertices)
	}

	size := n * 2 * FloatsPerTriangle
	if layout == LayoutLegacy {
		size += 2 * n * FloatsPerVertex
	}
	buf := make([]float32, 0, size)

	if layout == LayoutLegacy {
		for _, p := range base {
			buf = appendVertex(buf, p, color)
		}
		for _, p := range base {
			buf = appendVertex(buf, p.Lift(height), color)
		}
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		bottom, bottomNext := base[i], base[next]
		top, topNext := bottom.Lift(height), bottomNext.Lift(height)

		buf = appendVertex(buf, bottom, color)
		buf = appendVertex(buf, bottomNext, color)
		buf = appendVertex(buf, top, color)

		buf = appendVertex(buf, bottomNext, color)
		buf = appendVertex(buf, topNext, color)
		buf = appendVertex(buf, top, color)
	}

	return Mesh{Vertices: buf}, nil
}
