// Package debug provides debug visualization helpers.
package debug

import "github.com/Faultbox/rlb/pkg/math"

// DegenerateEpsilon is the per-axis distance under which segment ends count as one point.
const DegenerateEpsilon = 1e-6

// Segment is one line of a wireframe.
type Segment struct {
	Start, End math.Vec3
}

// Degenerate reports whether both ends coincide within DegenerateEpsilon.
func (s Segment) Degenerate() bool {
	return s.Start.ApproxEqual(s.End, DegenerateEpsilon)
}

// OutlineSegments returns the closed wireframe of a prism standing on base:
// the bottom ring, the top ring lifted by height along Z, and one vertical
// edge per point. Zero-length segments (repeated points, zero height) are
// left out, so a clean outline yields 3*len(base) segments. Returns nil for
// fewer than 2 points.
func OutlineSegments(base []math.Vec3, height float32) []Segment {
	n := len(base)
	if n < 2 {
		return nil
	}

	segs := make([]Segment, 0, 3*n)
	add := func(s Segment) {
		if !s.Degenerate() {
			segs = append(segs, s)
		}
	}

	// Bottom ring
	for i := 0; i < n; i++ {
		add(Segment{base[i], base[(i+1)%n]})
	}
	// Top ring
	for i := 0; i < n; i++ {
		add(Segment{base[i].Lift(height), base[(i+1)%n].Lift(height)})
	}
	// Vertical edges
	for i := 0; i < n; i++ {
		add(Segment{base[i], base[i].Lift(height)})
	}
	return segs
}
