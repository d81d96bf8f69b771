// Package scene holds the contours the sandbox extrudes each frame.
package scene

import (
	"github.com/Faultbox/rlb/internal/engine/mesh"
	"github.com/Faultbox/rlb/pkg/math"
)

// Solid is one extrusion to draw this frame.
type Solid struct {
	Base   mesh.Polygon
	Height float32
	Color  math.Vec3
}

// Scene is a list of base contours sharing one extrusion height.
// The first contour is drawn in Highlight, the rest in Fill.
type Scene struct {
	Contours  []mesh.Polygon
	Height    float32
	Highlight math.Vec3
	Fill      math.Vec3
}

// Placeholder returns the built-in demo scene.
func Placeholder(height float32) *Scene {
	return &Scene{
		Contours: []mesh.Polygon{
			{
				{X: -0.3, Y: 0.7, Z: 0.2},
				{X: 0.6, Y: 0.4, Z: -0.1},
				{X: 0.8, Y: -0.5, Z: 0.3},
				{X: 0.1, Y: -0.8, Z: -0.2},
				{X: -0.7, Y: -0.3, Z: 0.1},
				{X: -0.5, Y: 0.2, Z: -0.3},
			},
			{
				{X: -0.5, Y: -0.5, Z: 0.0},
				{X: 0.0, Y: 0.5, Z: 0.0},
				{X: 0.5, Y: -0.5, Z: 0.0},
			},
		},
		Height:    height,
		Highlight: Pink,
		Fill:      Gray,
	}
}

// Solids returns this frame's extrusions with every contour point moved by
// camera. Contours are copied, never modified in place.
func (s *Scene) Solids(camera math.Vec3) []Solid {
	view := math.TranslateVec(camera)

	solids := make([]Solid, 0, len(s.Contours))
	for i, contour := range s.Contours {
		base := make(mesh.Polygon, len(contour))
		for j, p := range contour {
			base[j] = view.TransformVec3(p)
		}

		color := s.Fill
		if i == 0 {
			color = s.Highlight
		}
		solids = append(solids, Solid{Base: base, Height: s.Height, Color: color})
	}
	return solids
}
