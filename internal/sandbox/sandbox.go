// Package sandbox runs one frame of the extrusion demo: apply keyboard
// input to the camera, then draw every solid in the scene.
package sandbox

import (
	"github.com/Faultbox/rlb/internal/engine/debug"
	"github.com/Faultbox/rlb/internal/engine/input"
	"github.com/Faultbox/rlb/internal/engine/renderer"
	"github.com/Faultbox/rlb/internal/scene"
	"github.com/Faultbox/rlb/pkg/math"
)

// Options holds per-frame behavior switches.
type Options struct {
	Step     float32 // Camera translation per frame while a movement key is held
	Outlines bool
}

// Sandbox owns the scene and draws it through a renderer.
type Sandbox struct {
	renderer *renderer.Renderer
	scene    *scene.Scene
	opts     Options
}

// New creates a sandbox drawing sc through r.
func New(r *renderer.Renderer, sc *scene.Scene, opts Options) *Sandbox {
	return &Sandbox{
		renderer: r,
		scene:    sc,
		opts:     opts,
	}
}

// Frame applies this frame's keys and renders the scene. It reports whether
// close was requested; the frame is still drawn in that case, and the caller
// stops after presenting it.
func (s *Sandbox) Frame(keys input.KeyState) (closeRequested bool) {
	action := input.Resolve(keys, s.opts.Step)
	if action.Translate != (math.Vec3{}) {
		s.renderer.SetCameraTranslation(s.renderer.CameraTranslation().Add(action.Translate))
	}

	s.render()
	return action.Close
}

func (s *Sandbox) render() {
	s.renderer.Begin()
	for _, solid := range s.scene.Solids(s.renderer.CameraTranslation()) {
		s.renderer.DrawSolidShape(solid.Base, solid.Height, solid.Color)
		if s.opts.Outlines {
			s.drawOutline(solid)
		}
	}
}

func (s *Sandbox) drawOutline(solid scene.Solid) {
	for _, seg := range debug.OutlineSegments(solid.Base, solid.Height) {
		s.renderer.DrawLine(seg.Start, seg.End, scene.DarkGray)
	}
	s.renderer.DrawPoints(solid.Base, scene.Red)
}
