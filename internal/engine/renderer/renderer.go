// Package renderer draws interleaved position+color buffers.
//
// Every draw call is self-contained: it acquires a vertex array and buffer,
// uploads the vertices, issues one draw and releases both before returning.
// Nothing is pooled across calls or frames.
package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rlb/internal/engine/mesh"
	"github.com/Faultbox/rlb/internal/logger"
	"github.com/Faultbox/rlb/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	LineWidth  float32
	PointSize  float32
	ClearColor math.Vec3
	Layout     mesh.Layout
}

// Renderer is the drawing facade over a Backend.
type Renderer struct {
	config  Config
	backend Backend

	// Set by input handling, read once per frame by the scene.
	cameraTranslation math.Vec3
}

// New creates a renderer drawing through backend.
func New(cfg Config, backend Backend) *Renderer {
	r := &Renderer{
		config:  cfg,
		backend: backend,
	}
	backend.Viewport(cfg.Width, cfg.Height)
	return r
}

// Close releases the backend.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.backend.Close()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.backend.Viewport(width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.backend.Clear(r.config.ClearColor)
}

// SetCameraTranslation replaces the camera offset.
func (r *Renderer) SetCameraTranslation(t math.Vec3) {
	r.cameraTranslation = t
}

// CameraTranslation returns the camera offset.
func (r *Renderer) CameraTranslation() math.Vec3 {
	return r.cameraTranslation
}

// DrawLine draws a single segment.
func (r *Renderer) DrawLine(start, end, color math.Vec3) {
	m := mesh.Line(start, end, color)
	r.submit(m, DrawState{Primitive: Lines, LineWidth: r.config.LineWidth}, int32(m.VertexCount()))
}

// DrawPoints draws one point per entry. An empty list is logged and skipped.
func (r *Renderer) DrawPoints(points []math.Vec3, color math.Vec3) {
	m, err := mesh.Points(points, color)
	if err != nil {
		logger.Warn("skipping points draw", zap.Error(err))
		return
	}
	r.submit(m, DrawState{Primitive: Points, PointSize: r.config.PointSize}, int32(m.VertexCount()))
}

// DrawTriangles draws m as a triangle list. An empty mesh is skipped.
func (r *Renderer) DrawTriangles(m mesh.Mesh) {
	triangles := m.TriangleCount()
	if triangles == 0 {
		logger.Debug("skipping empty triangle draw")
		return
	}
	r.submit(m, DrawState{Primitive: Triangles, DepthTest: true}, int32(triangles*mesh.VerticesPerTriangle))
}

// DrawSolidShape extrudes base by height and draws the result. An outline
// with fewer than three points is logged and skipped.
func (r *Renderer) DrawSolidShape(base mesh.Polygon, height float32, color math.Vec3) {
	m, err := mesh.ExtrudeLayout(base, height, color, r.config.Layout)
	if err != nil {
		logger.Warn("skipping solid shape", zap.Error(err), zap.Int("vertices", len(base)))
		return
	}
	r.DrawTriangles(m)
}

// submit uploads m into a fresh buffer, draws count vertices and releases the buffer.
func (r *Renderer) submit(m mesh.Mesh, state DrawState, count int32) {
	buf := r.backend.Acquire(m.Vertices)
	defer r.backend.Release(buf)

	// The camera offset is applied to scene geometry on the CPU, not here.
	state.Model = math.Identity()
	r.backend.Draw(buf, state, count)
}
