package renderer

import "github.com/Faultbox/rlb/pkg/math"

// Primitive is the GL primitive a buffer is drawn as.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// Buffer is a transient vertex array + vertex buffer pair.
type Buffer struct {
	VAO uint32
	VBO uint32
}

// DrawState is the per-draw pipeline state.
type DrawState struct {
	Primitive Primitive
	Model     math.Mat4
	LineWidth float32
	PointSize float32
	DepthTest bool
}

// Backend is the GPU side of the renderer. Buffers returned by Acquire are
// valid until the matching Release and are never reused across draws.
type Backend interface {
	Clear(color math.Vec3)
	Viewport(width, height int)
	Acquire(vertices []float32) Buffer
	Draw(buf Buffer, state DrawState, vertexCount int32)
	Release(buf Buffer)
	Close()
}
