// Package glbackend implements renderer.Backend on OpenGL 3.3 core.
package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rlb/internal/engine/mesh"
	"github.com/Faultbox/rlb/internal/engine/renderer"
	"github.com/Faultbox/rlb/internal/engine/shader"
	"github.com/Faultbox/rlb/internal/logger"
	"github.com/Faultbox/rlb/pkg/math"
)

// Backend owns the solid shader program.
type Backend struct {
	program  uint32
	modelLoc int32
}

var _ renderer.Backend = (*Backend)(nil)

// New loads GL entry points and builds the shader program.
// IMPORTANT: Must be called AFTER the OpenGL context is current!
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.CompileSolid()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	modelLoc, err := shader.UniformLocation(program, shader.ModelUniform)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	logger.Debug("shader program created", zap.Uint32("program", program))

	return &Backend{
		program:  program,
		modelLoc: modelLoc,
	}, nil
}

// Close deletes the shader program.
func (b *Backend) Close() {
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}

// Clear clears color and depth.
func (b *Backend) Clear(c math.Vec3) {
	gl.ClearColor(c.X, c.Y, c.Z, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the GL viewport.
func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Acquire creates a VAO/VBO pair holding vertices in the interleaved layout.
func (b *Backend) Acquire(vertices []float32) renderer.Buffer {
	var buf renderer.Buffer

	gl.GenVertexArrays(1, &buf.VAO)
	gl.BindVertexArray(buf.VAO)

	gl.GenBuffers(1, &buf.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, mesh.PositionComponents, gl.FLOAT, false, mesh.StrideBytes, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, mesh.ColorComponents, gl.FLOAT, false, mesh.StrideBytes, gl.PtrOffset(mesh.ColorOffsetBytes))
	gl.EnableVertexAttribArray(1)

	return buf
}

// Draw issues one glDrawArrays for buf.
func (b *Backend) Draw(buf renderer.Buffer, state renderer.DrawState, vertexCount int32) {
	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.modelLoc, 1, false, state.Model.Ptr())

	var mode uint32
	switch state.Primitive {
	case renderer.Lines:
		mode = gl.LINES
		gl.LineWidth(state.LineWidth)
	case renderer.Points:
		mode = gl.POINTS
		gl.PointSize(state.PointSize)
	default:
		mode = gl.TRIANGLES
	}

	if state.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	gl.BindVertexArray(buf.VAO)
	gl.DrawArrays(mode, 0, vertexCount)
}

// Release unbinds and deletes buf.
func (b *Backend) Release(buf renderer.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.DeleteVertexArrays(1, &buf.VAO)
	gl.DeleteBuffers(1, &buf.VBO)
}
