package shader

import _ "embed"

// SolidVertexShader transforms position by the model uniform and passes color through.
//
//go:embed solid.vert
var SolidVertexShader string

// SolidFragmentShader outputs the interpolated vertex color.
//
//go:embed solid.frag
var SolidFragmentShader string

// ModelUniform is the name of the only uniform in the solid program.
const ModelUniform = "model"
