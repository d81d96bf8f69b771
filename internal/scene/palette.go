package scene

import "github.com/Faultbox/rlb/pkg/math"

// Palette colors.
var (
	DarkGray = math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}
	Pink     = math.Vec3{X: 1.0, Y: 0.4, Z: 0.7}
	Orange   = math.Vec3{X: 1.0, Y: 0.5, Z: 0.0}
	DarkBlue = math.Vec3{X: 0.0, Y: 0.0, Z: 0.5}
	Green    = math.Vec3{X: 0.0, Y: 0.5, Z: 0.0}
	Gray     = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	Red      = math.Vec3{X: 1.0, Y: 0.0, Z: 0.0}
)
