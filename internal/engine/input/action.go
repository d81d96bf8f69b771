// Package input turns polled keyboard state into per-frame camera actions.
package input

import "github.com/Faultbox/rlb/pkg/math"

// Key is a keyboard key the sandbox listens to.
type Key int

const (
	KeyEscape Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeySpace
	KeyTab
)

// KeyState reports which keys are held this frame.
type KeyState interface {
	Pressed(k Key) bool
}

// Action is what one frame of keyboard input asks for.
type Action struct {
	Close     bool
	Translate math.Vec3
}

// binding maps a key to the translation direction it moves the camera in.
type binding struct {
	key Key
	dir math.Vec3
}

// Checked in order; the first held key wins.
var bindings = []binding{
	{KeyUp, math.Vec3{Z: 1}},
	{KeyDown, math.Vec3{Z: -1}},
	{KeyRight, math.Vec3{X: -1}},
	{KeyLeft, math.Vec3{X: 1}},
	{KeySpace, math.Vec3{Y: -1}},
	{KeyTab, math.Vec3{Y: 1}},
}

// Resolve turns held keys into at most one action. Escape outranks every
// movement key, and only the first held movement key in binding order moves.
func Resolve(keys KeyState, step float32) Action {
	if keys.Pressed(KeyEscape) {
		return Action{Close: true}
	}
	for _, b := range bindings {
		if keys.Pressed(b.key) {
			return Action{Translate: b.dir.Scale(step)}
		}
	}
	return Action{}
}
