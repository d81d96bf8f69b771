// Package app runs the sandbox frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rlb/internal/config"
	"github.com/Faultbox/rlb/internal/engine/input/sdlinput"
	"github.com/Faultbox/rlb/internal/engine/mesh"
	"github.com/Faultbox/rlb/internal/engine/renderer"
	"github.com/Faultbox/rlb/internal/engine/renderer/glbackend"
	"github.com/Faultbox/rlb/internal/engine/window"
	"github.com/Faultbox/rlb/internal/logger"
	"github.com/Faultbox/rlb/internal/sandbox"
	"github.com/Faultbox/rlb/internal/scene"
	"github.com/Faultbox/rlb/pkg/math"
)

// App is the running sandbox.
type App struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *sdlinput.Input
	sandbox  *sandbox.Sandbox
}

// New opens the window, loads GL and compiles the shader program.
// Any failure here is fatal for the process.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing sandbox",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	layout, ok := mesh.ParseLayout(cfg.Scene.Layout)
	if !ok {
		return nil, fmt.Errorf("unknown scene layout %q", cfg.Scene.Layout)
	}

	a := &App{}

	// Window first: the GL context must exist before the backend loads GL
	var err error
	a.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	backend, err := glbackend.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	width, height := a.window.Size()
	cc := cfg.Scene.ClearColor
	a.renderer = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		LineWidth:  cfg.Scene.LineWidth,
		PointSize:  cfg.Scene.PointSize,
		ClearColor: math.Vec3{X: cc[0], Y: cc[1], Z: cc[2]},
		Layout:     layout,
	}, backend)

	a.input = sdlinput.New()
	a.sandbox = sandbox.New(a.renderer, scene.Placeholder(cfg.Scene.Height), sandbox.Options{
		Step:     cfg.Input.Step,
		Outlines: cfg.Scene.Outlines,
	})

	logger.Info("sandbox initialized", zap.Stringer("layout", layout))
	return a, nil
}

// Run loops until the window is closed or Escape is pressed. The frame in
// which Escape is seen is still drawn and presented.
func (a *App) Run() {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Poll window events and keyboard
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			if event.Type == sdlinput.EventWindowResize {
				a.renderer.Resize(event.Width, event.Height)
			}
		}

		// 2. Apply keys and render
		if a.sandbox.Frame(a.input) {
			a.running = false
		}

		// 3. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Any("camera", a.renderer.CameraTranslation()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("closing sandbox")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
