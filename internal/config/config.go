// Package config handles sandbox configuration loading and management.
package config

// Config holds all sandbox settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// InputConfig holds keyboard camera settings.
type InputConfig struct {
	Step float32 `yaml:"step"` // Translation per frame while a movement key is held
}

// SceneConfig holds drawing settings for the placeholder scene.
type SceneConfig struct {
	Height     float32    `yaml:"height"` // Extrusion height of every contour
	Layout     string     `yaml:"layout"` // "walls" or "legacy"
	LineWidth  float32    `yaml:"line_width"`
	PointSize  float32    `yaml:"point_size"`
	ClearColor [3]float32 `yaml:"clear_color"`
	Outlines   bool       `yaml:"outlines"` // Draw wireframe edges and base points over each solid
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the compiled-in settings. Running with no file and no flags uses these.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "rlb",
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Input: InputConfig{
			Step: 0.1,
		},
		Scene: SceneConfig{
			Height:     4.0,
			Layout:     "walls",
			LineWidth:  2.0,
			PointSize:  5.0,
			ClearColor: [3]float32{1, 1, 1},
			Outlines:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
