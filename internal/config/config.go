// Package config handles viewer and tool configuration loading.
package config

import (
	"fmt"

	"github.com/Faultbox/projective/pkg/surface"
)

// Config holds all settings.
type Config struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SurfaceConfig selects what to tessellate and how.
type SurfaceConfig struct {
	Name      string `yaml:"name"`       // catalog surface name
	USegments int    `yaml:"u_segments"` // samples along the first parameter
	VSegments int    `yaml:"v_segments"` // samples along the second parameter
	Shading   string `yaml:"shading"`    // flat or smooth
	Layout    string `yaml:"layout"`     // block or interleaved
	Closure   string `yaml:"closure"`    // auto, closed, open, open_u or open_v
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
	ShowBounds bool `yaml:"show_bounds"`
}

// CameraConfig holds the initial camera setup.
type CameraConfig struct {
	Mode     string  `yaml:"mode"` // orbit or surface
	FOV      float32 `yaml:"fov"`  // vertical field of view in degrees
	Distance float32 `yaml:"distance"`
	U        int     `yaml:"u"`      // grid cell of the surface camera
	V        int     `yaml:"v"`      // grid cell of the surface camera
	Height   float32 `yaml:"height"` // offset along the surface normal
}

// ViewerConfig holds interactive viewer limits.
type ViewerConfig struct {
	SegmentStep   int    `yaml:"segment_step"`
	MinSegments   int    `yaml:"min_segments"`
	MaxSegments   int    `yaml:"max_segments"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Name:      "boy",
			USegments: 128,
			VSegments: 128,
			Shading:   "smooth",
			Layout:    "block",
			Closure:   "auto",
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
			ShowBounds: false,
		},
		Camera: CameraConfig{
			Mode:     "orbit",
			FOV:      45,
			Distance: 4,
			U:        0,
			V:        0,
			Height:   0.2,
		},
		Viewer: ViewerConfig{
			SegmentStep:   8,
			MinSegments:   2,
			MaxSegments:   512,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// ClampSegments limits n to the configured segment range. Segment count
// policy lives here; the generator accepts any count.
func (c *Config) ClampSegments(n int) int {
	return max(c.Viewer.MinSegments, min(n, c.Viewer.MaxSegments))
}

// Validate checks names and clamps segment counts into range.
func (c *Config) Validate() error {
	if c.Viewer.MinSegments < 1 {
		return fmt.Errorf("min_segments must be at least 1, got %d", c.Viewer.MinSegments)
	}
	if c.Viewer.MaxSegments < c.Viewer.MinSegments {
		return fmt.Errorf("max_segments %d below min_segments %d", c.Viewer.MaxSegments, c.Viewer.MinSegments)
	}
	if _, ok := surface.Lookup(c.Surface.Name); !ok {
		return fmt.Errorf("unknown surface %q (known: %v)", c.Surface.Name, surface.Names())
	}
	if _, err := surface.ParseShading(c.Surface.Shading); err != nil {
		return err
	}
	if _, err := surface.ParseLayout(c.Surface.Layout); err != nil {
		return err
	}
	if _, err := parseClosure(c.Surface.Closure, surface.Closure{}); err != nil {
		return err
	}
	switch c.Camera.Mode {
	case "orbit", "surface":
	default:
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}

	c.Surface.USegments = c.ClampSegments(c.Surface.USegments)
	c.Surface.VSegments = c.ClampSegments(c.Surface.VSegments)
	return nil
}

// Generator resolves the surface section into a catalog entry and
// generator options.
func (s SurfaceConfig) Generator() (surface.Entry, surface.Options, error) {
	entry, ok := surface.Lookup(s.Name)
	if !ok {
		return surface.Entry{}, surface.Options{}, fmt.Errorf("unknown surface %q", s.Name)
	}
	shading, err := surface.ParseShading(s.Shading)
	if err != nil {
		return surface.Entry{}, surface.Options{}, err
	}
	layout, err := surface.ParseLayout(s.Layout)
	if err != nil {
		return surface.Entry{}, surface.Options{}, err
	}
	closure, err := parseClosure(s.Closure, entry.Closure)
	if err != nil {
		return surface.Entry{}, surface.Options{}, err
	}
	return entry, surface.Options{Shading: shading, Layout: layout, Closure: closure}, nil
}

// parseClosure resolves a closure name; "auto" and "" use the surface's own.
func parseClosure(name string, auto surface.Closure) (surface.Closure, error) {
	switch name {
	case "", "auto":
		return auto, nil
	case "closed":
		return surface.Closure{}, nil
	case "open":
		return surface.Closure{OpenU: true, OpenV: true}, nil
	case "open_u":
		return surface.Closure{OpenU: true}, nil
	case "open_v":
		return surface.Closure{OpenV: true}, nil
	default:
		return surface.Closure{}, fmt.Errorf("unknown closure %q", name)
	}
}
