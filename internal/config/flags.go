package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSurface    = flag.String("surface", "", "Surface to display")
	flagSegments   = flag.Int("segments", 0, "Segment count for both axes")
	flagShading    = flag.String("shading", "", "Normal mode: flat or smooth")
	flagLayout     = flag.String("layout", "", "Buffer layout: block or interleaved")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSurface != "" {
		cfg.Surface.Name = *flagSurface
	}
	if *flagSegments > 0 {
		cfg.Surface.USegments = *flagSegments
		cfg.Surface.VSegments = *flagSegments
	}
	if *flagShading != "" {
		cfg.Surface.Shading = *flagShading
	}
	if *flagLayout != "" {
		cfg.Surface.Layout = *flagLayout
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
