// Package viewer implements the interactive surface viewer.
package viewer

import (
	"fmt"
	"time"

	"github.com/Faultbox/projective/internal/config"
	"github.com/Faultbox/projective/internal/engine/input"
	"github.com/Faultbox/projective/pkg/surface"
)

// Change tells the app what an action invalidated.
type Change int

const (
	ChangeNone Change = iota
	ChangeView        // camera or draw state only
	ChangeMesh        // the surface must be regenerated
)

// heightStep is how far one key press raises the surface camera.
const heightStep = 0.05

// Apply updates cfg for an action and reports what needs redoing.
// Screenshot and save are side effects handled by the app.
func Apply(cfg *config.Config, action input.Action) Change {
	switch action {
	case input.ActionMoreSegments:
		return resize(cfg, cfg.Viewer.SegmentStep)
	case input.ActionFewerSegments:
		return resize(cfg, -cfg.Viewer.SegmentStep)

	case input.ActionToggleShading:
		if cfg.Surface.Shading == surface.ShadingSmooth.String() {
			cfg.Surface.Shading = surface.ShadingFlat.String()
		} else {
			cfg.Surface.Shading = surface.ShadingSmooth.String()
		}
		return ChangeMesh

	case input.ActionToggleLayout:
		if cfg.Surface.Layout == surface.LayoutInterleaved.String() {
			cfg.Surface.Layout = surface.LayoutBlock.String()
		} else {
			cfg.Surface.Layout = surface.LayoutInterleaved.String()
		}
		return ChangeMesh

	case input.ActionNextSurface:
		cfg.Surface.Name = surface.Next(cfg.Surface.Name)
		return ChangeMesh

	case input.ActionToggleCamera:
		if cfg.Camera.Mode == "surface" {
			cfg.Camera.Mode = "orbit"
		} else {
			cfg.Camera.Mode = "surface"
		}
		return ChangeView

	case input.ActionToggleWireframe:
		cfg.Graphics.Wireframe = !cfg.Graphics.Wireframe
		return ChangeView
	case input.ActionToggleBounds:
		cfg.Graphics.ShowBounds = !cfg.Graphics.ShowBounds
		return ChangeView

	case input.ActionCameraUp:
		cfg.Camera.V = wrap(cfg.Camera.V+1, cfg.Surface.VSegments)
		return ChangeView
	case input.ActionCameraDown:
		cfg.Camera.V = wrap(cfg.Camera.V-1, cfg.Surface.VSegments)
		return ChangeView
	case input.ActionCameraRight:
		cfg.Camera.U = wrap(cfg.Camera.U+1, cfg.Surface.USegments)
		return ChangeView
	case input.ActionCameraLeft:
		cfg.Camera.U = wrap(cfg.Camera.U-1, cfg.Surface.USegments)
		return ChangeView
	case input.ActionRaise:
		cfg.Camera.Height += heightStep
		return ChangeView
	case input.ActionLower:
		cfg.Camera.Height = max(cfg.Camera.Height-heightStep, 0)
		return ChangeView
	}
	return ChangeNone
}

func resize(cfg *config.Config, step int) Change {
	u := cfg.ClampSegments(cfg.Surface.USegments + step)
	v := cfg.ClampSegments(cfg.Surface.VSegments + step)
	if u == cfg.Surface.USegments && v == cfg.Surface.VSegments {
		return ChangeNone
	}
	// Keep the surface camera on the same relative spot.
	cfg.Camera.U = rescale(cfg.Camera.U, cfg.Surface.USegments, u)
	cfg.Camera.V = rescale(cfg.Camera.V, cfg.Surface.VSegments, v)
	cfg.Surface.USegments, cfg.Surface.VSegments = u, v
	return ChangeMesh
}

func rescale(i, from, to int) int {
	if from <= 0 {
		return 0
	}
	return wrap(i*to/from, to)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Mesh is one generated surface with what it took to build it.
type Mesh struct {
	Entry    surface.Entry
	Options  surface.Options
	Grid     surface.Grid
	Buffer   *surface.VertexBuffer
	Duration time.Duration
}

// Build regenerates the configured surface from scratch.
func Build(s config.SurfaceConfig) (*Mesh, error) {
	entry, opts, err := s.Generator()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	buf := surface.New(entry.Function, opts).Generate(s.USegments, s.VSegments)

	return &Mesh{
		Entry:    entry,
		Options:  opts,
		Grid:     surface.Grid{U: s.USegments, V: s.VSegments},
		Buffer:   buf,
		Duration: time.Since(start),
	}, nil
}

// Frame returns the on-surface camera frame for the configured cell.
func (m *Mesh) Frame(cam config.CameraConfig) surface.Frame {
	return surface.FrameAt(m.Entry.Function, m.Grid, m.Options.Closure, cam.U, cam.V)
}

// Title returns the window title describing the mesh.
func (m *Mesh) Title() string {
	return fmt.Sprintf("Projective - %s %dx%d %s %s (%d triangles)",
		m.Entry.Name, m.Grid.U, m.Grid.V,
		m.Options.Shading, m.Buffer.Layout, m.Buffer.TriangleCount())
}
