package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/projective/internal/config"
	"github.com/Faultbox/projective/internal/engine/camera"
	"github.com/Faultbox/projective/internal/engine/debug"
	"github.com/Faultbox/projective/internal/engine/input"
	"github.com/Faultbox/projective/internal/engine/picking"
	"github.com/Faultbox/projective/internal/engine/renderer"
	"github.com/Faultbox/projective/internal/engine/window"
	"github.com/Faultbox/projective/internal/logger"
	"github.com/Faultbox/projective/pkg/surface"
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	screenshots *debug.ScreenshotCapture

	orbit *camera.OrbitCamera
	rider camera.SurfaceCamera

	mesh *Mesh
}

// New opens the window, creates the renderer and generates the first mesh.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("viewer")
	log.Info("initializing viewer",
		zap.String("surface", cfg.Surface.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		cfg:         cfg,
		log:         log,
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "projective"),
		orbit:       camera.NewOrbitCamera(cfg.Camera.Distance),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Projective",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Wireframe:  cfg.Graphics.Wireframe,
		ShowBounds: cfg.Graphics.ShowBounds,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.regenerate(true); err != nil {
		a.Close()
		return nil, err
	}

	log.Info("viewer initialized")
	return a, nil
}

// Run runs the frame loop until the window closes.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting frame loop")

	frameCount := 0
	fpsTimer := time.Now()

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if err := a.handle(event); err != nil {
				return err
			}
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// Close releases GPU and window resources.
func (a *App) Close() {
	a.log.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		width, height := a.window.DrawableSize()
		a.renderer.Resize(width, height)
	case input.EventDrag:
		a.orbit.HandleDrag(event.DX, event.DY)
	case input.EventWheel:
		a.orbit.HandleZoom(event.DY)
	case input.EventPick:
		a.pick(event.X, event.Y)
	case input.EventAction:
		return a.handleAction(event.Action)
	}
	return nil
}

func (a *App) handleAction(action input.Action) error {
	switch action {
	case input.ActionScreenshot:
		// Draw first so the capture has the current frame in the back buffer.
		a.render()
		width, height := a.window.DrawableSize()
		path, err := a.screenshots.Capture(width, height)
		if err != nil {
			a.log.Warn("screenshot failed", zap.Error(err))
			return nil
		}
		a.log.Info("screenshot saved", zap.String("path", path))
		return nil

	case input.ActionSaveConfig:
		if err := a.cfg.Save(); err != nil {
			a.log.Warn("saving config failed", zap.Error(err))
			return nil
		}
		a.log.Info("config saved", zap.String("dir", config.ConfigDir()))
		return nil
	}

	previous := a.cfg.Surface.Name
	switch Apply(a.cfg, action) {
	case ChangeMesh:
		return a.regenerate(a.cfg.Surface.Name != previous)
	case ChangeView:
		a.renderer.SetWireframe(a.cfg.Graphics.Wireframe)
		a.renderer.SetShowBounds(a.cfg.Graphics.ShowBounds)
		a.log.Debug("view changed",
			zap.Stringer("action", action),
			zap.String("camera", a.cfg.Camera.Mode),
			zap.Int("u", a.cfg.Camera.U),
			zap.Int("v", a.cfg.Camera.V),
			zap.Float32("height", a.cfg.Camera.Height),
		)
	}
	return nil
}

// regenerate rebuilds and uploads the mesh. refit recenters the orbit camera.
func (a *App) regenerate(refit bool) error {
	mesh, err := Build(a.cfg.Surface)
	if err != nil {
		return fmt.Errorf("generating %s: %w", a.cfg.Surface.Name, err)
	}
	a.mesh = mesh
	a.renderer.Upload(mesh.Buffer)
	if refit {
		a.orbit.FitToBounds(mesh.Buffer.Bounds())
	}
	a.window.SetTitle(mesh.Title())

	a.log.Info("surface generated",
		zap.String("surface", mesh.Entry.Name),
		zap.Int("u_segments", mesh.Grid.U),
		zap.Int("v_segments", mesh.Grid.V),
		zap.Stringer("shading", mesh.Options.Shading),
		zap.Stringer("layout", mesh.Options.Layout),
		zap.Int("triangles", mesh.Buffer.TriangleCount()),
		zap.Duration("duration", mesh.Duration),
	)
	return nil
}

// viewProj returns the combined matrix of the active camera.
func (a *App) viewProj() mgl32.Mat4 {
	width, height := a.window.DrawableSize()
	proj := camera.Projection(a.cfg.Camera.FOV, width, height)

	var view mgl32.Mat4
	if a.cfg.Camera.Mode == "surface" {
		a.rider.Height = a.cfg.Camera.Height
		view = a.rider.View(a.mesh.Frame(a.cfg.Camera))
	} else {
		view = a.orbit.View()
	}
	return proj.Mul4(view)
}

func (a *App) render() {
	a.renderer.Begin()
	a.renderer.Draw(a.viewProj())
}

// pick moves the surface camera to the quad under the cursor.
func (a *App) pick(x, y float32) {
	width, height := a.window.Size()
	ray := picking.ScreenToRay(x, y, float32(width), float32(height), a.viewProj().Inv())

	hit, ok := picking.PickTriangle(ray, a.mesh.Buffer)
	if !ok {
		return
	}
	u, v := surface.QuadOf(a.mesh.Grid, a.mesh.Options.Closure, hit.Triangle)
	a.cfg.Camera.U, a.cfg.Camera.V = u, v

	a.log.Debug("picked",
		zap.Int("triangle", hit.Triangle),
		zap.Int("u", u),
		zap.Int("v", v),
		zap.Float32("distance", hit.Distance),
	)
}
