// Package renderer draws generated surface meshes with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/projective/internal/engine/debug"
	"github.com/Faultbox/projective/internal/engine/lighting"
	"github.com/Faultbox/projective/internal/engine/renderer/shaders"
	"github.com/Faultbox/projective/internal/engine/shader"
	"github.com/Faultbox/projective/internal/engine/texture"
	"github.com/Faultbox/projective/internal/logger"
	"github.com/Faultbox/projective/pkg/surface"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Wireframe  bool
	ShowBounds bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	surfaceProgram *shader.Program
	lineProgram    *shader.Program
	checker        uint32

	mesh   surfaceMesh
	bounds lineMesh
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.surfaceProgram, err = shader.NewProgram(shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}
	r.lineProgram, err = shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.surfaceProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.checker = texture.Upload(texture.DefaultChecker())
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.mesh.release()
	r.bounds.release()
	texture.Delete(r.checker)
	r.surfaceProgram.Delete()
	r.lineProgram.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetWireframe switches between filled and line polygon mode.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// SetShowBounds toggles the bounding box overlay.
func (r *Renderer) SetShowBounds(on bool) {
	r.config.ShowBounds = on
}

// Upload replaces the current mesh with buf. The previous GPU buffers are
// discarded.
func (r *Renderer) Upload(buf *surface.VertexBuffer) {
	r.mesh.upload(buf)
	r.bounds.upload(debug.BoundsWireframe(buf.Bounds(), debug.DefaultBBoxPadding))

	r.log.Debug("mesh uploaded",
		zap.Stringer("layout", buf.Layout),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("bytes", buf.SizeBytes()),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded mesh.
func (r *Renderer) Draw(viewProj mgl32.Mat4) {
	if r.mesh.count > 0 {
		r.drawSurface(viewProj)
	}
	if r.config.ShowBounds && r.bounds.count > 0 {
		r.drawBounds(viewProj)
	}
}

func (r *Renderer) drawSurface(viewProj mgl32.Mat4) {
	p := r.surfaceProgram
	p.Use()

	model := mgl32.Ident4()
	sun := lighting.DefaultSun
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, &model[0])
	gl.Uniform3f(p.Uniform("uLightDir"), sun[0], sun[1], sun[2])
	gl.Uniform1f(p.Uniform("uAmbient"), lighting.Ambient)
	gl.Uniform1f(p.Uniform("uTextureScale"), r.mesh.textureScale)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.checker)
	gl.Uniform1i(p.Uniform("uTexture"), 0)

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	r.mesh.draw()
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) drawBounds(viewProj mgl32.Mat4) {
	p := r.lineProgram
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(p.Uniform("uColor"), 1.0, 0.85, 0.2)
	r.bounds.draw()
}
