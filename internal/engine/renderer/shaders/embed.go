// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader is the vertex shader for surface meshes.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader is the fragment shader for surface meshes.
//
//go:embed surface.frag
var SurfaceFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
