// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// QuadVertexShader places a unit quad in canvas pixel space.
//
//go:embed quad.vert
var QuadVertexShader string

// QuadFragmentShader samples either a colour texture or the night mask.
//
//go:embed quad.frag
var QuadFragmentShader string
