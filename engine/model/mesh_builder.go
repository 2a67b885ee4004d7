package model

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/texture"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithBackend sets the GL backend the mesh issues calls through.
// Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithBackend(b backend.Backend) MeshBuilderOption {
	return func(m *mesh) {
		m.b = b
	}
}

// WithShader assigns the shader the mesh draws with.
//
// Parameters:
//   - s: the shader
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithShader(s shader.Shader) MeshBuilderOption {
	return func(m *mesh) {
		m.shader = s
	}
}

// WithTextures appends textures in unit order. Nil entries are skipped.
//
// Parameters:
//   - textures: the textures to bind while drawing
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithTextures(textures ...texture.Texture) MeshBuilderOption {
	return func(m *mesh) {
		for _, t := range textures {
			if t != nil {
				m.textures = append(m.textures, t)
			}
		}
	}
}
