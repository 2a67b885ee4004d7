package texture

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
)

// CubeTextureBuilderOption is a functional option for configuring a CubeTexture via NewCubeTexture.
type CubeTextureBuilderOption func(*cubeTexture)

// WithCubeBackend sets the GL backend the cube texture issues calls through.
// Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - CubeTextureBuilderOption: option function to apply
func WithCubeBackend(b backend.Backend) CubeTextureBuilderOption {
	return func(c *cubeTexture) {
		c.b = b
	}
}

// WithLoader decodes the six faces in parallel on the given loader's worker pool.
// Without it faces are decoded one after another on the calling thread.
// The cube texture does not take ownership of the loader.
//
// Parameters:
//   - l: the image loader
//
// Returns:
//   - CubeTextureBuilderOption: option function to apply
func WithLoader(l loader.Loader) CubeTextureBuilderOption {
	return func(c *cubeTexture) {
		c.loader = l
	}
}
