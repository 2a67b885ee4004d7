package texture

import "github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"

// TextureBuilderOption is a functional option for configuring a Texture via NewTexture.
type TextureBuilderOption func(*texture)

// WithBackend sets the GL backend the texture issues calls through.
// Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithBackend(b backend.Backend) TextureBuilderOption {
	return func(t *texture) {
		t.b = b
	}
}

// WithFlip sets whether the image is flipped vertically on load. Defaults to true.
//
// Parameters:
//   - flip: false to upload rows in file order
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithFlip(flip bool) TextureBuilderOption {
	return func(t *texture) {
		t.flip = flip
	}
}
