package skybox

import "github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"

// SkyboxBuilderOption is a functional option for configuring a Skybox via NewSkybox.
type SkyboxBuilderOption func(*skybox)

// WithBackend sets the GL backend the skybox issues calls through.
// Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - SkyboxBuilderOption: option function to apply
func WithBackend(b backend.Backend) SkyboxBuilderOption {
	return func(s *skybox) {
		s.b = b
	}
}
