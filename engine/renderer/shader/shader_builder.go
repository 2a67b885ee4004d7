package shader

import "github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"

// ShaderBuilderOption is a functional option for configuring a Shader via NewShader.
type ShaderBuilderOption func(*shader)

// WithBackend sets the GL backend the shader issues calls through.
// Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithBackend(b backend.Backend) ShaderBuilderOption {
	return func(s *shader) {
		s.b = b
	}
}

// WithPreProcessor replaces the #include pre-processor run on both stages before compiling.
//
// Parameters:
//   - p: the pre-processor
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithPreProcessor(p PreProcessor) ShaderBuilderOption {
	return func(s *shader) {
		s.pre = p
	}
}
