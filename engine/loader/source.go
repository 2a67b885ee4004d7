package loader

import (
	"fmt"
	"os"
)

// ReadShaderSource reads a vertex and fragment shader source pair from disk.
//
// Parameters:
//   - vertexPath: path of the vertex shader source
//   - fragmentPath: path of the fragment shader source
//
// Returns:
//   - vertex: the vertex shader text
//   - fragment: the fragment shader text
//   - err: error if either file cannot be read
func ReadShaderSource(vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	v, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read vertex shader: %w", err)
	}
	f, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return string(v), string(f), nil
}
