package loader

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	shaderDir  = "shaders/"
	textureDir = "textures/"
)

// Assets resolves asset file names against a base directory. Paths are built by plain
// string concatenation: base + "shaders/" + name, base + "textures/" + name.
// The zero value resolves relative to the working directory.
type Assets struct {
	base string
}

// NewAssets creates an asset resolver rooted at baseDir.
// A leading "~" is expanded to the user's home directory, and a trailing separator is
// appended unless baseDir already ends in "/" or "\".
//
// Parameters:
//   - baseDir: the asset root directory
//
// Returns:
//   - Assets: the resolver
//   - error: error if the home directory cannot be determined for a "~" path
func NewAssets(baseDir string) (Assets, error) {
	expanded, err := homedir.Expand(baseDir)
	if err != nil {
		return Assets{}, fmt.Errorf("failed to expand asset directory %q: %w", baseDir, err)
	}
	if expanded != "" && !strings.HasSuffix(expanded, "/") && !strings.HasSuffix(expanded, "\\") {
		expanded += "/"
	}
	return Assets{base: expanded}, nil
}

// BaseDir returns the normalized base directory, including its trailing separator.
func (a Assets) BaseDir() string {
	return a.base
}

// ShaderPath returns the path of a shader source file.
//
// Parameters:
//   - name: file name relative to the shaders directory
//
// Returns:
//   - string: base + "shaders/" + name
func (a Assets) ShaderPath(name string) string {
	return a.base + shaderDir + name
}

// TexturePath returns the path of a texture image file.
//
// Parameters:
//   - name: file name relative to the textures directory
//
// Returns:
//   - string: base + "textures/" + name
func (a Assets) TexturePath(name string) string {
	return a.base + textureDir + name
}

// TexturePaths resolves several texture names at once, preserving order.
//
// Parameters:
//   - names: file names relative to the textures directory
//
// Returns:
//   - []string: the resolved paths
func (a Assets) TexturePaths(names ...string) []string {
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = a.TexturePath(n)
	}
	return paths
}
