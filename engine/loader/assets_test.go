package loader

import (
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssetsAppendsSeparator(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"no separator", "assets", "assets/"},
		{"forward slash", "assets/", "assets/"},
		{"backslash", `C:\assets\`, `C:\assets\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAssets(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.BaseDir())
		})
	}
}

func TestAssetsPaths(t *testing.T) {
	a, err := NewAssets("res/05-Skybox")
	require.NoError(t, err)

	assert.Equal(t, "res/05-Skybox/shaders/cube.vert.glsl", a.ShaderPath("cube.vert.glsl"))
	assert.Equal(t, "res/05-Skybox/textures/cube.png", a.TexturePath("cube.png"))
	assert.Equal(t,
		[]string{"res/05-Skybox/textures/a.png", "res/05-Skybox/textures/b.png"},
		a.TexturePaths("a.png", "b.png"),
	)
}

func TestAssetsZeroValueIsRelative(t *testing.T) {
	var a Assets
	assert.Equal(t, "shaders/x.glsl", a.ShaderPath("x.glsl"))
}

func TestNewAssetsExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	a, err := NewAssets("~/oxy")
	require.NoError(t, err)
	assert.Equal(t, home+"/oxy/", a.BaseDir())
}
