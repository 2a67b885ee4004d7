package skybox

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend/backendtest"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedShader(t *testing.T, rec *backendtest.Recorder) shader.Shader {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "skybox.vert.glsl")
	fp := filepath.Join(dir, "skybox.frag.glsl")
	require.NoError(t, os.WriteFile(vp, []byte("#version 410 core\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte("#version 410 core\nvoid main() {}\n"), 0o644))

	s := shader.NewShader(vp, fp, shader.WithBackend(rec))
	require.NoError(t, s.Load())
	return s
}

func loadedCube(t *testing.T, rec *backendtest.Recorder) texture.CubeTexture {
	t.Helper()
	dir := t.TempDir()
	faces := make([]string, texture.CubeFaces)
	for i := range faces {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		for p := 0; p < 4; p++ {
			img.SetNRGBA(p%2, p/2, color.NRGBA{R: uint8(i * 40), G: 80, B: 160, A: 255})
		}
		faces[i] = filepath.Join(dir, "face"+string(rune('0'+i))+".png")
		f, err := os.Create(faces[i])
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}

	c := texture.NewCubeTexture(faces, texture.WithCubeBackend(rec))
	require.NoError(t, c.Load())
	return c
}

func readySkybox(t *testing.T, rec *backendtest.Recorder) (Skybox, shader.Shader, texture.CubeTexture) {
	t.Helper()
	s := loadedShader(t, rec)
	c := loadedCube(t, rec)
	sky := NewSkybox(WithBackend(rec))
	require.NoError(t, sky.Setup())
	sky.SetShader(s)
	sky.SetCubeTexture(c)
	return sky, s, c
}

func TestSkyboxSetup(t *testing.T) {
	rec := backendtest.New()
	sky := NewSkybox(WithBackend(rec))
	assert.False(t, sky.Valid())
	assert.Empty(t, rec.Calls())

	require.NoError(t, sky.Setup())
	assert.Equal(t, 1, rec.Live(backendtest.KindVertexArray))
	assert.Equal(t, 1, rec.Live(backendtest.KindBuffer))
	assert.Equal(t, int32(3), rec.AttribSize(0))
	assert.Zero(t, rec.AttribSize(1))

	// Geometry alone is not enough to draw.
	assert.False(t, sky.Valid())

	require.NoError(t, sky.Setup())
	assert.Equal(t, 1, rec.Live(backendtest.KindVertexArray))
	assert.Equal(t, 1, rec.Live(backendtest.KindBuffer))
}

func TestSkyboxSetShaderSetsSampler(t *testing.T) {
	rec := backendtest.New()
	sky, s, _ := readySkybox(t, rec)
	assert.True(t, sky.Valid())

	v, ok := rec.Uniform(s.ID(), "uCubeTexture")
	require.True(t, ok)
	assert.Equal(t, int32(0), v)
}

func TestSkyboxRejectsInvalidAssignments(t *testing.T) {
	rec := backendtest.New()
	sky, _, _ := readySkybox(t, rec)
	require.True(t, sky.Valid())

	sky.SetShader(shader.NewShader("a", "b", shader.WithBackend(rec)))
	assert.False(t, sky.Valid())

	sky.SetShader(loadedShader(t, rec))
	require.True(t, sky.Valid())

	sky.SetCubeTexture(nil)
	assert.False(t, sky.Valid())
}

func TestSkyboxDraw(t *testing.T) {
	rec := backendtest.New()
	sky, s, c := readySkybox(t, rec)

	view := mgl32.LookAtV(mgl32.Vec3{3, 2, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	projection := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	sky.Draw(view, projection)

	draws := rec.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, int32(VertexCount), draws[0].Count)
	assert.False(t, draws[0].Indexed)
	assert.Equal(t, backend.LEqual, draws[0].DepthFunc)
	assert.Equal(t, []backend.Enum{backend.LEqual, backend.Less}, rec.DepthFuncs())
	assert.Equal(t, backend.Less, rec.CurrentDepthFunc())

	got, ok := rec.Uniform(s.ID(), "uView")
	require.True(t, ok)
	stripped := got.(mgl32.Mat4)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, stripped.Col(3))
	assert.True(t, stripped.Mat3().ApproxEqual(view.Mat3()))

	got, _ = rec.Uniform(s.ID(), "uProjection")
	assert.Equal(t, projection, got)

	// The cubemap is unbound again after drawing.
	assert.Equal(t, backend.InvalidHandle, rec.BoundTexture(backend.Texture0))
	assert.True(t, c.Valid())
}

func TestSkyboxDrawIncomplete(t *testing.T) {
	rec := backendtest.New()
	sky := NewSkybox(WithBackend(rec))
	require.NoError(t, sky.Setup())
	sky.SetShader(loadedShader(t, rec))

	sky.Draw(mgl32.Ident4(), mgl32.Ident4())
	assert.Empty(t, rec.Draws())
	assert.Empty(t, rec.DepthFuncs())
}

func TestSkyboxMoveAndRelease(t *testing.T) {
	rec := backendtest.New()
	src, s, c := readySkybox(t, rec)

	dst := src.Move()
	assert.False(t, src.Valid())
	assert.True(t, dst.Valid())

	src.Release()
	assert.Equal(t, 1, rec.Live(backendtest.KindVertexArray))

	dst.Release()
	dst.Release()
	assert.Zero(t, rec.Live(backendtest.KindVertexArray))
	assert.Zero(t, rec.Live(backendtest.KindBuffer))
	assert.True(t, s.Valid())
	assert.True(t, c.Valid())
}
