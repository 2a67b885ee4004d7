package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend/backendtest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertexSource   = "#version 410 core\nlayout (location = 0) in vec3 aPos;\nvoid main() { gl_Position = vec4(aPos, 1.0); }\n"
	fragmentSource = "#version 410 core\nout vec4 FragColor;\nvoid main() { FragColor = vec4(1.0); }\n"
)

func writeSources(t *testing.T, vertex, fragment string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "test.vert.glsl")
	fp := filepath.Join(dir, "test.frag.glsl")
	require.NoError(t, os.WriteFile(vp, []byte(vertex), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(fragment), 0o644))
	return vp, fp
}

func TestShaderLifecycle(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	assert.False(t, s.Valid())
	assert.Equal(t, backend.InvalidHandle, s.ID())
	assert.Zero(t, rec.Live(backendtest.KindProgram))

	require.NoError(t, s.Load())
	assert.True(t, s.Valid())
	assert.Equal(t, 1, rec.Live(backendtest.KindProgram))
	// Stage objects are deleted once the program is linked.
	assert.Zero(t, rec.Live(backendtest.KindShader))

	s.Release()
	assert.False(t, s.Valid())
	assert.Zero(t, rec.Live(backendtest.KindProgram))

	s.Release()
	assert.Equal(t, 1, rec.CallCount("DeleteProgram"))
}

func TestShaderReloadReleasesPreviousProgram(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	require.NoError(t, s.Load())
	first := s.ID()

	require.NoError(t, s.Load())
	assert.NotEqual(t, first, s.ID())
	assert.True(t, rec.Deleted(first))
	assert.Equal(t, 1, rec.Live(backendtest.KindProgram))
}

func TestShaderMove(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	src := NewShader(vp, fp, WithBackend(rec))
	require.NoError(t, src.Load())
	id := src.ID()

	dst := src.Move()
	assert.False(t, src.Valid())
	assert.Empty(t, src.VertexPath())
	assert.True(t, dst.Valid())
	assert.Equal(t, id, dst.ID())
	assert.Equal(t, vp, dst.VertexPath())
	assert.Equal(t, fp, dst.FragmentPath())

	src.Release()
	assert.True(t, rec.IsLive(id))

	dst.Release()
	assert.False(t, rec.IsLive(id))
}

func TestShaderLoadMissingFile(t *testing.T) {
	rec := backendtest.New()
	dir := t.TempDir()

	s := NewShader(filepath.Join(dir, "a.vert.glsl"), filepath.Join(dir, "a.frag.glsl"), WithBackend(rec))
	err := s.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, s.Valid())
	assert.Zero(t, rec.CallCount("CreateShader"))
}

func TestShaderLoadExpandsIncludes(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, "#version 410 core\n#include \"common.glsl\"\nvoid main() { FragColor = vec4(1.0); }\n")
	inc := filepath.Join(filepath.Dir(fp), "common.glsl")
	require.NoError(t, os.WriteFile(inc, []byte("out vec4 FragColor;\n"), 0o644))

	s := NewShader(vp, fp, WithBackend(rec))
	require.NoError(t, s.Load())
	assert.Equal(t, []string{inc}, s.Includes())

	moved := s.Move()
	assert.Nil(t, s.Includes())
	assert.Equal(t, []string{inc}, moved.Includes())
}

func TestShaderLoadIncludeError(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, "#version 410 core\n#include \"missing.glsl\"\n")

	s := NewShader(vp, fp, WithBackend(rec))
	assert.ErrorIs(t, s.Load(), ErrInclude)
	assert.False(t, s.Valid())
	assert.Zero(t, rec.CallCount("CreateShader"))
}

func TestShaderLoadCompileError(t *testing.T) {
	rec := backendtest.New()
	rec.CompileErrors["FragColor"] = "0:3: 'FragColor' : syntax error"
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	err := s.Load()
	assert.ErrorIs(t, err, ErrCompile)
	assert.ErrorContains(t, err, "fragment")
	assert.ErrorContains(t, err, "syntax error")
	assert.False(t, s.Valid())
	assert.Zero(t, rec.Live(backendtest.KindShader))
	assert.Zero(t, rec.Live(backendtest.KindProgram))
}

func TestShaderLoadLinkError(t *testing.T) {
	rec := backendtest.New()
	rec.LinkError = "error: vertex output does not match"
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	err := s.Load()
	assert.ErrorIs(t, err, ErrLink)
	assert.False(t, s.Valid())
	assert.Zero(t, rec.Live(backendtest.KindShader))
	assert.Zero(t, rec.Live(backendtest.KindProgram))
}

func TestShaderFailedReloadLeavesShaderInvalid(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	require.NoError(t, s.Load())

	rec.CompileErrors["gl_Position"] = "broken"
	assert.ErrorIs(t, s.Load(), ErrCompile)
	assert.False(t, s.Valid())
	assert.Zero(t, rec.Live(backendtest.KindProgram))
}

func TestShaderUniforms(t *testing.T) {
	rec := backendtest.New()
	vp, fp := writeSources(t, vertexSource, fragmentSource)

	s := NewShader(vp, fp, WithBackend(rec))
	require.NoError(t, s.Load())

	model := mgl32.Translate3D(1, 2, 3)
	s.SetMat4("uModel", model)
	s.SetInt("uTexture0", 0)
	s.SetBool("uEnabled", true)
	s.SetFloat("uTime", 1.5)
	s.SetVec3("uColor", mgl32.Vec3{1, 0, 0})

	v, ok := rec.Uniform(s.ID(), "uModel")
	require.True(t, ok)
	assert.Equal(t, model, v)
	v, _ = rec.Uniform(s.ID(), "uTexture0")
	assert.Equal(t, int32(0), v)
	v, _ = rec.Uniform(s.ID(), "uEnabled")
	assert.Equal(t, int32(1), v)
	v, _ = rec.Uniform(s.ID(), "uTime")
	assert.Equal(t, float32(1.5), v)

	// Locations are looked up once per name.
	s.SetMat4("uModel", mgl32.Ident4())
	assert.Equal(t, 5, rec.CallCount("GetUniformLocation"))
}

func TestShaderInvalidUseIsNoOp(t *testing.T) {
	rec := backendtest.New()
	s := NewShader("a.vert.glsl", "a.frag.glsl", WithBackend(rec))

	s.Use()
	s.SetInt("uTexture0", 0)
	s.SetMat4("uView", mgl32.Ident4())

	assert.Empty(t, rec.Calls())
}
