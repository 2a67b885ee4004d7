package game_object

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend/backendtest"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadMesh(t *testing.T, rec *backendtest.Recorder) (model.Mesh, shader.Shader) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "quad.vert.glsl")
	fp := filepath.Join(dir, "quad.frag.glsl")
	require.NoError(t, os.WriteFile(vp, []byte("#version 410 core\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte("#version 410 core\nvoid main() {}\n"), 0o644))

	s := shader.NewShader(vp, fp, shader.WithBackend(rec))
	require.NoError(t, s.Load())

	vertices, indices := model.Quad()
	m := model.NewMesh(vertices, indices, model.WithBackend(rec), model.WithShader(s))
	require.NoError(t, m.Setup())
	return m, s
}

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.True(t, obj.Enabled())
	assert.Nil(t, obj.Mesh())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Scale())
	assert.True(t, obj.ModelMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixComposition(t *testing.T) {
	obj := NewGameObject(
		WithID(7),
		WithPosition(0, 0, -2.5),
		WithRotation(0, 0, math32.Pi/2),
		WithScale(2, 2, 2),
	)
	assert.Equal(t, uint64(7), obj.ID())

	expected := mgl32.Translate3D(0, 0, -2.5).
		Mul4(mgl32.HomogRotate3DZ(math32.Pi / 2)).
		Mul4(mgl32.Scale3D(2, 2, 2))
	got := obj.ModelMatrix()
	assert.InDeltaSlice(t, expected[:], got[:], 1e-6)

	// +X lands on +Y after a quarter turn, doubled and pushed back.
	p := obj.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, 2, p.Y(), 1e-6)
	assert.InDelta(t, -2.5, p.Z(), 1e-6)
}

func TestUpdateAppliesRotationSpeed(t *testing.T) {
	obj := NewGameObject(WithRotationSpeed(0, 0, mgl32.DegToRad(60)))

	for range 60 {
		obj.Update(1.0 / 60.0)
	}
	assert.InDelta(t, mgl32.DegToRad(60), obj.Rotation().Z(), 1e-4)
	assert.Zero(t, obj.Rotation().X())
}

func TestUpdateWrapsAngles(t *testing.T) {
	obj := NewGameObject(WithRotationSpeed(2*math32.Pi, 0, 0), WithRotation(1, 0, 0))
	obj.Update(1.5)
	assert.InDelta(t, 1+math32.Pi, obj.Rotation().X(), 1e-4)

	obj.SetRotationSpeed(mgl32.Vec3{})
	obj.Update(10)
	assert.InDelta(t, 1+math32.Pi, obj.Rotation().X(), 1e-4)
}

func TestDrawUsesModelMatrix(t *testing.T) {
	rec := backendtest.New()
	m, s := quadMesh(t, rec)
	obj := NewGameObject(WithMesh(m), WithPosition(1, 2, 3))

	obj.Draw(mgl32.Ident4(), mgl32.Ident4())
	require.Len(t, rec.Draws(), 1)
	v, ok := rec.Uniform(s.ID(), "uModel")
	require.True(t, ok)
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), v)

	obj.SetPosition(mgl32.Vec3{4, 5, 6})
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, obj.Position())
	obj.Draw(mgl32.Ident4(), mgl32.Ident4())
	v, _ = rec.Uniform(s.ID(), "uModel")
	assert.Equal(t, mgl32.Translate3D(4, 5, 6), v)
}

func TestDrawSkipsDisabledOrEmpty(t *testing.T) {
	rec := backendtest.New()
	m, _ := quadMesh(t, rec)

	obj := NewGameObject(WithMesh(m), WithEnabled(false))
	obj.Draw(mgl32.Ident4(), mgl32.Ident4())
	assert.Empty(t, rec.Draws())

	obj.SetEnabled(true)
	obj.SetMesh(nil)
	obj.Draw(mgl32.Ident4(), mgl32.Ident4())
	assert.Empty(t, rec.Draws())

	obj.SetMesh(m)
	assert.Same(t, m, obj.Mesh())
	obj.Draw(mgl32.Ident4(), mgl32.Ident4())
	assert.Len(t, rec.Draws(), 1)
}
