package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))

	b := SliceToBytes([]float32{1, 2, 3})
	assert.Len(t, b, 12)

	type vertex struct {
		pos [3]float32
		uv  [2]float32
	}
	assert.Len(t, SliceToBytes([]vertex{{}, {}}), 40)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(89), Clamp(float32(10000), -89, 89))
	assert.Equal(t, float32(-89), Clamp(float32(-10000), -89, 89))
	assert.Equal(t, float32(12.5), Clamp(float32(12.5), -89, 89))
	assert.Equal(t, 3, Clamp(7, 0, 3))
}

func TestBuildModelMatrix(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{3, 2, 3}, p[:3], 1e-6)

	rot := BuildModelMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 0, mgl32.DegToRad(90)}, mgl32.Vec3{1, 1, 1})
	p = rot.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{0, 1, 0}, p[:3], 1e-6)
}

func TestMaxScale(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0.3, 0.2, 0.1}, mgl32.Vec3{1, 4, 2})
	assert.InDelta(t, 4.0, MaxScale(m), 1e-5)
	assert.InDelta(t, 1.0, MaxScale(mgl32.Ident4()), 1e-6)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(60), Coalesce(float32(0), 60))
}
