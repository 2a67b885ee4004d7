package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testFrustum() Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	return ExtractFrustum(proj.Mul4(view))
}

func TestExtractFrustumPlanesAreNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		assert.InDelta(t, 1.0, p.Normal.Len(), 1e-5, "plane %d", i)
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name    string
		center  mgl32.Vec3
		radius  float32
		visible bool
	}{
		{"in front of camera", mgl32.Vec3{0, 0, -5}, 0.5, true},
		{"behind camera", mgl32.Vec3{0, 0, 10}, 0.5, false},
		{"beyond far plane", mgl32.Vec3{0, 0, -200}, 1, false},
		{"far to the left", mgl32.Vec3{-50, 0, -5}, 1, false},
		{"straddling near plane", mgl32.Vec3{0, 0, 3}, 1, true},
		{"large sphere around the camera", mgl32.Vec3{0, 0, 3}, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, f.ContainsSphere(tt.center, tt.radius))
		})
	}
}
