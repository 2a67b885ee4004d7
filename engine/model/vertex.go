package model

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout every Mesh uploads.
// Attribute locations are 0 for Position, 1 for Normal and 2 for TexCoords.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// Attribute locations of the Vertex fields.
const (
	PositionLocation  uint32 = 0
	NormalLocation    uint32 = 1
	TexCoordsLocation uint32 = 2
)

const (
	vertexStride    = int32(unsafe.Sizeof(Vertex{}))
	normalOffset    = unsafe.Offsetof(Vertex{}.Normal)
	texCoordsOffset = unsafe.Offsetof(Vertex{}.TexCoords)
)

// boundingRadius returns the largest distance of any vertex from the local origin.
func boundingRadius(vertices []Vertex) float32 {
	var r float32
	for _, v := range vertices {
		r = max(r, v.Position.Len())
	}
	return r
}
