package model

import "github.com/go-gl/mathgl/mgl32"

// cubeData is a unit cube centred on the origin as 36 vertices of position and texture
// coordinates, six per face in back, front, left, right, bottom, top order.
var cubeData = [36][5]float32{
	{-0.5, -0.5, -0.5, 0, 0},
	{0.5, -0.5, -0.5, 1, 0},
	{0.5, 0.5, -0.5, 1, 1},
	{0.5, 0.5, -0.5, 1, 1},
	{-0.5, 0.5, -0.5, 0, 1},
	{-0.5, -0.5, -0.5, 0, 0},

	{-0.5, -0.5, 0.5, 0, 0},
	{0.5, -0.5, 0.5, 1, 0},
	{0.5, 0.5, 0.5, 1, 1},
	{0.5, 0.5, 0.5, 1, 1},
	{-0.5, 0.5, 0.5, 0, 1},
	{-0.5, -0.5, 0.5, 0, 0},

	{-0.5, 0.5, 0.5, 1, 0},
	{-0.5, 0.5, -0.5, 1, 1},
	{-0.5, -0.5, -0.5, 0, 1},
	{-0.5, -0.5, -0.5, 0, 1},
	{-0.5, -0.5, 0.5, 0, 0},
	{-0.5, 0.5, 0.5, 1, 0},

	{0.5, 0.5, 0.5, 1, 0},
	{0.5, 0.5, -0.5, 1, 1},
	{0.5, -0.5, -0.5, 0, 1},
	{0.5, -0.5, -0.5, 0, 1},
	{0.5, -0.5, 0.5, 0, 0},
	{0.5, 0.5, 0.5, 1, 0},

	{-0.5, -0.5, -0.5, 0, 1},
	{0.5, -0.5, -0.5, 1, 1},
	{0.5, -0.5, 0.5, 1, 0},
	{0.5, -0.5, 0.5, 1, 0},
	{-0.5, -0.5, 0.5, 0, 0},
	{-0.5, -0.5, -0.5, 0, 1},

	{-0.5, 0.5, -0.5, 0, 1},
	{0.5, 0.5, -0.5, 1, 1},
	{0.5, 0.5, 0.5, 1, 0},
	{0.5, 0.5, 0.5, 1, 0},
	{-0.5, 0.5, 0.5, 0, 0},
	{-0.5, 0.5, -0.5, 0, 1},
}

var cubeNormals = [6]mgl32.Vec3{
	{0, 0, -1},
	{0, 0, 1},
	{-1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
}

// CubeVertices returns the 36 vertices of a textured unit cube centred on the origin.
// Every face maps the full texture and carries its outward normal.
//
// Returns:
//   - []Vertex: the cube vertices, drawn without indices
func CubeVertices() []Vertex {
	vertices := make([]Vertex, len(cubeData))
	for i, d := range cubeData {
		vertices[i] = Vertex{
			Position:  mgl32.Vec3{d[0], d[1], d[2]},
			Normal:    cubeNormals[i/6],
			TexCoords: mgl32.Vec2{d[3], d[4]},
		}
	}
	return vertices
}

// Quad returns a textured unit quad in the XY plane facing +Z, as four corners and six
// indices.
//
// Returns:
//   - []Vertex: top right, bottom right, bottom left and top left corners
//   - []uint32: two triangles
func Quad() ([]Vertex, []uint32) {
	normal := mgl32.Vec3{0, 0, 1}
	vertices := []Vertex{
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: normal, TexCoords: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: normal, TexCoords: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: normal, TexCoords: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: normal, TexCoords: mgl32.Vec2{0, 1}},
	}
	return vertices, []uint32{0, 1, 3, 1, 2, 3}
}

// CubeGrid returns the centres of a size x size x size grid of points spaced evenly and
// centred on the origin, iterating z fastest.
//
// Parameters:
//   - size: points per axis
//   - spacing: distance between neighbouring points
//
// Returns:
//   - []mgl32.Vec3: size^3 positions, nil if size < 1
func CubeGrid(size int, spacing float32) []mgl32.Vec3 {
	if size < 1 {
		return nil
	}
	offset := float32(size)*spacing/2 - spacing/2
	positions := make([]mgl32.Vec3, 0, size*size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				positions = append(positions, mgl32.Vec3{
					float32(x)*spacing - offset,
					float32(y)*spacing - offset,
					float32(z)*spacing - offset,
				})
			}
		}
	}
	return positions
}
