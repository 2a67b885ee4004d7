package skybox

import (
	"log"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexCount is the number of vertices in the skybox cube.
const VertexCount = 36

// vertices is a cube of side 2 centred on the origin, positions only, wound to be seen
// from inside.
var vertices = [VertexCount * 3]float32{
	-1, 1, -1,
	-1, -1, -1,
	1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,

	-1, -1, 1,
	-1, -1, -1,
	-1, 1, -1,
	-1, 1, -1,
	-1, 1, 1,
	-1, -1, 1,

	1, -1, -1,
	1, -1, 1,
	1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	1, -1, -1,

	-1, -1, 1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, 1,
	1, -1, 1,
	-1, -1, 1,

	-1, 1, -1,
	1, 1, -1,
	1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,

	-1, -1, -1,
	-1, -1, 1,
	1, -1, -1,
	1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
}

// skybox is the implementation of the Skybox interface.
type skybox struct {
	b backend.Backend

	vao backend.Handle
	vbo backend.Handle

	shader shader.Shader
	cube   texture.CubeTexture
}

// Skybox draws a cubemap around the camera. Only the rotation of the view is applied so
// the box never moves relative to the eye, and depth testing uses LEQUAL while drawing so
// the box passes at the far plane.
// The shader and cube texture are borrowed and must outlive the skybox. The vertex array
// and buffer are owned.
type Skybox interface {
	// Setup uploads the cube positions to attribute location 0. Any buffers held from a
	// previous Setup are released first.
	//
	// Returns:
	//   - error: always nil, kept for symmetry with the other resources
	Setup() error

	// SetShader assigns the skybox shader and points its "uCubeTexture" sampler at unit 0.
	// An invalid or nil shader is rejected with a warning and clears the assignment.
	//
	// Parameters:
	//   - s: a loaded shader
	SetShader(s shader.Shader)

	// SetCubeTexture assigns the cubemap. An invalid or nil cube texture is rejected with
	// a warning and clears the assignment.
	//
	// Parameters:
	//   - c: a loaded cube texture
	SetCubeTexture(c texture.CubeTexture)

	// Draw renders the skybox. Logs and does nothing unless Valid.
	// The depth function is LEQUAL during the draw and LESS afterwards.
	//
	// Parameters:
	//   - view: the camera view transform; its translation is discarded
	//   - projection: the projection transform
	Draw(view, projection mgl32.Mat4)

	// Valid reports whether the geometry is set up and a valid shader and cube texture
	// are assigned.
	//
	// Returns:
	//   - bool: true if Draw would render
	Valid() bool

	// Move transfers the GL objects and assignments to a new Skybox and resets this one.
	//
	// Returns:
	//   - Skybox: the new owner
	Move() Skybox

	// Release deletes the vertex array and buffer if held. Safe to call more than once.
	Release()
}

var _ Skybox = &skybox{}

// NewSkybox creates an inert skybox. No GL work happens until Setup.
//
// Parameters:
//   - options: functional options to configure the skybox
//
// Returns:
//   - Skybox: the inert skybox
func NewSkybox(options ...SkyboxBuilderOption) Skybox {
	s := &skybox{}
	for _, option := range options {
		option(s)
	}
	if s.b == nil {
		s.b = backend.NewGLBackend()
	}
	return s
}

func (s *skybox) Setup() error {
	s.Release()

	s.vao = s.b.GenVertexArray()
	s.vbo = s.b.GenBuffer()

	s.b.BindVertexArray(s.vao)
	s.b.BindBuffer(backend.ArrayBuffer, s.vbo)
	s.b.BufferData(backend.ArrayBuffer, common.SliceToBytes(vertices[:]), backend.StaticDraw)
	s.b.EnableVertexAttribArray(0)
	s.b.VertexAttribPointer(0, 3, backend.Float, false, 3*4, 0)
	s.b.BindVertexArray(backend.InvalidHandle)
	return nil
}

func (s *skybox) SetShader(sh shader.Shader) {
	if sh == nil || !sh.Valid() {
		log.Printf("[Skybox] rejecting invalid shader")
		s.shader = nil
		return
	}
	s.shader = sh
	s.shader.Use()
	s.shader.SetInt("uCubeTexture", 0)
}

func (s *skybox) SetCubeTexture(c texture.CubeTexture) {
	if c == nil || !c.Valid() {
		log.Printf("[Skybox] rejecting invalid cube texture")
		s.cube = nil
		return
	}
	s.cube = c
}

func (s *skybox) Draw(view, projection mgl32.Mat4) {
	if !s.Valid() {
		log.Printf("[Skybox] draw of incomplete skybox")
		return
	}

	s.b.DepthFunc(backend.LEqual)

	s.shader.Use()
	s.shader.SetMat4("uView", view.Mat3().Mat4())
	s.shader.SetMat4("uProjection", projection)

	s.b.BindVertexArray(s.vao)
	s.cube.Bind(0)
	s.b.DrawArrays(backend.Triangles, 0, VertexCount)
	s.b.BindVertexArray(backend.InvalidHandle)
	s.cube.Unbind(0)

	s.b.DepthFunc(backend.Less)
}

func (s *skybox) Valid() bool {
	return s.vao.Valid() && s.vbo.Valid() &&
		s.shader != nil && s.shader.Valid() &&
		s.cube != nil && s.cube.Valid()
}

func (s *skybox) Move() Skybox {
	moved := &skybox{
		b:      s.b,
		vao:    s.vao,
		vbo:    s.vbo,
		shader: s.shader,
		cube:   s.cube,
	}
	s.vao, s.vbo = backend.InvalidHandle, backend.InvalidHandle
	s.shader = nil
	s.cube = nil
	return moved
}

func (s *skybox) Release() {
	if s.vao.Valid() {
		s.b.DeleteVertexArray(s.vao)
	}
	if s.vbo.Valid() {
		s.b.DeleteBuffer(s.vbo)
	}
	s.vao, s.vbo = backend.InvalidHandle, backend.InvalidHandle
}
