package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyMesh is returned by Setup when the mesh has no vertices.
var ErrEmptyMesh = errors.New("mesh has no vertex data")

// mesh is the implementation of the Mesh interface.
type mesh struct {
	b backend.Backend

	vertices []Vertex
	indices  []uint32
	radius   float32

	vao backend.Handle
	vbo backend.Handle
	ebo backend.Handle

	shader   shader.Shader
	textures []texture.Texture
}

// Mesh is vertex data (and optional indices) uploaded to a vertex array object.
// The shader and textures a mesh draws with are borrowed: the mesh never loads or releases
// them and the caller must keep them alive while the mesh draws. The vertex array and its
// buffers are owned by the mesh.
type Mesh interface {
	// Setup uploads the vertex and index data and configures the vertex attributes.
	// Any buffers held from a previous Setup are released first.
	//
	// Returns:
	//   - error: ErrEmptyMesh if there are no vertices
	Setup() error

	// Draw renders the mesh once. The shader is made current, uModel, uView and uProjection
	// are set, and texture i is bound to unit i with sampler uniform "uTexture<i>".
	// Indexed meshes draw with DrawElements, the rest with DrawArrays.
	// Logs and does nothing if the mesh or its shader is not valid.
	//
	// Parameters:
	//   - model: the model transform
	//   - view: the view transform
	//   - projection: the projection transform
	Draw(model, view, projection mgl32.Mat4)

	// DrawInstances renders the mesh once per model transform with a single shader and
	// texture bind. Instances whose bounding sphere lies outside the view frustum are skipped.
	//
	// Parameters:
	//   - models: one model transform per instance
	//   - view: the view transform
	//   - projection: the projection transform
	//
	// Returns:
	//   - int: the number of instances drawn
	DrawInstances(models []mgl32.Mat4, view, projection mgl32.Mat4) int

	// SetShader assigns the shader the mesh draws with.
	//
	// Parameters:
	//   - s: the shader, or nil to clear it
	SetShader(s shader.Shader)

	// Shader returns the assigned shader, or nil.
	//
	// Returns:
	//   - shader.Shader: the assigned shader
	Shader() shader.Shader

	// AddTexture appends a texture. The n-th texture added is bound to unit n.
	// A nil texture is ignored with a warning.
	//
	// Parameters:
	//   - t: the texture
	AddTexture(t texture.Texture)

	// Textures returns the assigned textures in unit order.
	//
	// Returns:
	//   - []texture.Texture: a copy of the texture list
	Textures() []texture.Texture

	// Valid reports whether the mesh holds a vertex array.
	//
	// Returns:
	//   - bool: true after a successful Setup and before Release or Move
	Valid() bool

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices, 0 for a non-indexed mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the radius of a sphere around the local origin that contains
	// every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Move transfers the GL objects, vertex data and assignments to a new Mesh and resets
	// this one.
	//
	// Returns:
	//   - Mesh: the new owner
	Move() Mesh

	// Release deletes the vertex array and buffers if held. Safe to call more than once.
	Release()
}

var _ Mesh = &mesh{}

// NewMesh records vertex data for a mesh. No GL work happens until Setup.
// A nil or empty index slice produces a mesh drawn with DrawArrays.
//
// Parameters:
//   - vertices: the vertex data
//   - indices: triangle indices, may be nil
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the inert mesh
func NewMesh(vertices []Vertex, indices []uint32, options ...MeshBuilderOption) Mesh {
	m := &mesh{
		vertices: append([]Vertex(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
	}
	m.radius = boundingRadius(m.vertices)
	for _, option := range options {
		option(m)
	}
	if m.b == nil {
		m.b = backend.NewGLBackend()
	}
	return m
}

func (m *mesh) Setup() error {
	if len(m.vertices) == 0 {
		log.Printf("[Mesh] %v", ErrEmptyMesh)
		return ErrEmptyMesh
	}
	m.Release()

	m.vao = m.b.GenVertexArray()
	m.vbo = m.b.GenBuffer()
	if len(m.indices) > 0 {
		m.ebo = m.b.GenBuffer()
	}

	m.b.BindVertexArray(m.vao)

	m.b.BindBuffer(backend.ArrayBuffer, m.vbo)
	m.b.BufferData(backend.ArrayBuffer, common.SliceToBytes(m.vertices), backend.StaticDraw)

	if m.ebo.Valid() {
		m.b.BindBuffer(backend.ElementArrayBuffer, m.ebo)
		m.b.BufferData(backend.ElementArrayBuffer, common.SliceToBytes(m.indices), backend.StaticDraw)
	}

	m.b.EnableVertexAttribArray(PositionLocation)
	m.b.VertexAttribPointer(PositionLocation, 3, backend.Float, false, vertexStride, 0)
	m.b.EnableVertexAttribArray(NormalLocation)
	m.b.VertexAttribPointer(NormalLocation, 3, backend.Float, false, vertexStride, normalOffset)
	m.b.EnableVertexAttribArray(TexCoordsLocation)
	m.b.VertexAttribPointer(TexCoordsLocation, 2, backend.Float, false, vertexStride, texCoordsOffset)

	// The element buffer binding is vertex array state and stays attached.
	m.b.BindVertexArray(backend.InvalidHandle)
	return nil
}

func (m *mesh) Draw(model, view, projection mgl32.Mat4) {
	if !m.begin(view, projection) {
		return
	}
	m.shader.SetMat4("uModel", model)
	m.drawCall()
	m.end()
}

func (m *mesh) DrawInstances(models []mgl32.Mat4, view, projection mgl32.Mat4) int {
	if len(models) == 0 || !m.begin(view, projection) {
		return 0
	}

	frustum := common.ExtractFrustum(projection.Mul4(view))
	drawn := 0
	for _, model := range models {
		center := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if !frustum.ContainsSphere(center, m.radius*common.MaxScale(model)) {
			continue
		}
		m.shader.SetMat4("uModel", model)
		m.drawCall()
		drawn++
	}
	m.end()
	return drawn
}

// begin checks validity, makes the shader current, sets the camera uniforms and binds
// the textures and vertex array. It reports false when nothing may be drawn.
func (m *mesh) begin(view, projection mgl32.Mat4) bool {
	if !m.vao.Valid() {
		log.Printf("[Mesh] draw of invalid mesh")
		return false
	}
	if m.shader == nil || !m.shader.Valid() {
		log.Printf("[Mesh] draw without a valid shader")
		return false
	}

	m.shader.Use()
	m.shader.SetMat4("uView", view)
	m.shader.SetMat4("uProjection", projection)

	for i, t := range m.textures {
		t.Bind(uint32(i))
		m.shader.SetInt(fmt.Sprintf("uTexture%d", i), int32(i))
	}

	m.b.BindVertexArray(m.vao)
	return true
}

func (m *mesh) drawCall() {
	if m.ebo.Valid() {
		m.b.DrawElements(backend.Triangles, int32(len(m.indices)), backend.UnsignedInt, 0)
		return
	}
	m.b.DrawArrays(backend.Triangles, 0, int32(len(m.vertices)))
}

func (m *mesh) end() {
	m.b.BindVertexArray(backend.InvalidHandle)
	for i, t := range m.textures {
		t.Unbind(uint32(i))
	}
}

func (m *mesh) SetShader(s shader.Shader) {
	m.shader = s
}

func (m *mesh) Shader() shader.Shader {
	return m.shader
}

func (m *mesh) AddTexture(t texture.Texture) {
	if t == nil {
		log.Printf("[Mesh] ignoring nil texture")
		return
	}
	m.textures = append(m.textures, t)
}

func (m *mesh) Textures() []texture.Texture {
	return append([]texture.Texture(nil), m.textures...)
}

func (m *mesh) Valid() bool {
	return m.vao.Valid()
}

func (m *mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) BoundingRadius() float32 {
	return m.radius
}

func (m *mesh) Move() Mesh {
	moved := &mesh{
		b:        m.b,
		vertices: m.vertices,
		indices:  m.indices,
		radius:   m.radius,
		vao:      m.vao,
		vbo:      m.vbo,
		ebo:      m.ebo,
		shader:   m.shader,
		textures: m.textures,
	}
	m.vertices = nil
	m.indices = nil
	m.radius = 0
	m.vao, m.vbo, m.ebo = backend.InvalidHandle, backend.InvalidHandle, backend.InvalidHandle
	m.shader = nil
	m.textures = nil
	return moved
}

func (m *mesh) Release() {
	if m.vao.Valid() {
		m.b.DeleteVertexArray(m.vao)
	}
	if m.vbo.Valid() {
		m.b.DeleteBuffer(m.vbo)
	}
	if m.ebo.Valid() {
		m.b.DeleteBuffer(m.ebo)
	}
	m.vao, m.vbo, m.ebo = backend.InvalidHandle, backend.InvalidHandle, backend.InvalidHandle
}
