package backend

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glBackend forwards every call to the go-gl 4.1 core bindings.
// It holds no state; all state lives in the current GL context.
type glBackend struct{}

var _ Backend = &glBackend{}

// NewGLBackend returns the Backend that drives the current OpenGL context.
// gl.Init must have been called on the context thread before any method is used.
//
// Returns:
//   - Backend: the OpenGL backend
func NewGLBackend() Backend {
	return &glBackend{}
}

func (b *glBackend) GenTexture() Handle {
	var id uint32
	gl.GenTextures(1, &id)
	return Handle(id)
}

func (b *glBackend) DeleteTexture(texture Handle) {
	id := uint32(texture)
	gl.DeleteTextures(1, &id)
}

func (b *glBackend) ActiveTexture(unit Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (b *glBackend) BindTexture(target Enum, texture Handle) {
	gl.BindTexture(uint32(target), uint32(texture))
}

func (b *glBackend) TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, xtype Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(xtype), bytesPtr(pixels))
}

func (b *glBackend) TexParameteri(target, pname Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (b *glBackend) GenerateMipmap(target Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (b *glBackend) PixelStorei(pname Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (b *glBackend) CreateShader(stage Enum) Handle {
	return Handle(gl.CreateShader(uint32(stage)))
}

func (b *glBackend) ShaderSource(shader Handle, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csources, nil)
}

func (b *glBackend) CompileShader(shader Handle) (string, bool) {
	id := uint32(shader)
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := ""
	if logLength > 0 {
		buf := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(buf))
		infoLog = strings.TrimRight(buf, "\x00")
	}
	return infoLog, status == gl.TRUE
}

func (b *glBackend) DeleteShader(shader Handle) {
	gl.DeleteShader(uint32(shader))
}

func (b *glBackend) CreateProgram() Handle {
	return Handle(gl.CreateProgram())
}

func (b *glBackend) AttachShader(program, shader Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (b *glBackend) LinkProgram(program Handle) (string, bool) {
	id := uint32(program)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)

	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := ""
	if logLength > 0 {
		buf := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(buf))
		infoLog = strings.TrimRight(buf, "\x00")
	}
	return infoLog, status == gl.TRUE
}

func (b *glBackend) DeleteProgram(program Handle) {
	gl.DeleteProgram(uint32(program))
}

func (b *glBackend) UseProgram(program Handle) {
	gl.UseProgram(uint32(program))
}

func (b *glBackend) GetUniformLocation(program Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (b *glBackend) Uniform1i(location, v int32) {
	gl.Uniform1i(location, v)
}

func (b *glBackend) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (b *glBackend) Uniform2f(location int32, v mgl32.Vec2) {
	gl.Uniform2f(location, v[0], v[1])
}

func (b *glBackend) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (b *glBackend) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (b *glBackend) UniformMatrix3fv(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (b *glBackend) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *glBackend) GenVertexArray() Handle {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return Handle(id)
}

func (b *glBackend) DeleteVertexArray(vao Handle) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (b *glBackend) BindVertexArray(vao Handle) {
	gl.BindVertexArray(uint32(vao))
}

func (b *glBackend) GenBuffer() Handle {
	var id uint32
	gl.GenBuffers(1, &id)
	return Handle(id)
}

func (b *glBackend) DeleteBuffer(buffer Handle) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

func (b *glBackend) BindBuffer(target Enum, buffer Handle) {
	gl.BindBuffer(uint32(target), uint32(buffer))
}

func (b *glBackend) BufferData(target Enum, data []byte, usage Enum) {
	gl.BufferData(uint32(target), len(data), bytesPtr(data), uint32(usage))
}

func (b *glBackend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (b *glBackend) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (b *glBackend) DrawArrays(mode Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (b *glBackend) DrawElements(mode Enum, count int32, xtype Enum, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(xtype), offset)
}

func (b *glBackend) Enable(capability Enum) {
	gl.Enable(uint32(capability))
}

func (b *glBackend) DepthFunc(fn Enum) {
	gl.DepthFunc(uint32(fn))
}

func (b *glBackend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (b *glBackend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *glBackend) Clear(mask Enum) {
	gl.Clear(uint32(mask))
}

func (b *glBackend) Version() string {
	v := gl.GetString(gl.VERSION)
	if v == nil {
		return ""
	}
	return gl.GoStr(v)
}

// bytesPtr returns a pointer to the first byte of data, or nil for an empty slice.
// gl.Ptr panics on empty slices, and GL accepts a nil pointer for "no data".
func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
