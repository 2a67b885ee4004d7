package backend

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Handle is an opaque GPU object name (texture, shader, program, vertex array or buffer).
// The zero value is the "not loaded" sentinel and is never returned by a Gen/Create call.
type Handle uint32

// InvalidHandle is the sentinel value held by resources that have not acquired a GPU object.
const InvalidHandle Handle = 0

// Valid reports whether the handle refers to a live GPU object.
//
// Returns:
//   - bool: true if the handle is not the sentinel
func (h Handle) Valid() bool {
	return h != InvalidHandle
}

// Enum is a GL enumerant. The constants below carry the exact values of the OpenGL 4.1 core
// profile so a backend can pass them through unchanged.
type Enum uint32

// Texture targets and units.
const (
	Texture2D               Enum = 0x0DE1
	TextureCubeMap          Enum = 0x8513
	TextureCubeMapPositiveX Enum = 0x8515
	Texture0                Enum = 0x84C0
)

// Pixel formats and component types.
const (
	Red             Enum = 0x1903
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	UnsignedByte    Enum = 0x1401
	UnsignedInt     Enum = 0x1405
	Float           Enum = 0x1406
	UnpackAlignment Enum = 0x0CF5
)

// Texture parameters and their values.
const (
	TextureMagFilter   Enum = 0x2800
	TextureMinFilter   Enum = 0x2801
	TextureWrapS       Enum = 0x2802
	TextureWrapT       Enum = 0x2803
	TextureWrapR       Enum = 0x8072
	Linear             Enum = 0x2601
	LinearMipmapLinear Enum = 0x2703
	Repeat             Enum = 0x2901
	ClampToEdge        Enum = 0x812F
)

// Shader stages.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
)

// Buffer targets and usage hints.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4
)

// Primitive modes, pipeline state and clear bits.
const (
	Triangles      Enum = 0x0004
	DepthTest      Enum = 0x0B71
	Less           Enum = 0x0201
	LEqual         Enum = 0x0203
	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000
)

// Backend is the narrow set of GL entry points used by the resource types.
// Every call must happen on the thread that owns the current GL context.
// The production implementation forwards to go-gl; tests substitute a recorder.
type Backend interface {
	// GenTexture creates a texture object.
	//
	// Returns:
	//   - Handle: the new texture name
	GenTexture() Handle

	// DeleteTexture releases a texture object.
	//
	// Parameters:
	//   - texture: the texture name to delete
	DeleteTexture(texture Handle)

	// ActiveTexture selects the texture unit that subsequent BindTexture calls affect.
	//
	// Parameters:
	//   - unit: the texture unit enum (Texture0 + n)
	ActiveTexture(unit Enum)

	// BindTexture binds a texture to a target on the active unit. Binding InvalidHandle unbinds.
	//
	// Parameters:
	//   - target: Texture2D or TextureCubeMap
	//   - texture: the texture name
	BindTexture(target Enum, texture Handle)

	// TexImage2D uploads pixel data for one image of the bound texture.
	//
	// Parameters:
	//   - target: Texture2D or one of the cube map face targets
	//   - level: mipmap level
	//   - internalFormat: the format stored on the GPU
	//   - width, height: image dimensions in pixels
	//   - format: the layout of pixels
	//   - xtype: the component type of pixels
	//   - pixels: tightly packed pixel bytes, may be nil to allocate only
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, xtype Enum, pixels []byte)

	// TexParameteri sets an integer texture parameter on the bound texture.
	//
	// Parameters:
	//   - target: the texture target
	//   - pname: the parameter name
	//   - param: the parameter value
	TexParameteri(target, pname Enum, param int32)

	// GenerateMipmap builds the mipmap chain of the bound texture.
	//
	// Parameters:
	//   - target: the texture target
	GenerateMipmap(target Enum)

	// PixelStorei sets a pixel storage mode.
	//
	// Parameters:
	//   - pname: the storage parameter
	//   - param: the value
	PixelStorei(pname Enum, param int32)

	// CreateShader creates a shader object of the given stage.
	//
	// Parameters:
	//   - stage: VertexShader or FragmentShader
	//
	// Returns:
	//   - Handle: the new shader name
	CreateShader(stage Enum) Handle

	// ShaderSource replaces the source of a shader object.
	//
	// Parameters:
	//   - shader: the shader name
	//   - source: GLSL source text
	ShaderSource(shader Handle, source string)

	// CompileShader compiles a shader object.
	//
	// Parameters:
	//   - shader: the shader name
	//
	// Returns:
	//   - string: the info log, empty when the driver reports nothing
	//   - bool: true if compilation succeeded
	CompileShader(shader Handle) (string, bool)

	// DeleteShader releases a shader object.
	//
	// Parameters:
	//   - shader: the shader name
	DeleteShader(shader Handle)

	// CreateProgram creates an empty program object.
	//
	// Returns:
	//   - Handle: the new program name
	CreateProgram() Handle

	// AttachShader attaches a compiled shader to a program.
	//
	// Parameters:
	//   - program: the program name
	//   - shader: the shader name
	AttachShader(program, shader Handle)

	// LinkProgram links a program object.
	//
	// Parameters:
	//   - program: the program name
	//
	// Returns:
	//   - string: the info log, empty when the driver reports nothing
	//   - bool: true if linking succeeded
	LinkProgram(program Handle) (string, bool)

	// DeleteProgram releases a program object.
	//
	// Parameters:
	//   - program: the program name
	DeleteProgram(program Handle)

	// UseProgram installs a program as part of the current rendering state.
	//
	// Parameters:
	//   - program: the program name, InvalidHandle to unbind
	UseProgram(program Handle)

	// GetUniformLocation looks up a uniform by name.
	//
	// Parameters:
	//   - program: the program name
	//   - name: the uniform name without a trailing NUL
	//
	// Returns:
	//   - int32: the location, or -1 if the uniform is not active
	GetUniformLocation(program Handle, name string) int32

	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v mgl32.Vec2)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	UniformMatrix3fv(location int32, m mgl32.Mat3)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	// GenVertexArray creates a vertex array object.
	//
	// Returns:
	//   - Handle: the new vertex array name
	GenVertexArray() Handle

	// DeleteVertexArray releases a vertex array object.
	//
	// Parameters:
	//   - vao: the vertex array name
	DeleteVertexArray(vao Handle)

	// BindVertexArray binds a vertex array object. Binding InvalidHandle unbinds.
	//
	// Parameters:
	//   - vao: the vertex array name
	BindVertexArray(vao Handle)

	// GenBuffer creates a buffer object.
	//
	// Returns:
	//   - Handle: the new buffer name
	GenBuffer() Handle

	// DeleteBuffer releases a buffer object.
	//
	// Parameters:
	//   - buffer: the buffer name
	DeleteBuffer(buffer Handle)

	// BindBuffer binds a buffer object to a target.
	//
	// Parameters:
	//   - target: ArrayBuffer or ElementArrayBuffer
	//   - buffer: the buffer name
	BindBuffer(target Enum, buffer Handle)

	// BufferData allocates and fills the store of the buffer bound to target.
	//
	// Parameters:
	//   - target: ArrayBuffer or ElementArrayBuffer
	//   - data: the bytes to upload
	//   - usage: the usage hint
	BufferData(target Enum, data []byte, usage Enum)

	// EnableVertexAttribArray enables a generic vertex attribute on the bound vertex array.
	//
	// Parameters:
	//   - index: the attribute location
	EnableVertexAttribArray(index uint32)

	// VertexAttribPointer describes a vertex attribute inside the bound array buffer.
	//
	// Parameters:
	//   - index: the attribute location
	//   - size: number of components (1 to 4)
	//   - xtype: component type
	//   - normalized: whether fixed-point values are normalized
	//   - stride: bytes between consecutive vertices
	//   - offset: byte offset of the first component
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr)

	// DrawArrays renders primitives from array data.
	//
	// Parameters:
	//   - mode: primitive mode
	//   - first: starting vertex
	//   - count: number of vertices
	DrawArrays(mode Enum, first, count int32)

	// DrawElements renders primitives from the bound element array buffer.
	//
	// Parameters:
	//   - mode: primitive mode
	//   - count: number of indices
	//   - xtype: index type
	//   - offset: byte offset into the element buffer
	DrawElements(mode Enum, count int32, xtype Enum, offset uintptr)

	Enable(capability Enum)
	DepthFunc(fn Enum)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	// Version returns the driver's GL version string.
	//
	// Returns:
	//   - string: the version reported by the context, empty if unavailable
	Version() string
}
