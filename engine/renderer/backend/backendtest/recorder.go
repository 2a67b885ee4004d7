// Package backendtest provides an in-memory backend.Backend that records GL traffic so
// resource ownership and draw behavior can be tested without a GL context.
package backendtest

import (
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind classifies the GPU objects the Recorder hands out.
type Kind int

const (
	KindTexture Kind = iota
	KindShader
	KindProgram
	KindVertexArray
	KindBuffer
)

// TexImage captures one TexImage2D call.
type TexImage struct {
	Target         backend.Enum
	Texture        backend.Handle
	InternalFormat backend.Enum
	Format         backend.Enum
	Width, Height  int32
	Bytes          int
}

// DrawCall captures one DrawArrays or DrawElements call together with the bound state.
type DrawCall struct {
	Mode        backend.Enum
	Count       int32
	Indexed     bool
	Program     backend.Handle
	VertexArray backend.Handle
	DepthFunc   backend.Enum
}

// Recorder is a fake backend.Backend. Object names are allocated from a counter starting
// at 1, so InvalidHandle is never returned. The zero value is not usable; call New.
type Recorder struct {
	mu sync.Mutex

	// CompileErrors maps a substring of a shader source to the info log that CompileShader
	// reports when a source containing it is compiled. Matching sources fail to compile.
	CompileErrors map[string]string

	// LinkError, when non-empty, makes every LinkProgram call fail with this info log.
	LinkError string

	next    backend.Handle
	live    map[backend.Handle]Kind
	deleted map[backend.Handle]Kind
	sources map[backend.Handle]string
	calls   []string

	boundTextures map[backend.Enum]backend.Handle
	activeUnit    backend.Enum
	program       backend.Handle
	vertexArray   backend.Handle
	depthFunc     backend.Enum

	texImages    []TexImage
	texParams    map[backend.Handle]map[backend.Enum]int32
	locations    map[backend.Handle]map[string]int32
	uniforms     map[backend.Handle]map[string]any
	buffers      map[backend.Enum]backend.Handle
	bufferData   map[backend.Handle]int
	draws        []DrawCall
	depthFuncs   []backend.Enum
	clears       []backend.Enum
	clearColor   mgl32.Vec4
	viewport     [4]int32
	attribs      map[uint32]int32
	textureUnits map[backend.Enum]backend.Handle
}

var _ backend.Backend = &Recorder{}

// New returns an empty Recorder with depth function Less, matching the GL default.
//
// Returns:
//   - *Recorder: the recorder
func New() *Recorder {
	return &Recorder{
		CompileErrors: make(map[string]string),
		next:          1,
		live:          make(map[backend.Handle]Kind),
		deleted:       make(map[backend.Handle]Kind),
		sources:       make(map[backend.Handle]string),
		boundTextures: make(map[backend.Enum]backend.Handle),
		activeUnit:    backend.Texture0,
		depthFunc:     backend.Less,
		texParams:     make(map[backend.Handle]map[backend.Enum]int32),
		locations:     make(map[backend.Handle]map[string]int32),
		uniforms:      make(map[backend.Handle]map[string]any),
		buffers:       make(map[backend.Enum]backend.Handle),
		bufferData:    make(map[backend.Handle]int),
		attribs:       make(map[uint32]int32),
		textureUnits:  make(map[backend.Enum]backend.Handle),
	}
}

// --- inspection ---

// Live reports how many objects of the given kind are allocated and not deleted.
func (r *Recorder) Live(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// IsLive reports whether h is an allocated, undeleted object.
func (r *Recorder) IsLive(h backend.Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[h]
	return ok
}

// Deleted reports whether h was allocated and later deleted.
func (r *Recorder) Deleted(h backend.Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.deleted[h]
	return ok
}

// Calls returns the names of every backend method invoked, in order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// CallCount returns how many times the named backend method was invoked.
func (r *Recorder) CallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls, draws and uploads but keeps object state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.draws = nil
	r.texImages = nil
	r.depthFuncs = nil
	r.clears = nil
}

// TexImages returns every recorded TexImage2D upload.
func (r *Recorder) TexImages() []TexImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]TexImage(nil), r.texImages...)
}

// TexParameter returns the value last set for pname on texture, and whether it was set.
func (r *Recorder) TexParameter(texture backend.Handle, pname backend.Enum) (int32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.texParams[texture][pname]
	return v, ok
}

// Uniform returns the value last written to the named uniform of program.
func (r *Recorder) Uniform(program backend.Handle, name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.uniforms[program][name]
	return v, ok
}

// Draws returns every recorded draw call.
func (r *Recorder) Draws() []DrawCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DrawCall(nil), r.draws...)
}

// DepthFuncs returns the sequence of depth functions set.
func (r *Recorder) DepthFuncs() []backend.Enum {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]backend.Enum(nil), r.depthFuncs...)
}

// CurrentDepthFunc returns the depth function currently in effect.
func (r *Recorder) CurrentDepthFunc() backend.Enum {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.depthFunc
}

// BufferSize returns the number of bytes last uploaded to buffer.
func (r *Recorder) BufferSize(buffer backend.Handle) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bufferData[buffer]
}

// AttribSize returns the component count configured for an attribute location, or 0.
func (r *Recorder) AttribSize(index uint32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attribs[index]
}

// BoundTexture returns the texture bound on unit for the last BindTexture targeting it.
func (r *Recorder) BoundTexture(unit backend.Enum) backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.textureUnits[unit]
}

// Clears returns the recorded Clear masks.
func (r *Recorder) Clears() []backend.Enum {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]backend.Enum(nil), r.clears...)
}

// ClearColorValue returns the last clear color.
func (r *Recorder) ClearColorValue() mgl32.Vec4 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

// ViewportValue returns the last viewport rectangle as x, y, width, height.
func (r *Recorder) ViewportValue() [4]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// --- helpers, caller holds mu ---

func (r *Recorder) record(name string) {
	r.calls = append(r.calls, name)
}

func (r *Recorder) alloc(kind Kind) backend.Handle {
	h := r.next
	r.next++
	r.live[h] = kind
	return h
}

func (r *Recorder) free(h backend.Handle, kind Kind) {
	if k, ok := r.live[h]; ok && k == kind {
		delete(r.live, h)
		r.deleted[h] = kind
	}
}

func (r *Recorder) setUniform(location int32, v any) {
	if location < 0 {
		return
	}
	for name, loc := range r.locations[r.program] {
		if loc == location {
			if r.uniforms[r.program] == nil {
				r.uniforms[r.program] = make(map[string]any)
			}
			r.uniforms[r.program][name] = v
			return
		}
	}
}

// --- backend.Backend ---

func (r *Recorder) GenTexture() backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GenTexture")
	return r.alloc(KindTexture)
}

func (r *Recorder) DeleteTexture(texture backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteTexture")
	r.free(texture, KindTexture)
}

func (r *Recorder) ActiveTexture(unit backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ActiveTexture")
	r.activeUnit = unit
}

func (r *Recorder) BindTexture(target backend.Enum, texture backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("BindTexture")
	r.boundTextures[target] = texture
	r.textureUnits[r.activeUnit] = texture
}

func (r *Recorder) TexImage2D(target backend.Enum, level int32, internalFormat backend.Enum, width, height int32, format, xtype backend.Enum, pixels []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("TexImage2D")
	bindTarget := target
	if target >= backend.TextureCubeMapPositiveX && target < backend.TextureCubeMapPositiveX+6 {
		bindTarget = backend.TextureCubeMap
	}
	r.texImages = append(r.texImages, TexImage{
		Target:         target,
		Texture:        r.boundTextures[bindTarget],
		InternalFormat: internalFormat,
		Format:         format,
		Width:          width,
		Height:         height,
		Bytes:          len(pixels),
	})
}

func (r *Recorder) TexParameteri(target, pname backend.Enum, param int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("TexParameteri")
	tex := r.boundTextures[target]
	if r.texParams[tex] == nil {
		r.texParams[tex] = make(map[backend.Enum]int32)
	}
	r.texParams[tex][pname] = param
}

func (r *Recorder) GenerateMipmap(target backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GenerateMipmap")
}

func (r *Recorder) PixelStorei(pname backend.Enum, param int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("PixelStorei")
}

func (r *Recorder) CreateShader(stage backend.Enum) backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CreateShader")
	return r.alloc(KindShader)
}

func (r *Recorder) ShaderSource(shader backend.Handle, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ShaderSource")
	r.sources[shader] = source
}

func (r *Recorder) CompileShader(shader backend.Handle) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CompileShader")
	src := r.sources[shader]
	for needle, infoLog := range r.CompileErrors {
		if strings.Contains(src, needle) {
			return infoLog, false
		}
	}
	return "", true
}

func (r *Recorder) DeleteShader(shader backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteShader")
	r.free(shader, KindShader)
}

func (r *Recorder) CreateProgram() backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CreateProgram")
	return r.alloc(KindProgram)
}

func (r *Recorder) AttachShader(program, shader backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("AttachShader")
}

func (r *Recorder) LinkProgram(program backend.Handle) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("LinkProgram")
	if r.LinkError != "" {
		return r.LinkError, false
	}
	return "", true
}

func (r *Recorder) DeleteProgram(program backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteProgram")
	r.free(program, KindProgram)
}

func (r *Recorder) UseProgram(program backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("UseProgram")
	r.program = program
}

func (r *Recorder) GetUniformLocation(program backend.Handle, name string) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GetUniformLocation")
	if _, ok := r.live[program]; !ok {
		return -1
	}
	if r.locations[program] == nil {
		r.locations[program] = make(map[string]int32)
	}
	if loc, ok := r.locations[program][name]; ok {
		return loc
	}
	loc := int32(len(r.locations[program]))
	r.locations[program][name] = loc
	return loc
}

func (r *Recorder) Uniform1i(location, v int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Uniform1i")
	r.setUniform(location, v)
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Uniform1f")
	r.setUniform(location, v)
}

func (r *Recorder) Uniform2f(location int32, v mgl32.Vec2) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Uniform2f")
	r.setUniform(location, v)
}

func (r *Recorder) Uniform3f(location int32, v mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Uniform3f")
	r.setUniform(location, v)
}

func (r *Recorder) Uniform4f(location int32, v mgl32.Vec4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Uniform4f")
	r.setUniform(location, v)
}

func (r *Recorder) UniformMatrix3fv(location int32, m mgl32.Mat3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("UniformMatrix3fv")
	r.setUniform(location, m)
}

func (r *Recorder) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("UniformMatrix4fv")
	r.setUniform(location, m)
}

func (r *Recorder) GenVertexArray() backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GenVertexArray")
	return r.alloc(KindVertexArray)
}

func (r *Recorder) DeleteVertexArray(vao backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteVertexArray")
	r.free(vao, KindVertexArray)
}

func (r *Recorder) BindVertexArray(vao backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("BindVertexArray")
	r.vertexArray = vao
}

func (r *Recorder) GenBuffer() backend.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("GenBuffer")
	return r.alloc(KindBuffer)
}

func (r *Recorder) DeleteBuffer(buffer backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DeleteBuffer")
	r.free(buffer, KindBuffer)
}

func (r *Recorder) BindBuffer(target backend.Enum, buffer backend.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("BindBuffer")
	r.buffers[target] = buffer
}

func (r *Recorder) BufferData(target backend.Enum, data []byte, usage backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("BufferData")
	r.bufferData[r.buffers[target]] = len(data)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("EnableVertexAttribArray")
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype backend.Enum, normalized bool, stride int32, offset uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("VertexAttribPointer")
	r.attribs[index] = size
}

func (r *Recorder) DrawArrays(mode backend.Enum, first, count int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DrawArrays")
	r.draws = append(r.draws, DrawCall{
		Mode:        mode,
		Count:       count,
		Program:     r.program,
		VertexArray: r.vertexArray,
		DepthFunc:   r.depthFunc,
	})
}

func (r *Recorder) DrawElements(mode backend.Enum, count int32, xtype backend.Enum, offset uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DrawElements")
	r.draws = append(r.draws, DrawCall{
		Mode:        mode,
		Count:       count,
		Indexed:     true,
		Program:     r.program,
		VertexArray: r.vertexArray,
		DepthFunc:   r.depthFunc,
	})
}

func (r *Recorder) Enable(capability backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Enable")
}

func (r *Recorder) DepthFunc(fn backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("DepthFunc")
	r.depthFunc = fn
	r.depthFuncs = append(r.depthFuncs, fn)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Viewport")
	r.viewport = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ClearColor")
	r.clearColor = mgl32.Vec4{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask backend.Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Clear")
	r.clears = append(r.clears, mask)
}

func (r *Recorder) Version() string {
	return "4.1 recorder"
}
