package shader

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// uniformSetter writes uniforms of the shader's program. The program is made current
// before every write. Calls on an invalid shader log a warning and do nothing; unknown
// uniform names are ignored the way GL ignores location -1.
type uniformSetter interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat3(name string, m mgl32.Mat3)
	SetMat4(name string, m mgl32.Mat4)
}

func (s *shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if loc, ok := s.location("SetBool", name); ok {
		s.b.Uniform1i(loc, i)
	}
}

func (s *shader) SetInt(name string, v int32) {
	if loc, ok := s.location("SetInt", name); ok {
		s.b.Uniform1i(loc, v)
	}
}

func (s *shader) SetFloat(name string, v float32) {
	if loc, ok := s.location("SetFloat", name); ok {
		s.b.Uniform1f(loc, v)
	}
}

func (s *shader) SetVec2(name string, v mgl32.Vec2) {
	if loc, ok := s.location("SetVec2", name); ok {
		s.b.Uniform2f(loc, v)
	}
}

func (s *shader) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := s.location("SetVec3", name); ok {
		s.b.Uniform3f(loc, v)
	}
}

func (s *shader) SetVec4(name string, v mgl32.Vec4) {
	if loc, ok := s.location("SetVec4", name); ok {
		s.b.Uniform4f(loc, v)
	}
}

func (s *shader) SetMat3(name string, m mgl32.Mat3) {
	if loc, ok := s.location("SetMat3", name); ok {
		s.b.UniformMatrix3fv(loc, m)
	}
}

func (s *shader) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := s.location("SetMat4", name); ok {
		s.b.UniformMatrix4fv(loc, m)
	}
}

// location makes the program current and resolves a uniform location through the cache.
// ok is false when the shader is invalid.
func (s *shader) location(setter, name string) (int32, bool) {
	if !s.program.Valid() {
		log.Printf("[Shader] %s(%q) on invalid shader (%s, %s)", setter, name, s.vertexPath, s.fragmentPath)
		return -1, false
	}
	s.b.UseProgram(s.program)
	if loc, ok := s.locations[name]; ok {
		return loc, true
	}
	loc := s.b.GetUniformLocation(s.program, name)
	s.locations[name] = loc
	return loc, true
}
