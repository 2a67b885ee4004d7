package shader

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
)

var (
	// ErrCompile is returned when a shader stage fails to compile. The wrapped message
	// carries the stage, the source path and the driver's info log.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("shader program link failed")
)

// shader is the implementation of the Shader interface.
// It owns one GL program object built from a vertex and a fragment source file.
type shader struct {
	b backend.Backend

	vertexPath   string
	fragmentPath string

	pre      PreProcessor
	includes []string

	program   backend.Handle
	locations map[string]int32
}

// Shader is a GLSL program built from a vertex and a fragment source file.
// Construction only records the file paths; Load reads, compiles and links them.
// A Shader owns its program exclusively: Move hands the program to a new Shader and
// leaves the source inert, and Release deletes it. All methods must be called on the
// thread that owns the GL context.
type Shader interface {
	// Load reads both source files, expands their #include directives, compiles them and
	// links the program.
	// Any program held from a previous Load is released first, so a failed Load leaves
	// the shader invalid.
	//
	// Returns:
	//   - error: wrapped read error, ErrInclude, ErrIncludeCycle, ErrCompile or ErrLink
	Load() error

	// Use installs the program for subsequent draws. Logs and does nothing if the shader
	// is not valid.
	Use()

	// Valid reports whether the shader holds a linked program.
	//
	// Returns:
	//   - bool: true after a successful Load and before Release or Move
	Valid() bool

	// ID returns the program handle, or backend.InvalidHandle.
	//
	// Returns:
	//   - backend.Handle: the program name
	ID() backend.Handle

	// VertexPath returns the vertex source path recorded at construction.
	//
	// Returns:
	//   - string: the vertex shader path
	VertexPath() string

	// FragmentPath returns the fragment source path recorded at construction.
	//
	// Returns:
	//   - string: the fragment shader path
	FragmentPath() string

	// Includes returns the files spliced into either stage by the last Load.
	//
	// Returns:
	//   - []string: included file paths, nil before Load
	Includes() []string

	// Move transfers the program and source paths to a new Shader and resets this one
	// to an inert, invalid state.
	//
	// Returns:
	//   - Shader: the new owner
	Move() Shader

	// Release deletes the program if one is held. Safe to call more than once.
	Release()

	uniformSetter
}

var _ Shader = &shader{}

// NewShader records the source paths of a shader program. No GL work happens until Load.
//
// Parameters:
//   - vertexPath: path of the vertex shader source
//   - fragmentPath: path of the fragment shader source
//   - options: functional options to configure the shader
//
// Returns:
//   - Shader: the inert shader
func NewShader(vertexPath, fragmentPath string, options ...ShaderBuilderOption) Shader {
	s := &shader{
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		program:      backend.InvalidHandle,
		locations:    make(map[string]int32),
	}
	for _, option := range options {
		option(s)
	}
	if s.b == nil {
		s.b = backend.NewGLBackend()
	}
	if s.pre == nil {
		s.pre = NewPreProcessor()
	}
	return s
}

func (s *shader) Load() error {
	s.Release()

	vertexSrc, fragmentSrc, err := loader.ReadShaderSource(s.vertexPath, s.fragmentPath)
	if err != nil {
		log.Printf("[Shader] %v", err)
		return err
	}

	var includes []string
	if vertexSrc, err = s.pre.Process(vertexSrc, s.vertexPath); err != nil {
		log.Printf("[Shader] %v", err)
		return err
	}
	includes = append(includes, s.pre.Includes()...)
	if fragmentSrc, err = s.pre.Process(fragmentSrc, s.fragmentPath); err != nil {
		log.Printf("[Shader] %v", err)
		return err
	}
	for _, inc := range s.pre.Includes() {
		if !slices.Contains(includes, inc) {
			includes = append(includes, inc)
		}
	}
	s.includes = includes

	program, err := s.build(vertexSrc, fragmentSrc)
	if err != nil {
		log.Printf("[Shader] %v", err)
		return err
	}

	s.program = program
	return nil
}

func (s *shader) Use() {
	if !s.program.Valid() {
		log.Printf("[Shader] use of invalid shader (%s, %s)", s.vertexPath, s.fragmentPath)
		return
	}
	s.b.UseProgram(s.program)
}

func (s *shader) Valid() bool {
	return s.program.Valid()
}

func (s *shader) ID() backend.Handle {
	return s.program
}

func (s *shader) VertexPath() string {
	return s.vertexPath
}

func (s *shader) FragmentPath() string {
	return s.fragmentPath
}

func (s *shader) Includes() []string {
	return s.includes
}

func (s *shader) Move() Shader {
	moved := &shader{
		b:            s.b,
		vertexPath:   s.vertexPath,
		fragmentPath: s.fragmentPath,
		pre:          s.pre,
		includes:     s.includes,
		program:      s.program,
		locations:    s.locations,
	}
	s.vertexPath = ""
	s.fragmentPath = ""
	s.includes = nil
	s.program = backend.InvalidHandle
	s.locations = make(map[string]int32)
	return moved
}

func (s *shader) Release() {
	if s.program.Valid() {
		s.b.DeleteProgram(s.program)
	}
	s.program = backend.InvalidHandle
	clear(s.locations)
}

// build compiles both stages and links them into a new program.
// Stage objects are deleted before returning, whether or not the build succeeded.
func (s *shader) build(vertexSrc, fragmentSrc string) (backend.Handle, error) {
	vs, err := s.compile(backend.VertexShader, vertexSrc, s.vertexPath)
	if err != nil {
		return backend.InvalidHandle, err
	}
	defer s.b.DeleteShader(vs)

	fs, err := s.compile(backend.FragmentShader, fragmentSrc, s.fragmentPath)
	if err != nil {
		return backend.InvalidHandle, err
	}
	defer s.b.DeleteShader(fs)

	program := s.b.CreateProgram()
	s.b.AttachShader(program, vs)
	s.b.AttachShader(program, fs)
	if infoLog, ok := s.b.LinkProgram(program); !ok {
		s.b.DeleteProgram(program)
		return backend.InvalidHandle, fmt.Errorf("%w (%s, %s): %s", ErrLink, s.vertexPath, s.fragmentPath, infoLog)
	}
	return program, nil
}

// compile creates and compiles one shader stage. On failure the stage object is deleted.
func (s *shader) compile(stage backend.Enum, source, path string) (backend.Handle, error) {
	h := s.b.CreateShader(stage)
	s.b.ShaderSource(h, source)
	if infoLog, ok := s.b.CompileShader(h); !ok {
		s.b.DeleteShader(h)
		return backend.InvalidHandle, fmt.Errorf("%w: %s stage %s: %s", ErrCompile, stageName(stage), path, infoLog)
	}
	return h, nil
}

func stageName(stage backend.Enum) string {
	switch stage {
	case backend.VertexShader:
		return "vertex"
	case backend.FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("0x%04X", uint32(stage))
	}
}
