package texture

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
)

// CubeFaces is the number of faces a cubemap is built from.
const CubeFaces = 6

// ErrFaceCount is returned when a cubemap is loaded with a face list that does not have
// exactly six entries.
var ErrFaceCount = errors.New("cubemap requires exactly 6 faces")

// cubeTexture is the implementation of the CubeTexture interface.
type cubeTexture struct {
	b      backend.Backend
	loader loader.Loader

	faces []string
	id    backend.Handle
}

// CubeTexture is a cubemap built from six face images in +X, -X, +Y, -Y, +Z, -Z order.
// Faces are never flipped. When a loader.Loader is supplied the faces are decoded in
// parallel on its worker pool; the upload itself always happens on the calling thread.
type CubeTexture interface {
	// Load decodes all six faces and uploads them with LINEAR filtering and CLAMP_TO_EDGE
	// wrapping on S, T and R. Any cubemap held from a previous Load is released first.
	// A failure on any face leaves the cube texture invalid.
	//
	// Returns:
	//   - error: ErrFaceCount, a wrapped decode error or ErrUnsupportedChannels
	Load() error

	// Bind makes the cubemap current on a texture unit. Logs and does nothing if the
	// cube texture is not valid.
	//
	// Parameters:
	//   - unit: the texture unit index, 0 for GL_TEXTURE0
	Bind(unit uint32)

	// Unbind clears the cubemap binding of a texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	Unbind(unit uint32)

	// Valid reports whether the cube texture holds a GL texture.
	//
	// Returns:
	//   - bool: true after a successful Load and before Release or Move
	Valid() bool

	// ID returns the GL texture handle, or backend.InvalidHandle.
	//
	// Returns:
	//   - backend.Handle: the texture name
	ID() backend.Handle

	// Faces returns the face paths recorded at construction.
	//
	// Returns:
	//   - []string: a copy of the face paths
	Faces() []string

	// Move transfers the cubemap and its face list to a new CubeTexture and resets this one.
	//
	// Returns:
	//   - CubeTexture: the new owner
	Move() CubeTexture

	// Release deletes the GL texture if one is held. Safe to call more than once.
	Release()
}

var _ CubeTexture = &cubeTexture{}

// NewCubeTexture records the face paths of a cubemap. No file or GL work happens until Load.
//
// Parameters:
//   - faces: six image paths in +X, -X, +Y, -Y, +Z, -Z order
//   - options: functional options to configure the cube texture
//
// Returns:
//   - CubeTexture: the inert cube texture
func NewCubeTexture(faces []string, options ...CubeTextureBuilderOption) CubeTexture {
	c := &cubeTexture{
		faces: append([]string(nil), faces...),
		id:    backend.InvalidHandle,
	}
	for _, option := range options {
		option(c)
	}
	if c.b == nil {
		c.b = backend.NewGLBackend()
	}
	return c
}

func (c *cubeTexture) Load() error {
	c.Release()

	if len(c.faces) != CubeFaces {
		err := fmt.Errorf("%w, got %d", ErrFaceCount, len(c.faces))
		log.Printf("[CubeTexture] %v", err)
		return err
	}

	images, err := c.decode()
	if err != nil {
		log.Printf("[CubeTexture] %v", err)
		return err
	}

	id := c.b.GenTexture()
	c.b.BindTexture(backend.TextureCubeMap, id)
	c.b.PixelStorei(backend.UnpackAlignment, 1)

	for i, img := range images {
		format, err := cubeFormat(img.Channels)
		if err != nil {
			c.b.BindTexture(backend.TextureCubeMap, backend.InvalidHandle)
			c.b.DeleteTexture(id)
			err = fmt.Errorf("%w: %d for %s", err, img.Channels, c.faces[i])
			log.Printf("[CubeTexture] %v", err)
			return err
		}
		target := backend.TextureCubeMapPositiveX + backend.Enum(i)
		c.b.TexImage2D(target, 0, format, int32(img.Width), int32(img.Height), format, backend.UnsignedByte, img.Pixels)
	}

	c.b.TexParameteri(backend.TextureCubeMap, backend.TextureMinFilter, int32(backend.Linear))
	c.b.TexParameteri(backend.TextureCubeMap, backend.TextureMagFilter, int32(backend.Linear))
	c.b.TexParameteri(backend.TextureCubeMap, backend.TextureWrapS, int32(backend.ClampToEdge))
	c.b.TexParameteri(backend.TextureCubeMap, backend.TextureWrapT, int32(backend.ClampToEdge))
	c.b.TexParameteri(backend.TextureCubeMap, backend.TextureWrapR, int32(backend.ClampToEdge))

	c.b.BindTexture(backend.TextureCubeMap, backend.InvalidHandle)

	c.id = id
	return nil
}

// decode reads every face without flipping, on the loader's pool when one is set.
func (c *cubeTexture) decode() ([]*loader.Image, error) {
	if c.loader != nil {
		return c.loader.LoadImages(c.faces, false)
	}

	images := make([]*loader.Image, len(c.faces))
	for i, face := range c.faces {
		img, err := loader.LoadImage(face, false)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}
	return images, nil
}

func (c *cubeTexture) Bind(unit uint32) {
	if !c.id.Valid() {
		log.Printf("[CubeTexture] bind of invalid cubemap")
		return
	}
	c.b.ActiveTexture(backend.Texture0 + backend.Enum(unit))
	c.b.BindTexture(backend.TextureCubeMap, c.id)
}

func (c *cubeTexture) Unbind(unit uint32) {
	c.b.ActiveTexture(backend.Texture0 + backend.Enum(unit))
	c.b.BindTexture(backend.TextureCubeMap, backend.InvalidHandle)
}

func (c *cubeTexture) Valid() bool {
	return c.id.Valid()
}

func (c *cubeTexture) ID() backend.Handle {
	return c.id
}

func (c *cubeTexture) Faces() []string {
	return append([]string(nil), c.faces...)
}

func (c *cubeTexture) Move() CubeTexture {
	moved := &cubeTexture{
		b:      c.b,
		loader: c.loader,
		faces:  c.faces,
		id:     c.id,
	}
	c.faces = nil
	c.id = backend.InvalidHandle
	return moved
}

func (c *cubeTexture) Release() {
	if c.id.Valid() {
		c.b.DeleteTexture(c.id)
	}
	c.id = backend.InvalidHandle
}

// cubeFormat maps a face channel count to a GL format. Single channel faces are rejected.
func cubeFormat(channels int) (backend.Enum, error) {
	switch channels {
	case 3:
		return backend.RGB, nil
	case 4:
		return backend.RGBA, nil
	default:
		return 0, ErrUnsupportedChannels
	}
}
