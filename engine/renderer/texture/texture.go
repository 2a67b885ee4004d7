package texture

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
)

// ErrUnsupportedChannels is returned when a decoded image has a channel count the texture
// cannot map to a GL pixel format.
var ErrUnsupportedChannels = errors.New("unsupported number of texture channels")

// texture is the implementation of the Texture interface.
type texture struct {
	b backend.Backend

	path string
	flip bool

	id       backend.Handle
	width    int
	height   int
	channels int
}

// Texture is a 2D texture loaded from an image file.
// Construction only records the path; Load decodes the file and uploads it. Images are
// flipped vertically by default so the first row uploaded is the bottom of the picture,
// which is where OpenGL expects texture coordinate (0, 0).
// A Texture owns its GL texture exclusively. All methods must be called on the thread that
// owns the GL context.
type Texture interface {
	// Load decodes the image file and uploads it with REPEAT wrapping, trilinear
	// minification and generated mipmaps. Any texture held from a previous Load is
	// released first.
	//
	// Returns:
	//   - error: wrapped decode error or ErrUnsupportedChannels
	Load() error

	// LoadImage uploads an already decoded image instead of reading the recorded path.
	// Decoding is the caller's job, which lets images be decoded off the render thread.
	//
	// Parameters:
	//   - img: the decoded image
	//
	// Returns:
	//   - error: ErrUnsupportedChannels if the channel count is not 1, 3 or 4
	LoadImage(img *loader.Image) error

	// Bind makes the texture current on a texture unit. Logs and does nothing if the
	// texture is not valid.
	//
	// Parameters:
	//   - unit: the texture unit index, 0 for GL_TEXTURE0
	Bind(unit uint32)

	// Unbind clears the 2D binding of a texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	Unbind(unit uint32)

	// Valid reports whether the texture holds a GL texture.
	//
	// Returns:
	//   - bool: true after a successful Load and before Release or Move
	Valid() bool

	// ID returns the GL texture handle, or backend.InvalidHandle.
	//
	// Returns:
	//   - backend.Handle: the texture name
	ID() backend.Handle

	// Path returns the image path recorded at construction.
	//
	// Returns:
	//   - string: the image file path
	Path() string

	// Width returns the width of the uploaded image in pixels, 0 when not loaded.
	//
	// Returns:
	//   - int: the width
	Width() int

	// Height returns the height of the uploaded image in pixels, 0 when not loaded.
	//
	// Returns:
	//   - int: the height
	Height() int

	// Channels returns the channel count of the uploaded image, 0 when not loaded.
	//
	// Returns:
	//   - int: 1, 3 or 4
	Channels() int

	// Move transfers the texture and its metadata to a new Texture and resets this one.
	//
	// Returns:
	//   - Texture: the new owner
	Move() Texture

	// Release deletes the GL texture if one is held. Safe to call more than once.
	Release()
}

var _ Texture = &texture{}

// NewTexture records the path of a 2D texture. No file or GL work happens until Load.
//
// Parameters:
//   - path: the image file path
//   - options: functional options to configure the texture
//
// Returns:
//   - Texture: the inert texture
func NewTexture(path string, options ...TextureBuilderOption) Texture {
	t := &texture{
		path: path,
		flip: true,
		id:   backend.InvalidHandle,
	}
	for _, option := range options {
		option(t)
	}
	if t.b == nil {
		t.b = backend.NewGLBackend()
	}
	return t
}

func (t *texture) Load() error {
	t.Release()

	img, err := loader.LoadImage(t.path, t.flip)
	if err != nil {
		log.Printf("[Texture] %v", err)
		return err
	}
	return t.LoadImage(img)
}

func (t *texture) LoadImage(img *loader.Image) error {
	t.Release()

	format, err := pixelFormat(img.Channels)
	if err != nil {
		err = fmt.Errorf("%w: %d for %s", err, img.Channels, t.path)
		log.Printf("[Texture] %v", err)
		return err
	}

	id := t.b.GenTexture()
	t.b.BindTexture(backend.Texture2D, id)

	t.b.TexParameteri(backend.Texture2D, backend.TextureWrapS, int32(backend.Repeat))
	t.b.TexParameteri(backend.Texture2D, backend.TextureWrapT, int32(backend.Repeat))
	t.b.TexParameteri(backend.Texture2D, backend.TextureMinFilter, int32(backend.LinearMipmapLinear))
	t.b.TexParameteri(backend.Texture2D, backend.TextureMagFilter, int32(backend.Linear))

	// Rows of 1 and 3 channel images are not 4-byte aligned.
	t.b.PixelStorei(backend.UnpackAlignment, 1)
	t.b.TexImage2D(backend.Texture2D, 0, format, int32(img.Width), int32(img.Height), format, backend.UnsignedByte, img.Pixels)
	t.b.GenerateMipmap(backend.Texture2D)

	t.b.BindTexture(backend.Texture2D, backend.InvalidHandle)

	t.id = id
	t.width = img.Width
	t.height = img.Height
	t.channels = img.Channels
	return nil
}

func (t *texture) Bind(unit uint32) {
	if !t.id.Valid() {
		log.Printf("[Texture] bind of invalid texture %s", t.path)
		return
	}
	t.b.ActiveTexture(backend.Texture0 + backend.Enum(unit))
	t.b.BindTexture(backend.Texture2D, t.id)
}

func (t *texture) Unbind(unit uint32) {
	t.b.ActiveTexture(backend.Texture0 + backend.Enum(unit))
	t.b.BindTexture(backend.Texture2D, backend.InvalidHandle)
}

func (t *texture) Valid() bool {
	return t.id.Valid()
}

func (t *texture) ID() backend.Handle {
	return t.id
}

func (t *texture) Path() string {
	return t.path
}

func (t *texture) Width() int {
	return t.width
}

func (t *texture) Height() int {
	return t.height
}

func (t *texture) Channels() int {
	return t.channels
}

func (t *texture) Move() Texture {
	moved := &texture{
		b:        t.b,
		path:     t.path,
		flip:     t.flip,
		id:       t.id,
		width:    t.width,
		height:   t.height,
		channels: t.channels,
	}
	t.path = ""
	t.id = backend.InvalidHandle
	t.width, t.height, t.channels = 0, 0, 0
	return moved
}

func (t *texture) Release() {
	if t.id.Valid() {
		t.b.DeleteTexture(t.id)
	}
	t.id = backend.InvalidHandle
	t.width, t.height, t.channels = 0, 0, 0
}

// pixelFormat maps a channel count to the matching GL format.
func pixelFormat(channels int) (backend.Enum, error) {
	switch channels {
	case 1:
		return backend.Red, nil
	case 3:
		return backend.RGB, nil
	case 4:
		return backend.RGBA, nil
	default:
		return 0, ErrUnsupportedChannels
	}
}
