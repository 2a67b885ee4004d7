package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend/backendtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG encodes img into dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func opaqueImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func translucentImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 128})
		}
	}
	return img
}

func grayImage(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return img
}

func TestTextureLoad(t *testing.T) {
	tests := []struct {
		name     string
		img      image.Image
		channels int
		format   backend.Enum
	}{
		{name: "gray", img: grayImage(3, 2), channels: 1, format: backend.Red},
		{name: "opaque", img: opaqueImage(3, 2), channels: 3, format: backend.RGB},
		{name: "translucent", img: translucentImage(3, 2), channels: 4, format: backend.RGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := backendtest.New()
			path := writePNG(t, t.TempDir(), tt.name+".png", tt.img)

			tex := NewTexture(path, WithBackend(rec))
			assert.False(t, tex.Valid())
			assert.Zero(t, rec.Live(backendtest.KindTexture))

			require.NoError(t, tex.Load())
			assert.True(t, tex.Valid())
			assert.Equal(t, 3, tex.Width())
			assert.Equal(t, 2, tex.Height())
			assert.Equal(t, tt.channels, tex.Channels())

			uploads := rec.TexImages()
			require.Len(t, uploads, 1)
			assert.Equal(t, backend.Texture2D, uploads[0].Target)
			assert.Equal(t, tex.ID(), uploads[0].Texture)
			assert.Equal(t, tt.format, uploads[0].InternalFormat)
			assert.Equal(t, tt.format, uploads[0].Format)
			assert.Equal(t, 3*2*tt.channels, uploads[0].Bytes)
		})
	}
}

func TestTextureParameters(t *testing.T) {
	rec := backendtest.New()
	path := writePNG(t, t.TempDir(), "wall.png", opaqueImage(4, 4))

	tex := NewTexture(path, WithBackend(rec))
	require.NoError(t, tex.Load())

	expected := map[backend.Enum]backend.Enum{
		backend.TextureWrapS:     backend.Repeat,
		backend.TextureWrapT:     backend.Repeat,
		backend.TextureMinFilter: backend.LinearMipmapLinear,
		backend.TextureMagFilter: backend.Linear,
	}
	for pname, want := range expected {
		got, ok := rec.TexParameter(tex.ID(), pname)
		require.True(t, ok, "parameter 0x%04X not set", uint32(pname))
		assert.Equal(t, int32(want), got)
	}
	assert.Equal(t, 1, rec.CallCount("GenerateMipmap"))
}

func TestTextureLoadMissingFile(t *testing.T) {
	rec := backendtest.New()
	tex := NewTexture(filepath.Join(t.TempDir(), "missing.png"), WithBackend(rec))

	err := tex.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, tex.Valid())
	assert.Zero(t, rec.CallCount("GenTexture"))
}

func TestTextureLoadImageUnsupportedChannels(t *testing.T) {
	rec := backendtest.New()
	tex := NewTexture("two.png", WithBackend(rec))

	err := tex.LoadImage(&loader.Image{Pixels: make([]byte, 8), Width: 2, Height: 2, Channels: 2})
	assert.ErrorIs(t, err, ErrUnsupportedChannels)
	assert.False(t, tex.Valid())
	assert.Zero(t, rec.Live(backendtest.KindTexture))
}

func TestTextureReloadReleasesPrevious(t *testing.T) {
	rec := backendtest.New()
	path := writePNG(t, t.TempDir(), "wall.png", opaqueImage(2, 2))

	tex := NewTexture(path, WithBackend(rec))
	require.NoError(t, tex.Load())
	first := tex.ID()
	require.NoError(t, tex.Load())

	assert.True(t, rec.Deleted(first))
	assert.Equal(t, 1, rec.Live(backendtest.KindTexture))
}

func TestTextureMoveAndRelease(t *testing.T) {
	rec := backendtest.New()
	path := writePNG(t, t.TempDir(), "wall.png", opaqueImage(2, 2))

	src := NewTexture(path, WithBackend(rec))
	require.NoError(t, src.Load())
	id := src.ID()

	dst := src.Move()
	assert.False(t, src.Valid())
	assert.Zero(t, src.Width())
	assert.True(t, dst.Valid())
	assert.Equal(t, id, dst.ID())
	assert.Equal(t, path, dst.Path())
	assert.Equal(t, 2, dst.Width())

	src.Release()
	assert.True(t, rec.IsLive(id))

	dst.Release()
	dst.Release()
	assert.False(t, rec.IsLive(id))
	assert.Equal(t, 1, rec.CallCount("DeleteTexture"))
}

func TestTextureBind(t *testing.T) {
	rec := backendtest.New()
	path := writePNG(t, t.TempDir(), "wall.png", opaqueImage(2, 2))

	tex := NewTexture(path, WithBackend(rec))
	tex.Bind(0)
	assert.Empty(t, rec.Calls())

	require.NoError(t, tex.Load())
	tex.Bind(2)
	assert.Equal(t, tex.ID(), rec.BoundTexture(backend.Texture0+2))

	tex.Unbind(2)
	assert.Equal(t, backend.InvalidHandle, rec.BoundTexture(backend.Texture0+2))
}
