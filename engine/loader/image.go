package loader

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned when the image format is not recognized by any registered decoder.
var ErrUnsupportedImage = errors.New("unsupported image format")

// Image holds decoded 8-bit pixel data ready for a texture upload.
// Rows are tightly packed with Channels bytes per pixel.
type Image struct {
	// Pixels is the pixel data, Width*Height*Channels bytes, first row first.
	Pixels []byte
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Channels is the number of components per pixel: 1 (gray), 3 (RGB) or 4 (RGBA).
	Channels int
}

// LoadImage opens and decodes an image file.
//
// Parameters:
//   - path: the image file path
//   - flip: if true, the first row of Pixels is the bottom row of the source image
//
// Returns:
//   - *Image: the decoded image
//   - error: error if the file cannot be opened or decoded
func LoadImage(path string, flip bool) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, err := DecodeImage(file, flip)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes PNG, JPEG, BMP, TIFF or WebP data.
// Grayscale sources keep 1 channel, fully opaque sources are reduced to 3 channels,
// everything else is returned as non-premultiplied RGBA.
//
// Parameters:
//   - r: the encoded image stream
//   - flip: if true, rows are reversed so the bottom row comes first
//
// Returns:
//   - *Image: the decoded image
//   - error: ErrUnsupportedImage for unknown formats, or the decoder's error
func DecodeImage(r io.Reader, flip bool) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	channels := channelCount(src)

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Copy(nrgba, image.Point{}, src, bounds, xdraw.Src, nil)

	pix := nrgba.Pix
	if flip {
		// FlipV copies raw bytes when handed an *image.RGBA, so aliasing the NRGBA
		// buffer keeps the straight alpha intact.
		flipped := transform.FlipV(&image.RGBA{Pix: nrgba.Pix, Stride: nrgba.Stride, Rect: nrgba.Rect})
		pix = flipped.Pix
	}

	return &Image{
		Pixels:   packChannels(pix, width*height, channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}, nil
}

// channelCount maps a decoded image to the component count a texture upload should use.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// packChannels reduces tightly packed RGBA pixels to the first n components of each pixel.
func packChannels(rgba []byte, pixelCount, n int) []byte {
	if n == 4 {
		return rgba
	}
	out := make([]byte, pixelCount*n)
	for i := 0; i < pixelCount; i++ {
		copy(out[i*n:i*n+n], rgba[i*4:i*4+n])
	}
	return out
}
