// Package imaging decodes texture files into tightly packed pixel buffers.
package imaging

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedChannels is returned for channel counts the GPU upload cannot handle.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// PixelFormat is the GPU internal format picked for an image
type PixelFormat int

const (
	RGB8 PixelFormat = iota
	RGBA8
)

func (f PixelFormat) String() string {
	switch f {
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// FormatFor selects the pixel format matching a channel count.
func FormatFor(channels int) (PixelFormat, error) {
	switch channels {
	case 3:
		return RGB8, nil
	case 4:
		return RGBA8, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
}

// Image is a decoded image, rows top to bottom, no row padding.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Format returns the pixel format for the image's channel count
func (img *Image) Format() (PixelFormat, error) {
	return FormatFor(img.Channels)
}

// Load opens and decodes an image file.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format. Opaque colour images come back
// with 3 channels, images with alpha with 4, grayscale with 1 and
// gray+alpha PNGs with 2.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	grayAlpha := isGrayAlphaPNG(br)

	src, _, err := image.Decode(br)
	if err != nil {
		return nil, err
	}
	if grayAlpha {
		return packGrayAlpha(src), nil
	}
	return FromImage(src), nil
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// IHDR colour type 4; image/png decodes it to NRGBA
const pngColorGrayAlpha = 4

// isGrayAlphaPNG peeks at the IHDR colour type byte without consuming input.
func isGrayAlphaPNG(br *bufio.Reader) bool {
	hdr, err := br.Peek(26)
	if err != nil {
		return false
	}
	return bytes.HasPrefix(hdr, pngSignature) && string(hdr[12:16]) == "IHDR" && hdr[25] == pngColorGrayAlpha
}

func packGrayAlpha(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 0, w*h*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.A)
		}
	}
	return &Image{Width: w, Height: h, Channels: 2, Pix: pix}
}

// FromImage packs an image.Image into an Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src.(type) {
	case *image.Gray, *image.Gray16:
		gray := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
		return &Image{Width: w, Height: h, Channels: 1, Pix: gray.Pix}
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	if !isOpaque(src) {
		return &Image{Width: w, Height: h, Channels: 4, Pix: nrgba.Pix}
	}

	pix := make([]byte, 0, w*h*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		pix = append(pix, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return &Image{Width: w, Height: h, Channels: 3, Pix: pix}
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// FlipVertically swaps rows in place so the first row becomes the last.
// Decoders produce rows top-down while GL samples bottom-up.
func FlipVertically(pix []byte, width, height, channels int) {
	row := width * channels
	for j := 0; j < height/2; j++ {
		top := pix[j*row : (j+1)*row]
		bottom := pix[(height-1-j)*row : (height-j)*row]
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// Flip flips the image in place
func (img *Image) Flip() {
	FlipVertically(img.Pix, img.Width, img.Height, img.Channels)
}
