package graphics

import (
	"fmt"

	"deskscene/internal/imaging"
	"deskscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Texture is an uploaded 2D texture
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Format imaging.PixelFormat
}

// LoadTexture decodes an image file and uploads it.
func LoadTexture(path string) (*Texture, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture: %w", err)
	}
	return NewTexture(img)
}

// NewTexture flips img for GL's bottom-up rows and uploads it with repeat
// wrapping, linear filtering and mipmaps. img is modified in place.
func NewTexture(img *imaging.Image) (*Texture, error) {
	format, err := img.Format()
	if err != nil {
		return nil, fmt.Errorf("texture %dx%d: %w", img.Width, img.Height, err)
	}
	img.Flip()

	internal, pixel := glFormats(format)

	t := &Texture{Width: img.Width, Height: img.Height, Format: format}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internal,
		int32(img.Width),
		int32(img.Height),
		0,
		pixel,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func glFormats(f imaging.PixelFormat) (internal int32, pixel uint32) {
	if f == imaging.RGBA8 {
		return gl.RGBA8, gl.RGBA
	}
	return gl.RGB8, gl.RGB
}

// Bind binds the texture to a texture unit. A nil texture binds 0.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if t == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// SetWrap changes the S and T wrap mode. border is used by WrapClampToBorder.
func (t *Texture) SetWrap(mode scene.WrapMode, border mgl32.Vec4) {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	if mode == scene.WrapClampToBorder {
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	}
	wrap := glWrap(mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func glWrap(mode scene.WrapMode) int32 {
	switch mode {
	case scene.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case scene.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case scene.WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.REPEAT
}

// Delete frees the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
