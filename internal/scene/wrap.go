package scene

import "github.com/go-gl/mathgl/mgl32"

// WrapMode is a texture coordinate wrapping mode
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

// BorderColor is sampled outside [0,1] in WrapClampToBorder
var BorderColor = mgl32.Vec4{1, 0, 1, 1}

func (m WrapMode) String() string {
	switch m {
	case WrapRepeat:
		return "REPEAT"
	case WrapMirroredRepeat:
		return "MIRRORED REPEAT"
	case WrapClampToEdge:
		return "CLAMP TO EDGE"
	case WrapClampToBorder:
		return "CLAMP TO BORDER"
	}
	return "UNKNOWN"
}
