package renderer

import (
	"deskscene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameContext carries the per-frame values shared by every draw
type FrameContext struct {
	Scene   *scene.Scene
	View    mgl32.Mat4
	Proj    mgl32.Mat4
	ViewPos mgl32.Vec3
}

func newFrameContext(s *scene.Scene) FrameContext {
	return FrameContext{
		Scene:   s,
		View:    s.Camera.ViewMatrix(),
		Proj:    s.Projection.Matrix(s.Camera.Zoom),
		ViewPos: s.Camera.Position,
	}
}
