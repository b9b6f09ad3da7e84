package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is the scene's single point light, drawn as a small lamp cube
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Scale    float32

	Orbiting bool
	// AngularVelocity is the orbit speed about +Y in radians per second
	AngularVelocity float32
}

// Update advances the orbit by dt seconds. A paused light keeps its position.
func (l *Light) Update(dt float32) {
	if !l.Orbiting {
		return
	}
	rot := mgl32.HomogRotate3DY(l.AngularVelocity * dt)
	l.Position = rot.Mul4x1(l.Position.Vec4(1)).Vec3()
}

// Placement returns where the lamp cube is drawn
func (l *Light) Placement() Placement {
	return At(l.Position, l.Scale)
}
