package scene

import "github.com/go-gl/mathgl/mgl32"

// Rotation is an axis-angle rotation, angle in radians
type Rotation struct {
	Axis  mgl32.Vec3
	Angle float32
}

// Placement positions an object in the world
type Placement struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation Rotation
}

// At returns an unrotated placement with a uniform scale.
func At(pos mgl32.Vec3, scale float32) Placement {
	return Placement{Position: pos, Scale: mgl32.Vec3{scale, scale, scale}}
}

// Rotated returns p with the given rotation
func (p Placement) Rotated(angle float32, axis mgl32.Vec3) Placement {
	p.Rotation = Rotation{Axis: axis, Angle: angle}
	return p
}

// Model returns translate * scale * rotate, so a vertex is rotated first,
// then scaled, then translated.
func (p Placement) Model() mgl32.Mat4 {
	model := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl32.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z()))
	if p.Rotation.Angle != 0 && p.Rotation.Axis.Len() > 0 {
		model = model.Mul4(mgl32.HomogRotate3D(p.Rotation.Angle, p.Rotation.Axis.Normalize()))
	}
	return model
}
