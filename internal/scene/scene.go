// Package scene holds the desk scene's state: camera, light, object
// descriptors and the texture settings the keyboard changes.
package scene

import (
	"deskscene/internal/camera"
	"deskscene/internal/meshes"

	"github.com/go-gl/mathgl/mgl32"
)

// ProgramID selects one of the two shader programs
type ProgramID int

const (
	// ProgramLit is the Phong-lit textured program
	ProgramLit ProgramID = iota
	// ProgramLamp draws flat white
	ProgramLamp
)

// TextureID names a loaded texture
type TextureID string

const (
	TexNone         TextureID = ""
	TexTissueBox    TextureID = "tissue_box"
	TexPlane        TextureID = "plane"
	TexTissue       TextureID = "tissue"
	TexGlass        TextureID = "glass"
	TexWristPad     TextureID = "wrist_pad"
	TexChargerBrick TextureID = "charger_brick"
	TexChargerProng TextureID = "charger_prong"
	TexGlassTop     TextureID = "glass_top"
)

// TextureFile binds a texture to a file name relative to the texture dir
type TextureFile struct {
	ID   TextureID
	File string
}

// TextureFiles lists every texture in load order.
func TextureFiles() []TextureFile {
	return []TextureFile{
		{TexTissueBox, "tissue_box.jpg"},
		{TexPlane, "leather2.jpg"},
		{TexTissue, "tissue_paper.jpg"},
		{TexGlass, "glass.jpg"},
		{TexWristPad, "leather.jpg"},
		{TexChargerBrick, "charger.jpg"},
		{TexChargerProng, "brass.jpg"},
		{TexGlassTop, "leather.jpg"},
	}
}

// WrapTarget is the texture the wrap-mode keys act on
const WrapTarget = TexTissueBox

// Object describes one draw: which mesh, program and texture, and where.
type Object struct {
	Name      string
	Mesh      meshes.ID
	Program   ProgramID
	Texture   TextureID
	Placement Placement
	// FollowsLight objects are placed at the light every frame
	FollowsLight bool
}

// Scene is everything a frame needs
type Scene struct {
	Camera     *camera.Camera
	Projection *camera.Projection
	Light      Light
	Objects    []Object

	Wrap    WrapMode
	UVScale mgl32.Vec2
}

const (
	uvScaleStep = 0.1
	// yRotation is applied to the tissue box and tissue, in radians
	yRotation = 15.0
)

var yAxis = mgl32.Vec3{0, 1, 0}

// Default builds the desk scene for a window of the given size.
func Default(width, height int) *Scene {
	deskBox := At(mgl32.Vec3{0, 0, 0}, 2).Rotated(yRotation, yAxis)

	return &Scene{
		Camera:     camera.New(mgl32.Vec3{1, 1, 8}),
		Projection: camera.NewProjection(width, height),
		Light: Light{
			Position:        mgl32.Vec3{3.5, 0, 10},
			Color:           mgl32.Vec3{1, 1, 1},
			Scale:           0.1,
			Orbiting:        true,
			AngularVelocity: mgl32.DegToRad(45),
		},
		Objects: []Object{
			{Name: "tissue box", Mesh: meshes.Cube, Program: ProgramLit, Texture: TexTissueBox, Placement: deskBox},
			{Name: "lamp", Mesh: meshes.Cube, Program: ProgramLamp, FollowsLight: true},
			// the plane shares the tissue box transform
			{Name: "plane", Mesh: meshes.Plane, Program: ProgramLit, Texture: TexPlane, Placement: deskBox},
			{Name: "tissue", Mesh: meshes.Pyramid, Program: ProgramLit, Texture: TexTissue,
				Placement: At(mgl32.Vec3{0, 1, 0}, 1).Rotated(yRotation, yAxis)},
			{Name: "glass", Mesh: meshes.Cube, Program: ProgramLit, Texture: TexGlass,
				Placement: At(mgl32.Vec3{3, -0.6, 0}, 0.8)},
			{Name: "glass top", Mesh: meshes.Cube, Program: ProgramLit, Texture: TexGlassTop,
				Placement: At(mgl32.Vec3{3, 0, 0}, 0.4)},
			{Name: "wrist pad", Mesh: meshes.Pad, Program: ProgramLit, Texture: TexWristPad,
				Placement: At(mgl32.Vec3{0.5, -1, 2.5}, 1)},
			{Name: "charger brick", Mesh: meshes.Cube, Program: ProgramLit, Texture: TexChargerBrick,
				Placement: At(mgl32.Vec3{0.8, -0.15, 2.5}, 0.7)},
			{Name: "charger prong 1", Mesh: meshes.Prong, Program: ProgramLit, Texture: TexChargerProng,
				Placement: At(mgl32.Vec3{1, 0.2, 2.5}, 0.2)},
			{Name: "charger prong 2", Mesh: meshes.Prong, Program: ProgramLit, Texture: TexChargerProng,
				Placement: At(mgl32.Vec3{0.6, 0.2, 2.5}, 0.2)},
		},
		Wrap:    WrapRepeat,
		UVScale: mgl32.Vec2{5, 5},
	}
}

// Update advances time-driven state by dt seconds.
func (s *Scene) Update(dt float32) {
	s.Light.Update(dt)
}

// ModelFor returns the model matrix of o this frame.
func (s *Scene) ModelFor(o *Object) mgl32.Mat4 {
	if o.FollowsLight {
		return s.Light.Placement().Model()
	}
	return o.Placement.Model()
}

// SelectWrap switches the wrap mode and reports whether it changed.
// Selecting the current mode is a no-op.
func (s *Scene) SelectWrap(m WrapMode) bool {
	if s.Wrap == m {
		return false
	}
	s.Wrap = m
	return true
}

// GrowUV and ShrinkUV step both UV scale components by 0.1
func (s *Scene) GrowUV()   { s.UVScale = s.UVScale.Add(mgl32.Vec2{uvScaleStep, uvScaleStep}) }
func (s *Scene) ShrinkUV() { s.UVScale = s.UVScale.Sub(mgl32.Vec2{uvScaleStep, uvScaleStep}) }

// SetOrbiting resumes or pauses the light and reports whether it changed.
func (s *Scene) SetOrbiting(on bool) bool {
	if s.Light.Orbiting == on {
		return false
	}
	s.Light.Orbiting = on
	return true
}
