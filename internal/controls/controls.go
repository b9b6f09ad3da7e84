// Package controls maps the keyboard surface onto scene changes, once per frame.
package controls

import (
	"deskscene/internal/camera"
	"deskscene/internal/scene"
)

// Action represents a logical input, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionWrapRepeat
	ActionWrapMirrored
	ActionWrapClampEdge
	ActionWrapClampBorder
	ActionUVScaleUp
	ActionUVScaleDown
	ActionOrbitResume
	ActionOrbitPause
	ActionToggleHUD
	ActionMouseLeft
	ActionMouseMiddle
	ActionMouseRight
	ActionCount // Sentinel value for array sizing
)

// Source reports which actions are currently held
type Source interface {
	IsActive(action Action) bool
}

// Changes tells the frame loop what Process did.
type Changes struct {
	Quit bool
	// WrapChanged means Scene.Wrap must be pushed to the GPU
	WrapChanged bool
	UVChanged   bool
	// OrbitChanged means Scene.Light.Orbiting flipped
	OrbitChanged bool
}

var moves = [...]struct {
	action Action
	dir    camera.Direction
}{
	{ActionMoveForward, camera.Forward},
	{ActionMoveBackward, camera.Backward},
	{ActionMoveLeft, camera.Left},
	{ActionMoveRight, camera.Right},
}

// Wrap keys in priority order; the first held key wins
var wraps = [...]struct {
	action Action
	mode   scene.WrapMode
}{
	{ActionWrapRepeat, scene.WrapRepeat},
	{ActionWrapMirrored, scene.WrapMirroredRepeat},
	{ActionWrapClampEdge, scene.WrapClampToEdge},
	{ActionWrapClampBorder, scene.WrapClampToBorder},
}

// Process polls src and applies held actions to s for a frame of dt seconds.
func Process(src Source, s *scene.Scene, dt float32) Changes {
	var c Changes

	if src.IsActive(ActionQuit) {
		c.Quit = true
	}

	for _, m := range moves {
		if src.IsActive(m.action) {
			s.Camera.Move(m.dir, dt)
		}
	}

	// A held key whose mode is already current falls through to the next one.
	for _, w := range wraps {
		if src.IsActive(w.action) && s.Wrap != w.mode {
			c.WrapChanged = s.SelectWrap(w.mode)
			break
		}
	}

	if src.IsActive(ActionUVScaleUp) {
		s.GrowUV()
		c.UVChanged = true
	} else if src.IsActive(ActionUVScaleDown) {
		s.ShrinkUV()
		c.UVChanged = true
	}

	if src.IsActive(ActionOrbitResume) && !s.Light.Orbiting {
		c.OrbitChanged = s.SetOrbiting(true)
	} else if src.IsActive(ActionOrbitPause) && s.Light.Orbiting {
		c.OrbitChanged = s.SetOrbiting(false)
	}

	return c
}
