package input

import (
	"testing"

	"deskscene/internal/controls"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyPressAndRelease(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(controls.ActionMoveForward) {
		t.Fatal("Expected forward active after press")
	}
	if !im.JustPressed(controls.ActionMoveForward) {
		t.Error("Expected JustPressed on the press frame")
	}

	im.PostUpdate()
	if im.JustPressed(controls.ActionMoveForward) {
		t.Error("JustPressed should clear after PostUpdate")
	}
	// Held key stays active
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(controls.ActionMoveForward) {
		t.Error("Expected forward still active on repeat")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(controls.ActionMoveForward) {
		t.Error("Expected forward inactive after release")
	}
	if !im.JustReleased(controls.ActionMoveForward) {
		t.Error("Expected JustReleased on the release frame")
	}
}

func TestExtraBindingAndUnboundKey(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	for a := range controls.ActionCount {
		if im.IsActive(a) {
			t.Errorf("Unbound key activated action %d", a)
		}
	}

	// A second key for the same action
	im.BindKey(glfw.KeyUp, controls.ActionMoveForward)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(controls.ActionMoveForward) {
		t.Error("Expected extra binding to activate forward")
	}
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if im.IsActive(controls.ActionMoveForward) {
		t.Error("Release of either key clears the action")
	}
}

func TestMouseButtons(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	if !im.IsActive(controls.ActionMouseRight) || !im.JustPressed(controls.ActionMouseRight) {
		t.Error("Expected right mouse action active and just pressed")
	}
	if im.IsActive(controls.ActionMouseLeft) {
		t.Error("Left mouse action should be idle")
	}

	// Press and release inside one poll report both edges
	im.PostUpdate()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if !im.JustPressed(controls.ActionMouseLeft) || !im.JustReleased(controls.ActionMouseLeft) {
		t.Error("Expected both edges for a click within one frame")
	}
	if im.IsActive(controls.ActionMouseLeft) {
		t.Error("Left mouse action should be up after release")
	}
}
